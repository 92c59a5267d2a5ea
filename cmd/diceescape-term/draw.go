package main

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/diceescape/game"
)

// boardTop is the screen row of the first board row.
const boardTop = 3

var (
	styleText    = tcell.StyleDefault
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleSwitch  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleActive  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleDanger  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBlock   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleFalling = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWarp    = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleCoin    = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleDie     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true)
	styleDead    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
)

// tileGlyph returns the character and style a tile is drawn with.
func tileGlyph(tile game.Tile) (rune, tcell.Style) {
	switch t := tile.(type) {
	case *game.GoalTile:
		return digit(t.Required), styleGoal
	case *game.SwitchTile:
		if t.Activated() {
			return digit(t.Required), styleActive
		}
		return digit(t.Required), styleSwitch
	case *game.SpikeTile:
		if t.Extended() {
			return '^', styleDanger
		}
		return ',', styleDim
	case *game.FloatingBlockTile:
		if t.Raised() {
			return 'B', styleBlock
		}
		return '_', styleBlock
	case *game.DeathTile:
		return 'X', styleDanger
	case *game.FallingTile:
		switch {
		case !t.Visible():
			return ' ', styleText
		case t.Falling():
			return ':', styleFalling
		}
		return '~', styleFalling
	case *game.WarpTile:
		return 'W', styleWarp
	case *game.CoinTile:
		if t.Collected() {
			return '.', styleDim
		}
		return '$', styleCoin
	}
	if !tile.Walkable() {
		return '#', styleWall
	}
	return '.', styleDim
}

func digit(n int) rune {
	if n < 0 || n > 9 {
		return '?'
	}
	return rune('0' + n)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *terminal) draw() {
	screen := t.screen
	screen.Clear()

	hud := t.hud
	putString(screen, 0, 0, fmt.Sprintf("Level %d: %s", hud.Level, hud.LevelName), styleText)
	status := fmt.Sprintf("Score %d  Round %d  Lives %d  Time %d", hud.Score, hud.RoundScore, hud.Lives, hud.SecondsLeft)
	if hud.CanRetry {
		status += "  [F5 retry]"
	}
	putString(screen, 0, 1, status, styleText)

	rows := t.drawBoard()

	y := boardTop + rows + 1
	if t.message != "" {
		putString(screen, 0, y, t.message, styleText.Bold(true))
		y++
	}
	if len(t.highScores) > 0 {
		y++
		putString(screen, 0, y, "High scores", styleGoal)
		for i, r := range t.highScores {
			y++
			putString(screen, 2, y, fmt.Sprintf("%d. %-12s %6d  level %d", i+1, r.Player, r.Score, r.Level), styleText)
		}
	}
	_, h := screen.Size()
	putString(screen, 0, h-1, "Arrows move  Space pause  Enter continue  F3 sound  F5 retry  Esc quit", styleDim)
	screen.Show()
}

// drawBoard draws the grid two columns per tile and returns the number of
// rows drawn.
func (t *terminal) drawBoard() int {
	grid := t.session.Grid()
	if grid == nil {
		return 0
	}
	for z := range grid.Depth() {
		for x := range grid.Width() {
			if tile := grid.At(z, x); tile != nil {
				r, style := tileGlyph(tile)
				t.screen.SetContent(2*x, boardTop+z, r, nil, style)
			}
		}
	}

	die := t.session.Die()
	if die == nil {
		return grid.Depth()
	}
	style := styleDie
	if die.Dead() {
		style = styleDead
	}
	cell := die.Cell()
	face := []rune(strconv.Itoa(die.Face()))[0]
	t.screen.SetContent(2*cell.X, boardTop+cell.Z, face, nil, style)
	return grid.Depth()
}
