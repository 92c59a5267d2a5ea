package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/diceescape/game"
)

var (
	colorBackground = color.RGBA{0x16, 0x18, 0x22, 0xff}
	colorPlain      = color.RGBA{0x8a, 0x8f, 0x99, 0xff}
	colorWall       = color.RGBA{0x4a, 0x4d, 0x55, 0xff}
	colorGoal       = color.RGBA{0x3c, 0xb3, 0x71, 0xff}
	colorSwitch     = color.RGBA{0x46, 0x82, 0xb4, 0xff}
	colorSwitchOn   = color.RGBA{0x87, 0xce, 0xfa, 0xff}
	colorSpike      = color.RGBA{0xb2, 0x22, 0x22, 0xff}
	colorBlock      = color.RGBA{0x8b, 0x5a, 0x2b, 0xff}
	colorDeath      = color.RGBA{0x55, 0x10, 0x10, 0xff}
	colorFalling    = color.RGBA{0xcd, 0x85, 0x3f, 0xff}
	colorWarp       = color.RGBA{0x93, 0x70, 0xdb, 0xff}
	colorCoin       = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	colorDie        = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	colorDieDead    = color.RGBA{0x99, 0x99, 0x99, 0xff}
	colorOutline    = color.RGBA{0x10, 0x10, 0x10, 0xff}
	colorBanner     = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// camera maps world coordinates onto the screen. The board is viewed from
// above, tilted so height shows as an upward shift, and turned by spin
// radians about the board's center.
type camera struct {
	originX, originY float64
	center           game.Vec3
	scale            float64
	tilt             float64
	spin             float64
}

func newCamera(s *game.Session, v *view, w, h int) camera {
	grid := s.Grid()
	size := s.Rules().TileSize
	cam := camera{originX: float64(w) / 2, originY: float64(h) / 2, tilt: 0.7}
	if v.topDown {
		cam.tilt = 1
	}
	if grid == nil {
		cam.scale = 1
		return cam
	}

	cols, rows := max(grid.Width(), 1), max(grid.Depth(), 1)
	cam.center = game.Vec3{X: float64(cols) * size / 2, Z: float64(rows) * size / 2}
	// Leave room for the HUD and for a spinning board's diagonal.
	extent := math.Hypot(float64(cols), float64(rows)) * size
	cam.scale = math.Min(float64(w), float64(h)-80) / extent
	cam.spin = v.spin
	return cam
}

// project returns the screen position of a world point.
func (c camera) project(p game.Vec3) (float64, float64) {
	x, z := p.X-c.center.X, p.Z-c.center.Z
	if c.spin != 0 {
		sin, cos := math.Sincos(c.spin)
		x, z = x*cos-z*sin, x*sin+z*cos
	}
	sx := c.originX + x*c.scale
	sy := c.originY + z*c.scale*c.tilt - p.Y*c.scale*(1-c.tilt)
	return sx, sy
}

func tileColor(t game.Tile) color.Color {
	switch t := t.(type) {
	case *game.GoalTile:
		return colorGoal
	case *game.SwitchTile:
		if t.Activated() {
			return colorSwitchOn
		}
		return colorSwitch
	case *game.SpikeTile:
		return colorSpike
	case *game.FloatingBlockTile:
		return colorBlock
	case *game.DeathTile:
		return colorDeath
	case *game.FallingTile:
		return colorFalling
	case *game.WarpTile:
		return colorWarp
	}
	if !t.Walkable() {
		return colorWall
	}
	return colorPlain
}

// tileLabel is the text printed on a tile, if any.
func tileLabel(t game.Tile) string {
	switch t := t.(type) {
	case *game.GoalTile:
		return strconv.Itoa(t.Required)
	case *game.SwitchTile:
		return strconv.Itoa(t.Required)
	case *game.WarpTile:
		return "W"
	case *game.DeathTile:
		return "X"
	}
	return ""
}

func drawBoard(screen *ebiten.Image, s *game.Session, cam camera, wireframe bool) {
	screen.Fill(colorBackground)
	grid := s.Grid()
	if grid == nil {
		return
	}
	size := s.Rules().TileSize

	for tile := range grid.All() {
		if !tile.Visible() {
			continue
		}
		drawSquare(screen, cam, tile.Position(), size*0.92, tileColor(tile), wireframe)
		if label := tileLabel(tile); label != "" {
			x, y := cam.project(tile.Position())
			ebitenutil.DebugPrintAt(screen, label, int(x)-3, int(y)-8)
		}
		if coin, ok := tile.(*game.CoinTile); ok && !coin.Collected() {
			x, y := cam.project(coin.CoinPosition())
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size*0.18*cam.scale), colorCoin, true)
		}
	}

	die := s.Die()
	if die == nil {
		return
	}
	fill := color.Color(colorDie)
	if die.Dead() {
		fill = colorDieDead
	}
	pos := die.Position()
	drawSquare(screen, cam, pos, size*die.Scale(), fill, wireframe)
	x, y := cam.project(pos)
	ebitenutil.DebugPrintAt(screen, strconv.Itoa(die.Face()), int(x)-3, int(y)-8)
}

// drawSquare draws an axis aligned square of side size centered on p,
// squashed vertically by the camera tilt.
func drawSquare(screen *ebiten.Image, cam camera, p game.Vec3, size float64, clr color.Color, wireframe bool) {
	x, y := cam.project(p)
	w := size * cam.scale
	h := w * cam.tilt
	left, top := float32(x-w/2), float32(y-h/2)
	if wireframe {
		vector.StrokeRect(screen, left, top, float32(w), float32(h), 1, clr, false)
		return
	}
	vector.DrawFilledRect(screen, left, top, float32(w), float32(h), clr, false)
	vector.StrokeRect(screen, left, top, float32(w), float32(h), 1, colorOutline, false)
}

// hudLines formats the heads-up display.
func hudLines(hud game.HUD) []string {
	lines := []string{
		fmt.Sprintf("Level %d: %s", hud.Level, hud.LevelName),
		fmt.Sprintf("Score %d   Round %d   Lives %d   Time %d", hud.Score, hud.RoundScore, hud.Lives, hud.SecondsLeft),
	}
	if hud.CanRetry {
		lines = append(lines, "F5 retry level")
	}
	return lines
}

func drawHUD(screen *ebiten.Image, v *view, w, h int) {
	for i, line := range hudLines(v.hud) {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+16*i)
	}
	ebitenutil.DebugPrintAt(screen, "Arrows move  Space pause  F3 sound  Esc quit", 10, h-20)

	if v.banner == "" {
		return
	}
	// The debug font is 6 pixels wide.
	bw := float32(len(v.banner)*6 + 20)
	bx, by := float32(w)/2-bw/2, float32(h)/2-20
	vector.DrawFilledRect(screen, bx, by, bw, 40, colorBanner, false)
	ebitenutil.DebugPrintAt(screen, v.banner, int(bx)+10, int(by)+12)
}
