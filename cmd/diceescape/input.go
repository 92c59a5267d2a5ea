package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/diceescape/game"
)

// Letters are left to the cheat code matcher, so only the arrow keys move.
var moveKeys = []struct {
	key ebiten.Key
	dir game.Direction
}{
	{ebiten.KeyArrowLeft, game.DirLeft},
	{ebiten.KeyArrowRight, game.DirRight},
	{ebiten.KeyArrowUp, game.DirUp},
	{ebiten.KeyArrowDown, game.DirDown},
}

// pressedDirection returns the direction of the first move key pressed this
// tick.
func pressedDirection(justPressed func(ebiten.Key) bool) game.Direction {
	for _, mk := range moveKeys {
		if justPressed(mk.key) {
			return mk.dir
		}
	}
	return game.DirNone
}

func (g *Game) handleInput() {
	s := g.session

	if dir := pressedDirection(inpututil.IsKeyJustPressed); dir != game.DirNone {
		s.Move(dir)
	}
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		s.TypeRune(r)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		switch s.State() {
		case game.StateAwaitingAdvance:
			if err := s.Advance(); err != nil {
				g.view.show(err.Error(), false)
			}
		case game.StateGameOver:
			if err := s.Restart(); err != nil {
				g.view.show(err.Error(), false)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		if s.State() == game.StatePaused {
			s.Resume()
		} else {
			s.Pause()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if !s.RetryLevel() {
			g.view.show("Retry needs a spare life", false)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		if g.audio.ToggleMute() {
			g.view.show("Sound on", false)
		} else {
			g.view.show("Sound off", false)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		if g.debug != nil {
			g.debug.Toggle()
		}
	}
}
