package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/diceescape/audio"
	"github.com/plus3/diceescape/debugui"
	debugui_ebiten "github.com/plus3/diceescape/debugui/ebiten"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
)

// tickSeconds is the fixed step Ebiten calls Update with.
const tickSeconds = 1.0 / 60.0

// Game adapts a session to ebiten.Game.
type Game struct {
	session *game.Session
	loop    *engine.Scheduler
	view    *view
	audio   *audio.Player

	imgui *debugui_ebiten.ImguiBackend
	debug *debugui.System

	runes         []rune
	pausedByFocus bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.followFocus(ebiten.IsFocused())
	if g.debug == nil || !g.debug.Input.WantCaptureKeyboard {
		g.handleInput()
	}
	g.view.tick(g.session.CameraSpinning())

	if g.imgui != nil {
		g.imgui.Frame(func() { g.loop.Once(tickSeconds) })
	} else {
		g.loop.Once(tickSeconds)
	}
	return nil
}

// followFocus pauses the session when the window loses focus and resumes it
// when focus returns, unless the player paused it themselves.
func (g *Game) followFocus(focused bool) {
	switch {
	case !focused && g.session.State() == game.StatePlaying:
		g.session.Pause()
		g.pausedByFocus = true
	case focused && g.pausedByFocus:
		g.pausedByFocus = false
		g.session.Resume()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cam := newCamera(g.session, g.view, w, h)
	drawBoard(screen, g.session, cam, g.view.wireframe)
	drawHUD(screen, g.view, w, h)

	if g.imgui != nil && g.debug != nil && !g.debug.Hidden {
		g.imgui.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
