package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/diceescape/debugui"
	debugui_ebiten "github.com/plus3/diceescape/debugui/ebiten"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/level"
)

// Game ticks a session inside the ImGui frame and draws the debug windows on
// top of the board.
type Game struct {
	loop    *engine.Scheduler
	backend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.backend.Frame(func() {
		g.loop.Once(1.0 / 60.0)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board here.
	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.New("Dice Escape debug", 1280, 720)

	session := game.NewSession(game.Options{
		Rules:  game.DefaultRules(),
		Source: level.Default(),
	})
	if err := session.Start(); err != nil {
		panic(err)
	}

	loop := game.NewLoop(session, nil)
	loop.Register(debugui.New(session, loop))

	if err := ebiten.RunGame(&Game{loop: loop, backend: backend}); err != nil {
		panic(err)
	}
}
