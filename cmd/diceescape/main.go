// Command diceescape is the graphical front-end: an Ebiten window showing the
// board from above at an angle, with keyboard input and synthesised sound.
package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/diceescape/audio"
	"github.com/plus3/diceescape/config"
	"github.com/plus3/diceescape/debugui"
	debugui_ebiten "github.com/plus3/diceescape/debugui/ebiten"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/level"
	"github.com/plus3/diceescape/logger"
	"github.com/plus3/diceescape/score"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	source, err := level.Open(cfg.LevelFile)
	if err != nil {
		config.Exitf("levels: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	scores, err := score.Open(ctx, cfg.ScoreBackend, cfg.ScoreURL, cfg.DatabaseDSN, log)
	cancel()
	if err != nil {
		log.WithError(err).Warn("Score backend unavailable, scores will not be kept")
		scores = &score.Service{Submitter: score.Nop{}}
	}
	defer scores.Close()

	player, closeAudio := audio.Open(cfg.Sound, log)
	defer closeAudio()

	view := newView()
	session := game.NewSession(game.Options{
		Rules:     cfg.Rules(),
		Source:    source,
		Presenter: game.Presenters{player, view},
		Scores:    scores.Submitter,
		Logger:    log,
		Seed:      cfg.Seed,
		Player:    cfg.Player,
	})
	if err := session.Start(); err != nil {
		config.Exitf("start: %v", err)
	}

	loop := game.NewLoop(session, engine.SystemClock{})
	g := &Game{
		session: session,
		loop:    loop,
		view:    view,
		audio:   player,
	}

	if cfg.DebugUI {
		g.imgui = debugui_ebiten.New("Dice Escape", ScreenWidth, ScreenHeight)
		g.debug = debugui.New(session, loop)
		loop.Register(g.debug)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Dice Escape")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("Game loop failed")
	}
	session.EndGame()
}
