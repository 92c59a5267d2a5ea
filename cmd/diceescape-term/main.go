// Command diceescape-term plays Dice Escape in a terminal. The board is drawn
// with tcell, one character per tile; logs go to a file since the terminal is
// taken.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/diceescape/audio"
	"github.com/plus3/diceescape/config"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/level"
	"github.com/plus3/diceescape/logger"
	"github.com/plus3/diceescape/score"
)

func main() {
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			config.Exitf("open log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.New(logOut, cfg.LogLevel, cfg.LogFormat)
	logger.Log = log

	source, err := level.Open(cfg.LevelFile)
	if err != nil {
		config.Exitf("levels: %v", err)
	}

	openCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	scores, err := score.Open(openCtx, cfg.ScoreBackend, cfg.ScoreURL, cfg.DatabaseDSN, log)
	cancel()
	if err != nil {
		log.WithError(err).Warn("Score backend unavailable, scores will not be kept")
		scores = &score.Service{Submitter: score.Nop{}}
	}
	defer scores.Close()

	player, closeAudio := audio.Open(cfg.Sound, log)
	defer closeAudio()

	screen, err := tcell.NewScreen()
	if err != nil {
		config.Exitf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		config.Exitf("screen: %v", err)
	}
	defer screen.Fini()

	term := newTerminal(screen, scores, player, log)
	session := game.NewSession(game.Options{
		Rules:     cfg.Rules(),
		Source:    source,
		Presenter: game.Presenters{player, term},
		Scores:    scores.Submitter,
		Logger:    log,
		Seed:      cfg.Seed,
		Player:    cfg.Player,
	})
	term.attach(session, game.NewLoop(session, engine.SystemClock{}))
	if err := session.Start(); err != nil {
		screen.Fini()
		config.Exitf("start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	term.run(ctx)
	session.EndGame()
}
