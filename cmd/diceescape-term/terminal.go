package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/diceescape/audio"
	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/score"
	"github.com/sirupsen/logrus"
)

const (
	tickInterval  = time.Second / 60
	highScoreRows = 5
)

// terminal runs a session against a tcell screen and presents its events.
type terminal struct {
	screen  tcell.Screen
	scores  *score.Service
	audio   *audio.Player
	log     logrus.FieldLogger
	session *game.Session
	loop    *engine.Scheduler

	hud        game.HUD
	message    string
	highScores []game.Result
}

func newTerminal(screen tcell.Screen, scores *score.Service, player *audio.Player, log logrus.FieldLogger) *terminal {
	return &terminal{screen: screen, scores: scores, audio: player, log: log}
}

func (t *terminal) attach(s *game.Session, loop *engine.Scheduler) {
	t.session = s
	t.loop = loop
}

func (t *terminal) Present(ev game.Event) {
	switch ev.Kind {
	case game.EventHUD:
		t.hud = ev.HUD
	case game.EventLevelLoaded:
		t.message = fmt.Sprintf("Level %d", ev.Level)
		t.highScores = nil
	case game.EventLevelComplete:
		t.message = fmt.Sprintf("Level complete! %d s left, bonus +%d. Enter to continue", ev.SecondsLeft, ev.Bonus)
	case game.EventGameOver:
		if ev.Won {
			t.message = fmt.Sprintf("You escaped! Final score %d. Enter to play again", ev.Score)
		} else {
			t.message = fmt.Sprintf("Game over on level %d. Final score %d. Enter to play again", ev.Level, ev.Score)
		}
		t.loadHighScores()
	case game.EventPaused:
		t.message = "Paused. Space to resume"
	case game.EventResumed:
		t.message = ""
	case game.EventTimerReset:
		t.message = "Time restored"
	}
}

// loadHighScores fetches the leaderboard when a store is configured. The
// score just submitted may not be in it yet.
func (t *terminal) loadHighScores() {
	if t.scores == nil || t.scores.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	top, err := t.scores.Top(ctx, highScoreRows)
	if err != nil {
		t.log.WithError(err).Warn("Could not load high scores")
		return
	}
	t.highScores = top
}

// run polls input and ticks the session until ctx is done or the player
// quits.
func (t *terminal) run(ctx context.Context) {
	events := make(chan tcell.Event, 16)
	go pollEvents(ctx, t.screen.PollEvent, events)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !t.handle(ev) {
				return
			}
		case <-ticker.C:
			t.loop.Once(tickInterval.Seconds())
			t.draw()
		}
	}
}

// pollEvents pumps screen events into events until the screen is finalized
// or ctx is done. events is closed when poll reports no more events.
func pollEvents(ctx context.Context, poll func() tcell.Event, events chan<- tcell.Event) {
	for {
		ev := poll()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// keyDirection maps arrow keys to moves.
func keyDirection(key tcell.Key) game.Direction {
	switch key {
	case tcell.KeyLeft:
		return game.DirLeft
	case tcell.KeyRight:
		return game.DirRight
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyDown:
		return game.DirDown
	}
	return game.DirNone
}

// handle applies one terminal event. It returns false when the player quits.
func (t *terminal) handle(ev tcell.Event) bool {
	s := t.session
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if dir := keyDirection(ev.Key()); dir != game.DirNone {
			s.Move(dir)
			return true
		}
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			t.confirm()
		case tcell.KeyF5:
			if !s.RetryLevel() {
				t.message = "Retry needs a spare life"
			}
		case tcell.KeyF3:
			if t.audio.ToggleMute() {
				t.message = "Sound on"
			} else {
				t.message = "Sound off"
			}
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				t.togglePause()
			} else {
				s.TypeRune(ev.Rune())
			}
		}
	}
	return true
}

func (t *terminal) confirm() {
	var err error
	switch t.session.State() {
	case game.StateAwaitingAdvance:
		err = t.session.Advance()
	case game.StateGameOver:
		err = t.session.Restart()
	}
	if err != nil {
		t.message = err.Error()
	}
}

func (t *terminal) togglePause() {
	if t.session.State() == game.StatePaused {
		t.session.Resume()
	} else {
		t.session.Pause()
	}
}
