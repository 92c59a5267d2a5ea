package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/diceescape/engine"
	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/level"
	"github.com/sirupsen/logrus"
)

const tickSeconds = 1.0 / 60.0

// Totals accumulates session statistics across finished games.
type Totals struct {
	Games         int
	Wins          int
	Moves         int
	Rejected      int
	Deaths        int
	Coins         int
	LevelsCleared int
	BestScore     int
	HighestLevel  int
}

func (t *Totals) add(stats game.Stats, result game.Result) {
	t.Games++
	if result.Won {
		t.Wins++
	}
	t.Moves += stats.Moves
	t.Rejected += stats.Rejected
	t.Deaths += stats.Deaths
	t.Coins += stats.Coins
	t.LevelsCleared += stats.LevelsCleared
	t.BestScore = max(t.BestScore, result.Score)
	t.HighestLevel = max(t.HighestLevel, result.Level)
}

// soak drives one session with random input on a manual clock, so time in
// the game runs as fast as the host can tick.
type soak struct {
	session *game.Session
	loop    *engine.Scheduler
	clock   *engine.ManualClock
	rng     *rand.Rand
	levels  int

	// moveChance is the probability of pressing a key on a given tick.
	moveChance float64
	totals     Totals
}

func newSoak(source level.Source, rules game.Rules, seed uint64, log logrus.FieldLogger) *soak {
	clock := engine.NewManualClock(time.Unix(0, 0))
	session := game.NewSession(game.Options{
		Rules:  rules,
		Source: source,
		Clock:  clock,
		Logger: log,
		Seed:   seed,
		Player: "soak",
	})
	return &soak{
		session:    session,
		loop:       game.NewLoop(session, clock),
		clock:      clock,
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		levels:     source.Count(),
		moveChance: 0.2,
	}
}

// start begins a game on a random level so later levels get played without
// having to clear the earlier ones.
func (s *soak) start() error {
	if err := s.session.Start(); err != nil {
		return err
	}
	return s.session.LoadLevel(s.rng.IntN(s.levels))
}

// step feeds one tick of input, advances the clock and ticks the loop. It
// returns the time spent in the scheduler.
func (s *soak) step() (time.Duration, error) {
	switch s.session.State() {
	case game.StateGameOver:
		if result, ok := s.session.Result(); ok {
			s.totals.add(s.session.Stats(), result)
		}
		if err := s.start(); err != nil {
			return 0, err
		}
	case game.StateAwaitingAdvance:
		if err := s.session.Advance(); err != nil {
			return 0, err
		}
	case game.StatePlaying:
		if s.rng.Float64() < s.moveChance {
			s.session.Move(game.Directions[s.rng.IntN(len(game.Directions))])
		}
	}

	s.clock.Advance(time.Second / 60)
	start := time.Now()
	s.loop.Once(tickSeconds)
	return time.Since(start), nil
}
