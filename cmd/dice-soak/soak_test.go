package main

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/plus3/diceescape/game"
	"github.com/plus3/diceescape/level"
	"github.com/plus3/diceescape/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSoakPlaysGames(t *testing.T) {
	source, err := level.Default()
	require.NoError(t, err)

	s := newSoak(source, game.DefaultRules(), 42, logger.New(io.Discard, "error", "text"))
	s.moveChance = 1
	require.NoError(t, s.start())

	// Ten simulated minutes: every game runs out of lives or time long
	// before that.
	for range 60 * 60 * 10 {
		_, err := s.step()
		require.NoError(t, err)
	}

	assert.Greater(t, s.totals.Games, 0)
	assert.Greater(t, s.totals.Moves, 0)
	assert.Greater(t, s.totals.Deaths, 0)
	assert.GreaterOrEqual(t, s.totals.HighestLevel, 1)
}

func TestStatsFinalize(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)

	s.Samples = []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}
	s.Finalize()
	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
}

func TestTotalsMerge(t *testing.T) {
	a := Totals{Games: 2, Wins: 1, Moves: 10, BestScore: 50, HighestLevel: 3}
	a.merge(Totals{Games: 1, Moves: 4, Deaths: 3, BestScore: 80, HighestLevel: 2})
	assert.Equal(t, Totals{Games: 3, Wins: 1, Moves: 14, Deaths: 3, BestScore: 80, HighestLevel: 3}, a)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Sessions: 2,
		Levels:   10,
		Totals:   Totals{Games: 4, Wins: 1, BestScore: 123},
	}
	r.MemStatsEnd.HeapAlloc = 2 * 1024 * 1024

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Concurrent Sessions:** 2")
	assert.Contains(t, out, "**Games Finished:** 4 (1 won)")
	assert.Contains(t, out, "**Best Score:** 123")
	assert.Contains(t, out, "-> 2.00 MB (end)")
	assert.NotContains(t, out, "GC Pause Durations")
}
