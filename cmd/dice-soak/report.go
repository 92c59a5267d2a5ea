package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Levels   int
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	GameTime       time.Duration
	UpdateTime     Stats
	Totals         Totals
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (t *Totals) merge(o Totals) {
	t.Games += o.Games
	t.Wins += o.Wins
	t.Moves += o.Moves
	t.Rejected += o.Rejected
	t.Deaths += o.Deaths
	t.Coins += o.Coins
	t.LevelsCleared += o.LevelsCleared
	t.BestScore = max(t.BestScore, o.BestScore)
	t.HighestLevel = max(t.HighestLevel, o.HighestLevel)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Dice Escape Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Concurrent Sessions:** {{.Sessions}}
- **Levels:** {{.Levels}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Game Time:** {{.GameTime}}
- **Update Time (Tick):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Gameplay
- **Games Finished:** {{.Totals.Games}} ({{.Totals.Wins}} won)
- **Moves:** {{.Totals.Moves}} ({{.Totals.Rejected}} rejected)
- **Deaths:** {{.Totals.Deaths}}
- **Coins:** {{.Totals.Coins}}
- **Levels Cleared:** {{.Totals.LevelsCleared}}
- **Best Score:** {{.Totals.BestScore}}
- **Highest Level:** {{.Totals.HighestLevel}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
