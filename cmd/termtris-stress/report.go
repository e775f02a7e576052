package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/termtris/loop"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Workers  int
	MaxTicks int64
	Width    int
	Height   int
	Seed     uint64

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	Games          int
	Locks          int
	Lines          int
	BestScore      int
	Clears         [5]int
	TickTime       Stats
	Systems        []loop.SystemStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running tick-time aggregates so memory stays flat however long the run.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Total time.Duration
	Count int64
}

// Add records one sample.
func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Merge folds other's aggregates into s.
func (s *Stats) Merge(other Stats) {
	if other.Count == 0 {
		return
	}
	if s.Count == 0 || other.Min < s.Min {
		s.Min = other.Min
	}
	s.Max = max(s.Max, other.Max)
	s.Total += other.Total
	s.Count += other.Count
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

// Merge folds one worker's result into the report. System timings are summed by
// position; every worker registers the same systems.
func (r *Report) Merge(res *workerResult) {
	r.TotalTicks += res.Ticks
	r.Games += res.Games
	r.Locks += res.Locks
	r.Lines += res.Lines
	r.BestScore = max(r.BestScore, res.BestScore)
	for i, n := range res.Clears {
		r.Clears[i] += n
	}
	r.TickTime.Merge(res.TickTime)

	if len(r.Systems) == 0 {
		r.Systems = make([]loop.SystemStats, len(res.Systems))
		for i, sys := range res.Systems {
			r.Systems[i] = loop.SystemStats{Name: sys.Name, MinDuration: sys.MinDuration}
		}
	}
	for i, sys := range res.Systems {
		if i >= len(r.Systems) {
			break
		}
		agg := &r.Systems[i]
		agg.ExecutionCount += sys.ExecutionCount
		agg.TotalDuration += sys.TotalDuration
		agg.MinDuration = min(agg.MinDuration, sys.MinDuration)
		agg.MaxDuration = max(agg.MaxDuration, sys.MaxDuration)
		if agg.ExecutionCount > 0 {
			agg.AvgDuration = agg.TotalDuration / time.Duration(agg.ExecutionCount)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Termtris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Workers:** {{.Workers}}
- **Tick Limit per Worker:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}none{{end}}
- **Board:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}

## Gameplay
- **Games Played:** {{.Games}}
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
- **Best Score:** {{.BestScore}}
- **Clears:** single {{index .Clears 1}}, double {{index .Clears 2}}, triple {{index .Clears 3}}, tetris {{index .Clears 4}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Ticks per Second:** {{rate .TotalTicks .TotalTime}}
- **Tick Time (Frame):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"rate": func(n int64, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(n)/d.Seconds())
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
