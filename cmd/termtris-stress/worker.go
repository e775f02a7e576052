package main

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/tetris"
)

// workerResult is what one goroutine measured over its sessions.
type workerResult struct {
	Ticks     int64
	Games     int
	Locks     int
	Lines     int
	BestScore int
	Clears    [5]int
	TickTime  Stats
	Systems   []loop.SystemStats
}

// runWorker plays back-to-back games on one session until ctx is done or maxTicks
// frames have run. maxTicks <= 0 means no limit.
func runWorker(ctx context.Context, cfg tetris.Config, maxTicks int64) (*workerResult, error) {
	session, err := tetris.New(cfg)
	if err != nil {
		return nil, err
	}

	scheduler := loop.Standard(loop.NewScheduler(session), newRandomSource(cfg.Seed+1, session), nil)
	res := &workerResult{}
	counted := false

	record := func() {
		stats := session.Stats()
		res.Games++
		res.Locks += stats.Locks()
		res.Lines += stats.Lines()
		res.BestScore = max(res.BestScore, session.Score())
		for rows := 1; rows < len(res.Clears); rows++ {
			res.Clears[rows] += stats.Clears(rows)
		}
	}

	for maxTicks <= 0 || res.Ticks < maxTicks {
		if ctx.Err() != nil {
			break
		}

		start := time.Now()
		if err := scheduler.Once(1.0 / 60.0); err != nil {
			return nil, fmt.Errorf("tick %d: %w", res.Ticks, err)
		}
		res.TickTime.Add(time.Since(start))
		res.Ticks++

		switch {
		case session.GameOver() && !counted:
			record()
			counted = true
		case !session.GameOver():
			counted = false
		}
	}

	if !session.GameOver() {
		record()
	}
	res.Systems = scheduler.GetStats().Systems
	return res, nil
}
