// Package loop drives a tetris session: it runs an ordered list of systems once per
// frame, buffers player input between frames and keeps per-system timing statistics.
package loop

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/plus3/termtris/tetris"
)

// ErrQuit is returned by Once when a system requested a stop.
var ErrQuit = errors.New("quit requested")

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Ticks           int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler manages and executes systems in order against one session.
type Scheduler struct {
	session     *tetris.Session
	input       *Queue
	systems     []System
	systemStats []*systemStatsInternal
	ticks       int64
}

// NewScheduler creates a scheduler for the given session with a default-sized input queue.
func NewScheduler(session *tetris.Session) *Scheduler {
	return &Scheduler{
		session: session,
		input:   NewQueue(DefaultQueueSize),
		systems: make([]System, 0),
	}
}

// Session returns the session the scheduler drives.
func (s *Scheduler) Session() *tetris.Session {
	return s.session
}

// Input returns the command queue shared by every frame.
func (s *Scheduler) Input() *Queue {
	return s.input
}

// Register appends a system to the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time. It returns
// ErrQuit when a system asked to stop, or the first error a system reported.
func (s *Scheduler) Once(dt float64) error {
	s.ticks++
	frame := newFrame(dt, s.ticks, s.session, s.input)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	frame.runDeferred()

	if frame.err != nil {
		return frame.err
	}
	if frame.quit {
		return ErrQuit
	}
	return nil
}

// Run executes all systems at the given interval until the context is cancelled, a
// system requests a stop, or a system fails. A requested stop returns nil.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			if err := s.Once(dt); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
