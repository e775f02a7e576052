package loop_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plus3/termtris/loop"
	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSystem struct {
	ExecuteCount int
	LastTick     int64
}

func (s *countingSystem) Execute(frame *loop.Frame) {
	s.ExecuteCount++
	s.LastTick = frame.Tick
}

type orderSystem struct {
	name string
	log  *[]string
}

func (s *orderSystem) Execute(frame *loop.Frame) {
	*s.log = append(*s.log, s.name)
}

type quitAfter struct {
	n     int
	count int
}

func (s *quitAfter) Execute(frame *loop.Frame) {
	s.count++
	if s.count >= s.n {
		frame.Quit()
	}
}

type failingSystem struct{ err error }

func (s *failingSystem) Execute(frame *loop.Frame) {
	frame.Fail(s.err)
}

// scriptedSource replays a fixed list of commands, one per Poll.
type scriptedSource struct {
	cmds []tetris.Command
}

func (s *scriptedSource) Poll() (tetris.Command, bool) {
	if len(s.cmds) == 0 {
		return tetris.CommandNone, false
	}
	cmd := s.cmds[0]
	s.cmds = s.cmds[1:]
	return cmd, true
}

type recordingDrawer struct {
	frames []int
}

func (d *recordingDrawer) Draw(session *tetris.Session) {
	d.frames = append(d.frames, session.Frame())
}

type onlyO struct{}

func (onlyO) IntN(int) int { return int(tetris.KindO) }

func newSession(t *testing.T) *tetris.Session {
	t.Helper()
	s, err := tetris.New(tetris.DefaultConfig(), tetris.WithRandom(onlyO{}))
	require.NoError(t, err)
	return s
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t))

		var log []string
		scheduler.Register(&orderSystem{name: "a", log: &log})
		scheduler.Register(&orderSystem{name: "b", log: &log})

		require.NoError(t, scheduler.Once(1.0))
		require.NoError(t, scheduler.Once(1.0))

		assert.Equal(t, []string{"a", "b", "a", "b"}, log)
	})

	t.Run("custom state persistence", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t))
		counter := &countingSystem{}
		scheduler.Register(counter)

		for i := 0; i < 3; i++ {
			require.NoError(t, scheduler.Once(1.0/60))
		}

		assert.Equal(t, 3, counter.ExecuteCount)
		assert.Equal(t, int64(3), counter.LastTick)
	})

	t.Run("quit request", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t))
		after := &quitAfter{n: 1}
		counter := &countingSystem{}
		scheduler.Register(after)
		scheduler.Register(counter)

		err := scheduler.Once(1.0)
		assert.ErrorIs(t, err, loop.ErrQuit)
		assert.Equal(t, 1, counter.ExecuteCount, "systems after the quit request still run")
	})

	t.Run("first failure wins", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t))
		first := errors.New("first")
		scheduler.Register(&failingSystem{err: first})
		scheduler.Register(&failingSystem{err: errors.New("second")})

		assert.ErrorIs(t, scheduler.Once(1.0), first)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t))
		counter := &countingSystem{}
		scheduler.Register(counter)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error)
		go func() {
			done <- scheduler.Run(ctx, 1*time.Millisecond)
		}()

		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(1 * time.Second):
			t.Fatal("scheduler did not stop after context cancellation")
		}
		assert.Positive(t, counter.ExecuteCount)
	})

	t.Run("run stops on quit", func(t *testing.T) {
		scheduler := loop.NewScheduler(newSession(t))
		scheduler.Register(&quitAfter{n: 3})

		err := scheduler.Run(context.Background(), time.Millisecond)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), scheduler.GetStats().Ticks)
	})
}

func TestSchedulerStats(t *testing.T) {
	scheduler := loop.NewScheduler(newSession(t))
	scheduler.Register(&countingSystem{})
	scheduler.Register(&loop.SimulationSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for i := 0; i < 5; i++ {
		require.NoError(t, scheduler.Once(1.0))
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(10), stats.TotalExecutions)
	assert.Equal(t, int64(5), stats.Ticks)
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "countingSystem", stats.Systems[0].Name)
	assert.Equal(t, "SimulationSystem", stats.Systems[1].Name)
	for _, sys := range stats.Systems {
		assert.Equal(t, int64(5), sys.ExecutionCount)
		assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
		assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
	}
}

func TestStandardSystems(t *testing.T) {
	session := newSession(t)
	source := &scriptedSource{cmds: []tetris.Command{
		tetris.CommandMoveLeft,
		tetris.CommandMoveLeft,
		tetris.CommandHardDrop,
	}}
	drawer := &recordingDrawer{}
	scheduler := loop.Standard(loop.NewScheduler(session), source, drawer)

	require.NoError(t, scheduler.Once(1.0/60))
	assert.Equal(t, 4, session.Current().X, "one command per tick")
	assert.Equal(t, 2, scheduler.Input().Len())

	require.NoError(t, scheduler.Once(1.0/60))
	assert.Equal(t, 3, session.Current().X)

	require.NoError(t, scheduler.Once(1.0/60))
	assert.Equal(t, 4, session.Board().FilledCount())
	assert.True(t, session.Board().Occupied(3, 19))
	assert.True(t, session.Board().Occupied(4, 18))

	assert.Equal(t, []int{1, 2, 3}, drawer.frames)
}

func TestInputSystemQuit(t *testing.T) {
	session := newSession(t)
	source := &scriptedSource{cmds: []tetris.Command{tetris.CommandRotate, tetris.CommandQuit}}
	scheduler := loop.Standard(loop.NewScheduler(session), source, nil)

	assert.ErrorIs(t, scheduler.Once(1.0), loop.ErrQuit)
	assert.Equal(t, 1, session.Current().Rotation)
}

func TestSimulationSystemTicksWithoutInput(t *testing.T) {
	session := newSession(t)
	scheduler := loop.NewScheduler(session)
	scheduler.Register(&loop.SimulationSystem{})

	require.NoError(t, scheduler.Once(1.0))
	assert.Equal(t, 1, session.Frame())
}

type deferringSystem struct {
	name string
	log  *[]string
}

func (s *deferringSystem) Execute(frame *loop.Frame) {
	frame.Defer(func() { *s.log = append(*s.log, "deferred "+s.name) })
	*s.log = append(*s.log, s.name)
}

func TestFrameDefer(t *testing.T) {
	var log []string
	scheduler := loop.NewScheduler(newSession(t))
	scheduler.Register(&deferringSystem{name: "a", log: &log})
	scheduler.Register(&deferringSystem{name: "b", log: &log})

	require.NoError(t, scheduler.Once(0.016))
	assert.Equal(t, []string{"a", "b", "deferred a", "deferred b"}, log)

	log = log[:0]
	require.NoError(t, scheduler.Once(0.016))
	assert.Len(t, log, 4, "deferred calls do not carry over between frames")
}
