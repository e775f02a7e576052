package loop

import "github.com/plus3/termtris/tetris"

// Frame is passed to every system during a single scheduler step.
type Frame struct {
	DeltaTime float64
	Tick      int64
	Session   *tetris.Session
	Input     *Queue

	quit     bool
	err      error
	deferred []func()
}

func newFrame(dt float64, tick int64, session *tetris.Session, input *Queue) *Frame {
	return &Frame{
		DeltaTime: dt,
		Tick:      tick,
		Session:   session,
		Input:     input,
	}
}

// Quit asks the scheduler to stop after this frame.
func (f *Frame) Quit() {
	f.quit = true
}

// Quitting reports whether a system has requested a stop during this frame.
func (f *Frame) Quitting() bool {
	return f.quit
}

// Fail records err as the result of the frame. The first error wins; later systems
// still run so rendering stays consistent.
func (f *Frame) Fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// Defer queues fn to run after every system has executed this frame, in queue order.
func (f *Frame) Defer(fn func()) {
	f.deferred = append(f.deferred, fn)
}

func (f *Frame) runDeferred() {
	for _, fn := range f.deferred {
		fn()
	}
	f.deferred = f.deferred[:0]
}
