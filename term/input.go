package term

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/tetris"
)

// Input pumps terminal events from a blocking PollEvent loop into a buffered channel
// and hands them out without blocking through Poll.
type Input struct {
	screen tcell.Screen
	keys   KeyMap
	events chan tcell.Event
}

// NewInput creates an input source for screen using keys.
func NewInput(screen tcell.Screen, keys KeyMap) *Input {
	return &Input{
		screen: screen,
		keys:   keys,
		events: make(chan tcell.Event, 32),
	}
}

// Start launches the event pump. It stops when ctx is done or the screen is finalized.
func (in *Input) Start(ctx context.Context) {
	go func() {
		for {
			ev := in.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Poll returns the next bound command. Resize events resynchronize the screen and
// unbound keys are skipped.
func (in *Input) Poll() (tetris.Command, bool) {
	for {
		select {
		case ev := <-in.events:
			if cmd, ok := in.handle(ev); ok {
				return cmd, true
			}
		default:
			return tetris.CommandNone, false
		}
	}
}

func (in *Input) handle(ev tcell.Event) (tetris.Command, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		in.screen.Sync()
	case *tcell.EventKey:
		return in.keys.Lookup(e.Key(), e.Rune())
	}
	return tetris.CommandNone, false
}

// Post queues an event as if the terminal had produced it.
func (in *Input) Post(ev tcell.Event) bool {
	select {
	case in.events <- ev:
		return true
	default:
		return false
	}
}
