package loop

import (
	"fmt"

	"github.com/plus3/termtris/tetris"
)

// InputSource yields player commands without blocking. ok is false when nothing is pending.
type InputSource interface {
	Poll() (cmd tetris.Command, ok bool)
}

// Drawer presents the session state. It is called once per frame after the simulation.
type Drawer interface {
	Draw(session *tetris.Session)
}

// InputSystem drains its source into the frame's input queue.
type InputSystem struct {
	Source  InputSource
	Dropped int64
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Source == nil {
		return
	}
	for {
		cmd, ok := s.Source.Poll()
		if !ok {
			return
		}
		if cmd == tetris.CommandQuit {
			frame.Quit()
			continue
		}
		if !frame.Input.Push(cmd) {
			s.Dropped++
		}
	}
}

// SimulationSystem advances the session by one tick with at most one queued command.
type SimulationSystem struct {
	LastCommand tetris.Command
}

func (s *SimulationSystem) Execute(frame *Frame) {
	cmd, _ := frame.Input.Pop()
	s.LastCommand = cmd

	if cmd == tetris.CommandQuit {
		frame.Quit()
	}
	if err := frame.Session.Tick(cmd); err != nil {
		frame.Fail(fmt.Errorf("simulation tick %d: %w", frame.Tick, err))
	}
}

// RenderSystem hands the session to a Drawer after the simulation has run.
type RenderSystem struct {
	Drawer Drawer
}

func (s *RenderSystem) Execute(frame *Frame) {
	if s.Drawer == nil {
		return
	}
	s.Drawer.Draw(frame.Session)
}

// Standard registers the input, simulation and render systems in that order and
// returns the scheduler for chaining. Either argument may be nil.
func Standard(s *Scheduler, source InputSource, drawer Drawer) *Scheduler {
	s.Register(&InputSystem{Source: source})
	s.Register(&SimulationSystem{})
	if drawer != nil {
		s.Register(&RenderSystem{Drawer: drawer})
	}
	return s
}
