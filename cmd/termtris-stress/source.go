package main

import (
	"math/rand/v2"

	"github.com/plus3/termtris/tetris"
)

type weightedCommand struct {
	cmd    tetris.Command
	weight int
}

// playerMix roughly matches a human at the keyboard: mostly idle frames, lots of
// sideways movement, an occasional hard drop.
var playerMix = []weightedCommand{
	{tetris.CommandNone, 40},
	{tetris.CommandMoveLeft, 14},
	{tetris.CommandMoveRight, 14},
	{tetris.CommandRotate, 12},
	{tetris.CommandSoftDrop, 12},
	{tetris.CommandHardDrop, 8},
}

// randomSource yields at most one command per frame, drawn from playerMix. After game
// over it asks for a restart.
type randomSource struct {
	rng     *rand.Rand
	session *tetris.Session
	total   int
	idle    bool
}

func newRandomSource(seed uint64, session *tetris.Session) *randomSource {
	total := 0
	for _, wc := range playerMix {
		total += wc.weight
	}
	return &randomSource{
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		session: session,
		total:   total,
	}
}

func (s *randomSource) Poll() (tetris.Command, bool) {
	if s.idle {
		s.idle = false
		return tetris.CommandNone, false
	}
	s.idle = true

	if s.session.GameOver() {
		return tetris.CommandRestart, true
	}

	n := s.rng.IntN(s.total)
	for _, wc := range playerMix {
		if n < wc.weight {
			return wc.cmd, true
		}
		n -= wc.weight
	}
	return tetris.CommandNone, true
}
