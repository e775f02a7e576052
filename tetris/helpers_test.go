package tetris_test

import (
	"testing"

	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/require"
)

// scriptedRandom deals kinds in a fixed cycle.
type scriptedRandom struct {
	kinds []tetris.Kind
	i     int
}

func (r *scriptedRandom) IntN(n int) int {
	k := r.kinds[r.i%len(r.kinds)]
	r.i++
	return int(k)
}

func deal(kinds ...tetris.Kind) tetris.Option {
	return tetris.WithRandom(&scriptedRandom{kinds: kinds})
}

func newSession(t testing.TB, opts ...tetris.Option) *tetris.Session {
	t.Helper()
	s, err := tetris.New(tetris.DefaultConfig(), opts...)
	require.NoError(t, err)
	return s
}

// fillRow occupies every column of row y except the listed holes.
func fillRow(b *tetris.Board, y int, holes ...int) {
	skip := make(map[int]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Fill(x, y, tetris.Red)
		}
	}
}

type snapshot struct {
	board   *tetris.Board
	current tetris.Piece
	next    tetris.Piece
	score   int
	speed   int
	frame   int
	state   tetris.State
}

func takeSnapshot(s *tetris.Session) snapshot {
	return snapshot{
		board:   s.Board().Clone(),
		current: s.Current(),
		next:    s.Next(),
		score:   s.Score(),
		speed:   s.Speed(),
		frame:   s.Frame(),
		state:   s.State(),
	}
}

func requireUnchanged(t *testing.T, before snapshot, s *tetris.Session) {
	t.Helper()
	after := takeSnapshot(s)
	require.True(t, before.board.Equal(after.board), "board changed")
	require.Equal(t, before.current, after.current)
	require.Equal(t, before.next, after.next)
	require.Equal(t, before.score, after.score)
	require.Equal(t, before.speed, after.speed)
	require.Equal(t, before.frame, after.frame)
	require.Equal(t, before.state, after.state)
}
