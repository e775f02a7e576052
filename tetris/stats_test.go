package tetris_test

import (
	"testing"

	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCountSpawns(t *testing.T) {
	s := newSession(t, deal(tetris.KindO, tetris.KindO, tetris.KindI))

	assert.Equal(t, 2, s.Stats().Spawned(tetris.KindO))
	assert.Equal(t, 0, s.Stats().Spawned(tetris.KindI))

	require.NoError(t, s.Tick(tetris.CommandHardDrop))

	assert.Equal(t, 2, s.Stats().Spawned(tetris.KindO))
	assert.Equal(t, 1, s.Stats().Spawned(tetris.KindI))
	assert.Equal(t, 3, s.Stats().TotalSpawned())
	assert.Equal(t, 1, s.Stats().Locks())
	assert.Equal(t, 0, s.Stats().Lines())
}

func TestStatsCountClears(t *testing.T) {
	s := newSession(t, deal(tetris.KindO))
	b := s.Board()
	fillRow(b, 18, 4, 5)
	fillRow(b, 19, 4, 5)
	s.SetCurrent(tetris.NewPiece(tetris.KindO, 4, 0))

	require.NoError(t, s.Tick(tetris.CommandHardDrop))

	assert.Equal(t, 1, s.Stats().Clears(2))
	assert.Equal(t, 0, s.Stats().Clears(1))
	assert.Equal(t, 2, s.Stats().Lines())
	assert.Equal(t, 0, b.FilledCount())
}

func TestStatsSurviveUntilRestart(t *testing.T) {
	s := newSession(t, deal(tetris.KindZ))
	require.NoError(t, s.Tick(tetris.CommandHardDrop))
	require.Equal(t, 1, s.Stats().Locks())

	s.SetCurrent(tetris.Piece{Kind: tetris.KindZ, Rotation: 2, X: 5, Y: 0})
	s.LockPiece()
	require.True(t, s.GameOver())
	assert.Equal(t, 1, s.Stats().Locks())

	require.True(t, s.Restart())
	assert.Equal(t, 0, s.Stats().Locks())
	assert.Equal(t, 2, s.Stats().Spawned(tetris.KindZ))
}
