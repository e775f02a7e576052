package term_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/term"
	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type onlyKind tetris.Kind

func (k onlyKind) IntN(int) int { return int(k) }

func newSession(t *testing.T, cfg tetris.Config, kind tetris.Kind) *tetris.Session {
	t.Helper()
	s, err := tetris.New(cfg, tetris.WithRandom(onlyKind(kind)))
	require.NoError(t, err)
	return s
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(runeAt(screen, x, y))
	}
	return sb.String()
}

func screenText(screen tcell.Screen) string {
	_, h := screen.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = rowText(screen, y)
	}
	return strings.Join(lines, "\n")
}

func TestRendererDrawsCurrentPiece(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, tetris.DefaultConfig(), tetris.KindO)
	r := term.NewRenderer(screen)

	r.Draw(s)

	want := tcell.StyleDefault.Foreground(term.ToColor(tetris.Yellow))
	for _, b := range s.Current().Blocks() {
		sx, sy := r.CellOrigin(b.X, b.Y)
		for dx := 0; dx < term.CellWidth; dx++ {
			ch, _, style, _ := screen.GetContent(sx+dx, sy)
			assert.Equal(t, '█', ch, "block (%d,%d)", b.X, b.Y)
			assert.Equal(t, want, style)
		}
	}
}

func TestRendererDrawsBorder(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, tetris.DefaultConfig(), tetris.KindO)
	r := term.NewRenderer(screen)

	r.Draw(s)

	left, top := r.CellOrigin(0, 0)
	right, bottom := r.CellOrigin(s.Board().Width(), s.Board().Height())

	assert.Equal(t, '│', runeAt(screen, left-1, top))
	assert.Equal(t, '│', runeAt(screen, right, top))
	assert.Equal(t, '└', runeAt(screen, left-1, bottom))
	assert.Equal(t, '┘', runeAt(screen, right, bottom))
	assert.Equal(t, '─', runeAt(screen, left, bottom))
}

func TestRendererDrawsTerrainAndGhost(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, tetris.DefaultConfig(), tetris.KindO)
	r := term.NewRenderer(screen)

	s.HardDrop()
	r.Draw(s)

	// The first O settled on the floor under the spawn column.
	sx, sy := r.CellOrigin(5, 19)
	ch, _, style, _ := screen.GetContent(sx, sy)
	assert.Equal(t, '█', ch)
	assert.Equal(t, tcell.StyleDefault.Foreground(term.ToColor(tetris.Yellow)), style)

	// The next O's ghost rests on top of it.
	ghost := s.Ghost()
	require.Equal(t, 16, ghost.Y)
	for _, b := range ghost.Blocks() {
		gx, gy := r.CellOrigin(b.X, b.Y)
		assert.Equal(t, '░', runeAt(screen, gx, gy))
	}

	// Empty cells stay blank.
	ex, ey := r.CellOrigin(0, 10)
	assert.Equal(t, ' ', runeAt(screen, ex, ey))
}

func TestRendererGhostDisabled(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, tetris.DefaultConfig(), tetris.KindT)
	r := term.NewRenderer(screen)
	r.ShowGhost = false

	r.Draw(s)

	assert.NotContains(t, screenText(screen), "░")
}

func TestRendererPanel(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, tetris.DefaultConfig(), tetris.KindI)
	r := term.NewRenderer(screen)

	r.Draw(s)

	text := screenText(screen)
	assert.Contains(t, text, "NEXT")
	assert.Contains(t, text, "SCORE 0")
	assert.Contains(t, text, "LINES 0")
	assert.Contains(t, text, "SPEED 15")
	assert.Contains(t, text, "hard drop")
	assert.NotContains(t, text, "GAME OVER")
}

func TestRendererGameOver(t *testing.T) {
	screen := newScreen(t)
	cfg := tetris.DefaultConfig()
	cfg.Width, cfg.Height = 4, 2
	s := newSession(t, cfg, tetris.KindO)
	r := term.NewRenderer(screen)

	// The first O fills the right half of a two-row board; the next cannot spawn.
	s.HardDrop()
	require.True(t, s.GameOver())

	r.Draw(s)

	text := screenText(screen)
	assert.Contains(t, text, "GAME OVER")
	assert.Contains(t, text, "r to restart")
}

func TestRendererCentersBoard(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t, tetris.DefaultConfig(), tetris.KindO)
	r := term.NewRenderer(screen)

	r.Draw(s)
	x0, y0 := r.CellOrigin(0, 0)

	screen.SetSize(120, 40)
	r.Draw(s)
	x1, y1 := r.CellOrigin(0, 0)

	assert.Greater(t, x1, x0)
	assert.Greater(t, y1, y0)
}
