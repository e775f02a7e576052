// Package term renders a tetris session on a tcell screen and turns terminal key
// events into commands.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/termtris/tetris"
)

const (
	// CellWidth is the number of terminal columns per board cell; terminal cells are
	// roughly twice as tall as they are wide.
	CellWidth = 2

	panelGap   = 4
	panelWidth = 22

	blockRune = '█'
	ghostRune = '░'
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

var legend = []string{
	"←/→  move",
	"↑    rotate",
	"↓    soft drop",
	"space hard drop",
	"r    restart",
	"esc  quit",
}

// Renderer draws the board, the falling piece, its ghost and a side panel with the
// lookahead piece and score. It implements loop.Drawer.
type Renderer struct {
	screen    tcell.Screen
	ShowGhost bool

	originX, originY int
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:    screen,
		ShowGhost: true,
	}
}

// ToColor converts an engine color to a tcell true-color value.
func ToColor(c tetris.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// CellOrigin returns the screen position of the left column of board cell (x, y) as of
// the last Draw.
func (r *Renderer) CellOrigin(x, y int) (int, int) {
	return r.originX + x*CellWidth, r.originY + y
}

func (r *Renderer) layout(b *tetris.Board) {
	w, h := r.screen.Size()
	boardW := b.Width() * CellWidth

	r.originX = max(1, (w-boardW-panelGap-panelWidth)/2)
	r.originY = max(0, (h-b.Height()-1)/2)
}

// Draw renders the full frame and shows it.
func (r *Renderer) Draw(s *tetris.Session) {
	b := s.Board()
	r.layout(b)
	r.screen.Clear()

	r.drawBorder(b)
	r.drawTerrain(b)
	if !s.GameOver() {
		if r.ShowGhost {
			r.drawGhost(s)
		}
		r.drawPiece(b, s.Current(), blockRune)
	}
	r.drawPanel(s)
	if s.GameOver() {
		r.drawGameOver(b)
	}

	r.screen.Show()
}

func (r *Renderer) drawBorder(b *tetris.Board) {
	left := r.originX - 1
	right := r.originX + b.Width()*CellWidth
	bottom := r.originY + b.Height()

	for y := r.originY; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, borderStyle)
		r.screen.SetContent(right, y, '│', nil, borderStyle)
	}
	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, borderStyle)
	}
	r.screen.SetContent(left, bottom, '└', nil, borderStyle)
	r.screen.SetContent(right, bottom, '┘', nil, borderStyle)
}

func (r *Renderer) drawTerrain(b *tetris.Board) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			cell := b.At(x, y)
			if cell.Filled {
				r.drawCell(x, y, blockRune, tcell.StyleDefault.Foreground(ToColor(cell.Color)))
			}
		}
	}
}

func (r *Renderer) drawGhost(s *tetris.Session) {
	ghost := s.Ghost()
	if ghost.Y == s.Current().Y {
		return
	}
	r.drawPiece(s.Board(), ghost, ghostRune)
}

// drawPiece skips cells above the visible board.
func (r *Renderer) drawPiece(b *tetris.Board, p tetris.Piece, glyph rune) {
	style := tcell.StyleDefault.Foreground(ToColor(p.Color))
	for _, c := range p.Blocks() {
		if b.InBounds(c.X, c.Y) {
			r.drawCell(c.X, c.Y, glyph, style)
		}
	}
}

func (r *Renderer) drawCell(x, y int, glyph rune, style tcell.Style) {
	sx, sy := r.CellOrigin(x, y)
	for dx := 0; dx < CellWidth; dx++ {
		r.screen.SetContent(sx+dx, sy, glyph, nil, style)
	}
}

func (r *Renderer) drawPanel(s *tetris.Session) {
	b := s.Board()
	px := r.originX + b.Width()*CellWidth + panelGap
	py := r.originY

	drawText(r.screen, px, py, "NEXT", textStyle)

	next := s.Next()
	style := tcell.StyleDefault.Foreground(ToColor(next.Color))
	for _, off := range next.Kind.Shape() {
		sx := px + (off.X+2)*CellWidth
		sy := py + 2 + off.Y
		for dx := 0; dx < CellWidth; dx++ {
			r.screen.SetContent(sx+dx, sy, blockRune, nil, style)
		}
	}

	y := py + 6
	drawText(r.screen, px, y, fmt.Sprintf("SCORE %d", s.Score()), textStyle)
	drawText(r.screen, px, y+1, fmt.Sprintf("LINES %d", s.Stats().Lines()), textStyle)
	drawText(r.screen, px, y+2, fmt.Sprintf("SPEED %d", s.Speed()), textStyle)

	y += 4
	for i, line := range legend {
		drawText(r.screen, px, y+i, line, dimStyle)
	}
}

func (r *Renderer) drawGameOver(b *tetris.Board) {
	cx := r.originX + b.Width()*CellWidth/2
	cy := r.originY + b.Height()/2
	drawCentered(r.screen, cx, cy, " GAME OVER ", alertStyle)
	drawCentered(r.screen, cx, cy+1, " r to restart ", alertStyle)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}
