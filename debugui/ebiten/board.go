package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/termtris/tetris"
)

var (
	wellColor   = color.RGBA{24, 24, 32, 255}
	gridColor   = color.RGBA{40, 40, 52, 255}
	borderColor = color.RGBA{200, 200, 210, 255}
	overlay     = color.RGBA{0, 0, 0, 160}
)

// RGBA converts an engine color to an opaque image color.
func RGBA(c tetris.Color) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// BoardView draws a session's board with its top-left corner at (X, Y).
type BoardView struct {
	X, Y      float32
	CellSize  float32
	ShowGhost bool
}

// CellRect returns the top-left corner of board cell (x, y) on screen.
func (v BoardView) CellRect(x, y int) (float32, float32) {
	return v.X + float32(x)*v.CellSize, v.Y + float32(y)*v.CellSize
}

// Size returns the pixel size of b.
func (v BoardView) Size(b *tetris.Board) (float32, float32) {
	return float32(b.Width()) * v.CellSize, float32(b.Height()) * v.CellSize
}

func (v BoardView) Draw(dst *ebiten.Image, s *tetris.Session) {
	b := s.Board()
	w, h := v.Size(b)

	vector.DrawFilledRect(dst, v.X, v.Y, w, h, wellColor, false)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			cell := b.At(x, y)
			if cell.Filled {
				v.fillCell(dst, x, y, RGBA(cell.Color))
				continue
			}
			sx, sy := v.CellRect(x, y)
			vector.StrokeRect(dst, sx, sy, v.CellSize, v.CellSize, 1, gridColor, false)
		}
	}

	if !s.GameOver() {
		current := s.Current()
		if v.ShowGhost {
			v.strokePiece(dst, b, s.Ghost(), RGBA(current.Color))
		}
		for _, c := range current.Blocks() {
			if b.InBounds(c.X, c.Y) {
				v.fillCell(dst, c.X, c.Y, RGBA(current.Color))
			}
		}
	}

	vector.StrokeRect(dst, v.X-1, v.Y-1, w+2, h+2, 2, borderColor, false)

	if s.GameOver() {
		vector.DrawFilledRect(dst, v.X, v.Y, w, h, overlay, false)
	}
}

func (v BoardView) fillCell(dst *ebiten.Image, x, y int, c color.Color) {
	sx, sy := v.CellRect(x, y)
	vector.DrawFilledRect(dst, sx+1, sy+1, v.CellSize-2, v.CellSize-2, c, false)
}

func (v BoardView) strokePiece(dst *ebiten.Image, b *tetris.Board, p tetris.Piece, c color.Color) {
	for _, cell := range p.Blocks() {
		if !b.InBounds(cell.X, cell.Y) {
			continue
		}
		sx, sy := v.CellRect(cell.X, cell.Y)
		vector.StrokeRect(dst, sx+2, sy+2, v.CellSize-4, v.CellSize-4, 1, c, false)
	}
}
