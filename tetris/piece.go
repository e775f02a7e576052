package tetris

// Piece is a tetromino placed on the board. Pieces are values: movement and rotation
// build a candidate copy which replaces the current piece only when it fits.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
	Color    Color
}

// NewPiece creates a piece of the given kind at rotation 0 anchored at (x, y).
func NewPiece(kind Kind, x, y int) Piece {
	return Piece{
		Kind:  kind,
		X:     x,
		Y:     y,
		Color: kind.Color(),
	}
}

// Blocks returns the absolute board cells covered by the piece, in shape definition order.
func (p Piece) Blocks() [4]Point {
	var blocks [4]Point
	rot := ((p.Rotation % 4) + 4) % 4

	for i, b := range p.Kind.Shape() {
		var rx, ry int
		switch rot {
		case 0:
			rx, ry = b.X, b.Y
		case 1:
			rx, ry = -b.Y, b.X
		case 2:
			rx, ry = -b.X, -b.Y
		default:
			rx, ry = b.Y, -b.X
		}
		blocks[i] = Point{X: p.X + rx, Y: p.Y + ry}
	}

	return blocks
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its rotation advanced by delta quarter turns.
func (p Piece) Rotated(delta int) Piece {
	p.Rotation = (p.Rotation + delta) % 4
	return p
}
