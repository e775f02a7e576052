package tetris

// Cell is a single board square. The zero value is an empty cell.
type Cell struct {
	Color  Color
	Filled bool
}

// Board is the settled terrain: a fixed width by height grid stored row-major.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board. Callers validate the dimensions through Config.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

func (b *Board) idx(x, y int) int {
	return y*b.width + x
}

// InBounds reports whether (x, y) lies on the visible board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Coordinates off the board read as empty.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[b.idx(x, y)]
}

// Occupied reports whether the cell at (x, y) holds a settled block.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y).Filled
}

// Row returns a copy of row y, or nil when y is off the board.
func (b *Board) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]Cell, b.width)
	copy(row, b.cells[b.idx(0, y):b.idx(0, y+1)])
	return row
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := 0; x < b.width; x++ {
		if !b.cells[b.idx(x, y)].Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(clone.cells, b.cells)
	return clone
}

// Equal reports whether both boards have the same dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) set(x, y int, c Color) {
	b.cells[b.idx(x, y)] = Cell{Color: c, Filled: true}
}

func (b *Board) reset() {
	clear(b.cells)
}

// collapse removes row y by shifting every row above it down by one and emptying row 0.
func (b *Board) collapse(y int) {
	for yy := y; yy > 0; yy-- {
		copy(b.cells[b.idx(0, yy):b.idx(0, yy+1)], b.cells[b.idx(0, yy-1):b.idx(0, yy)])
	}
	clear(b.cells[:b.width])
}

// clearFullRows scans bottom to top and collapses each full row, re-examining the same
// index afterwards since the row above has moved into it. It returns the rows removed.
func (b *Board) clearFullRows() int {
	cleared := 0
	for y := b.height - 1; y >= 0; {
		if b.RowFull(y) {
			b.collapse(y)
			cleared++
			continue
		}
		y--
	}
	return cleared
}
