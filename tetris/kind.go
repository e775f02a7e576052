package tetris

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of tetromino kinds.
const KindCount = int(KindL) + 1

// Point is a cell coordinate. Y grows downward; negative Y is above the visible board.
type Point struct {
	X, Y int
}

// baseShapes holds the four offsets of each kind relative to its pivot, at rotation 0.
// The order of the offsets is part of the contract: rotated blocks are returned in it.
var baseShapes = [KindCount][4]Point{
	KindI: {{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	KindS: {{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
	KindZ: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	KindJ: {{-1, 0}, {-1, 1}, {0, 0}, {1, 0}},
	KindL: {{-1, 0}, {0, 0}, {1, 0}, {1, 1}},
}

var kindColors = [KindCount]Color{
	KindI: Cyan,
	KindO: Yellow,
	KindT: Magenta,
	KindS: Green,
	KindZ: Red,
	KindJ: Blue,
	KindL: Orange,
}

// Valid reports whether k is one of the seven defined kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindL
}

// Shape returns the rotation-0 offsets of the kind.
func (k Kind) Shape() [4]Point {
	if !k.Valid() {
		return [4]Point{}
	}
	return baseShapes[k]
}

// Color returns the display color of the kind.
func (k Kind) Color() Color {
	if !k.Valid() {
		return Color{}
	}
	return kindColors[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}
