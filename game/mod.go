package game

// NoGo is played on a 9x9 board. Board geometry is fixed at compile time so
// move sets fit in a fixed-width bitboard.
const (
	BoardSize = 9
	NumPoints = BoardSize * BoardSize
)

// Pos indexes a point on the board, row major from the lower-left corner.
type Pos uint8

// NoPos is the sentinel for "no move": a pass, or the root of a search tree.
const NoPos Pos = NumPoints

// columns skips the letter I, following Go board convention.
const columns = "ABCDEFGHJ"

func (p Pos) String() string {
	if p >= NumPoints {
		return "pass"
	}
	x, y := int(p)%BoardSize, int(p)/BoardSize
	return string(columns[x]) + string(rune('1'+y))
}

// Color identifies a player. Black and White double as indices into
// per-color arrays (stone sets, RAVE bitboards).
type Color uint8

const (
	Black Color = iota
	White
)

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}
