package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// Board is a NoGo position: two stone sets, one per color. Placement follows
// the no-capture ruleset: a move is illegal if it would leave any group of
// either color without a liberty. There is no ko and no capturing; stones
// only ever get added, so Board is a small value that is cheap to clone.
type Board struct {
	stones [2]Bitboard
}

var neighbors [NumPoints]Bitboard

func init() {
	for p := 0; p < NumPoints; p++ {
		x, y := p%BoardSize, p/BoardSize
		if x > 0 {
			neighbors[p].Set(Pos(p - 1))
		}
		if x < BoardSize-1 {
			neighbors[p].Set(Pos(p + 1))
		}
		if y > 0 {
			neighbors[p].Set(Pos(p - BoardSize))
		}
		if y < BoardSize-1 {
			neighbors[p].Set(Pos(p + BoardSize))
		}
	}
}

func NewBoard() *Board {
	return &Board{}
}

// Clone returns an independent value copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Stone reports the color of the stone at p, if any.
func (b *Board) Stone(p Pos) (Color, bool) {
	if b.stones[Black].Test(p) {
		return Black, true
	}
	if b.stones[White].Test(p) {
		return White, true
	}
	return Black, false
}

func (b *Board) occupied() Bitboard {
	return b.stones[Black].Or(b.stones[White])
}

// groupAt flood-fills the group containing p within stones and returns it
// together with its liberties. occupied must cover both colors.
func groupAt(stones, occupied Bitboard, p Pos) (group, libs Bitboard) {
	frontier := Bitboard{}
	frontier.Set(p)
	for !frontier.IsEmpty() {
		var next Bitboard
		frontier.ForEach(func(q Pos) {
			group.Set(q)
			adj := neighbors[q]
			next = next.Or(adj.And(stones))
			libs = libs.Or(adj.AndNot(occupied))
		})
		frontier = next.AndNot(group)
	}
	return group, libs
}

// Legal reports whether color may place at p: the point is empty, the placed
// group keeps at least one liberty (no suicide) and every adjacent enemy
// group keeps at least one liberty (captures are illegal).
func (b *Board) Legal(p Pos, c Color) bool {
	if p >= NumPoints || b.occupied().Test(p) {
		return false
	}
	own := b.stones[c]
	own.Set(p)
	enemy := b.stones[c.Opponent()]
	occ := own.Or(enemy)

	if _, libs := groupAt(own, occ, p); libs.IsEmpty() {
		return false
	}

	legal := true
	var checked Bitboard
	neighbors[p].And(enemy).ForEach(func(q Pos) {
		if !legal || checked.Test(q) {
			return
		}
		group, libs := groupAt(enemy, occ, q)
		checked = checked.Or(group)
		if libs.IsEmpty() {
			legal = false
		}
	})
	return legal
}

// LegalMoves returns the set of legal placements for color.
func (b *Board) LegalMoves(c Color) Bitboard {
	var moves Bitboard
	occ := b.occupied()
	for p := Pos(0); p < NumPoints; p++ {
		if !occ.Test(p) && b.Legal(p, c) {
			moves.Set(p)
		}
	}
	return moves
}

// HasLegalMove reports whether color has any legal placement. A player with
// no legal move loses.
func (b *Board) HasLegalMove(c Color) bool {
	occ := b.occupied()
	for p := Pos(0); p < NumPoints; p++ {
		if !occ.Test(p) && b.Legal(p, c) {
			return true
		}
	}
	return false
}

// Place puts a stone of color at p. An error here means the caller tried a
// move the rules engine never reported as legal.
func (b *Board) Place(p Pos, c Color) error {
	if !b.Legal(p, c) {
		return fmt.Errorf("illegal move %v for %v", p, c)
	}
	b.stones[c].Set(p)
	return nil
}

// TacticalPoints returns the liberties of every group, of either color, that
// is down to exactly two liberties. Rollouts bias toward these points and
// flag moves on them for RAVE credit.
func (b *Board) TacticalPoints() Bitboard {
	var points, seen Bitboard
	occ := b.occupied()
	for _, c := range [2]Color{Black, White} {
		stones := b.stones[c]
		stones.ForEach(func(p Pos) {
			if seen.Test(p) {
				return
			}
			group, libs := groupAt(stones, occ, p)
			seen = seen.Or(group)
			if libs.Count() == 2 {
				points = points.Or(libs)
			}
		})
	}
	return points
}

// RolloutMove samples a legal move for color, preferring tactical points when
// any are playable. The boolean marks the move as tactically notable; only
// notable moves feed the RAVE statistics. Returns NoPos when color cannot
// move.
func (b *Board) RolloutMove(c Color, tactical Bitboard, rng *rand.Rand) (Pos, bool) {
	legal := b.LegalMoves(c)
	if legal.IsEmpty() {
		return NoPos, false
	}
	if hot := legal.And(tactical); !hot.IsEmpty() {
		return hot.RandomPos(rng), true
	}
	return legal.RandomPos(rng), false
}

// ParseBoard builds a position from BoardSize row strings, top row first,
// using 'X' for black, 'O' for white and '.' for empty. Intended for tests
// and debugging; the position is not checked for reachability.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("expected %d rows, got %d", BoardSize, len(rows))
	}
	b := NewBoard()
	for i, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", i, BoardSize, len(row))
		}
		y := BoardSize - 1 - i
		for x := 0; x < BoardSize; x++ {
			p := Pos(y*BoardSize + x)
			switch row[x] {
			case 'X':
				b.stones[Black].Set(p)
			case 'O':
				b.stones[White].Set(p)
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected cell %q", i, row[x])
			}
		}
	}
	return b, nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := BoardSize - 1; y >= 0; y-- {
		for x := 0; x < BoardSize; x++ {
			p := Pos(y*BoardSize + x)
			switch {
			case b.stones[Black].Test(p):
				sb.WriteByte('X')
			case b.stones[White].Test(p):
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
