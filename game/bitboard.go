package game

import (
	"math/bits"

	"golang.org/x/exp/rand"
)

const bitboardWords = (NumPoints + 63) / 64

// Bitboard is a fixed-width bitset keyed by board position. The zero value is
// empty. Used for stone sets, legal-move sets and the per-color RAVE sets.
type Bitboard [bitboardWords]uint64

func (b *Bitboard) Set(p Pos)   { b[p>>6] |= 1 << (p & 63) }
func (b *Bitboard) Clear(p Pos) { b[p>>6] &^= 1 << (p & 63) }

// Reset empties the bitboard in place without reallocating.
func (b *Bitboard) Reset() { *b = Bitboard{} }

func (b Bitboard) Test(p Pos) bool { return b[p>>6]&(1<<(p&63)) != 0 }

func (b Bitboard) IsEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

func (b Bitboard) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

func (b Bitboard) And(o Bitboard) Bitboard {
	var r Bitboard
	for i := range b {
		r[i] = b[i] & o[i]
	}
	return r
}

func (b Bitboard) Or(o Bitboard) Bitboard {
	var r Bitboard
	for i := range b {
		r[i] = b[i] | o[i]
	}
	return r
}

func (b Bitboard) AndNot(o Bitboard) Bitboard {
	var r Bitboard
	for i := range b {
		r[i] = b[i] &^ o[i]
	}
	return r
}

// ForEach calls fn for every set position in ascending order.
func (b Bitboard) ForEach(fn func(Pos)) {
	for i, w := range b {
		for w != 0 {
			fn(Pos(i*64 + bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
}

// RandomPos samples a set position uniformly. Panics on an empty bitboard:
// callers are expected to test emptiness first.
func (b Bitboard) RandomPos(rng *rand.Rand) Pos {
	n := b.Count()
	if n == 0 {
		panic("game: RandomPos on empty bitboard")
	}
	k := rng.Intn(n)
	for i, w := range b {
		c := bits.OnesCount64(w)
		if k >= c {
			k -= c
			continue
		}
		for ; k > 0; k-- {
			w &= w - 1
		}
		return Pos(i*64 + bits.TrailingZeros64(w))
	}
	panic("game: bitboard count out of sync")
}
