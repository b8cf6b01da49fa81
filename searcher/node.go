package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"nogo/game"
)

// node is one search-tree vertex: the position reached after mover placed at
// pos. The root is a sentinel with pos == NoPos standing for the opponent's
// last move before the search. Children live in a single slice allocated
// exactly once on expansion and owned by their parent; the parent pointer is
// a non-owning back-reference used only during backpropagation.
type node struct {
	parent   *node
	children []node
	mover    game.Color
	pos      game.Pos
	terminal bool

	visits     int
	wins       int
	raveVisits int
	raveWins   int
	logVisits  float64
	score      float64 // scratch, written by selectChild
}

func (n *node) hasChildren() bool {
	return len(n.children) > 0
}

// selectChild picks the child maximizing the selection-policy score,
// breaking near-ties uniformly at random. Requires hasChildren.
func (n *node) selectChild(p policy, rng *rand.Rand) *node {
	maxScore := math.Inf(-1)
	for i := range n.children {
		child := &n.children[i]
		child.score = p.score(n.logVisits, child)
		if child.score > maxScore {
			maxScore = child.score
		}
	}

	var tied game.Bitboard
	for i := range n.children {
		if n.children[i].score >= maxScore-tieEpsilon {
			tied.Set(game.Pos(i))
		}
	}
	return &n.children[tied.RandomPos(rng)]
}

// expand materializes one child per legal reply of the color opposite this
// node's mover. Returns false for a node that has never been visited or is
// known terminal. A node with no legal replies is marked terminal for good.
// Idempotent: an expanded node keeps its children slice untouched.
func (n *node) expand(b *game.Board, p policy) bool {
	if n.visits == 0 || n.terminal {
		return false
	}
	if n.hasChildren() {
		return true
	}

	next := n.mover.Opponent()
	moves := b.LegalMoves(next)
	count := moves.Count()
	if count == 0 {
		n.terminal = true
		return false
	}

	children := make([]node, count)
	i := 0
	moves.ForEach(func(pos game.Pos) {
		children[i] = node{
			parent:     n,
			mover:      next,
			pos:        pos,
			raveVisits: p.priorVisits,
			raveWins:   p.priorWins,
		}
		i++
	})
	n.children = children
	return true
}

// update records one playout outcome: a direct visit for this node, plus
// RAVE credit for every child whose move appears in the playout's move set
// for the child's color.
func (n *node) update(winner game.Color, raves *[2]game.Bitboard) {
	n.visits++
	n.logVisits = math.Log(float64(n.visits))
	if winner == n.mover {
		n.wins++
	}

	childMover := n.mover.Opponent()
	rave := &raves[childMover]
	childWin := 0
	if winner == childMover {
		childWin = 1
	}
	for i := range n.children {
		child := &n.children[i]
		if rave.Test(child.pos) {
			child.raveVisits++
			child.raveWins += childWin
		}
	}
}

// childVisits maps each visited child's move to its visit count. Used only
// at the root for final move selection.
func (n *node) childVisits() map[game.Pos]int {
	visits := make(map[game.Pos]int, len(n.children))
	for i := range n.children {
		if child := &n.children[i]; child.visits > 0 {
			visits[child.pos] = child.visits
		}
	}
	return visits
}
