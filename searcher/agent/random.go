package agent

import (
	"golang.org/x/exp/rand"

	"nogo/experiments/metrics"
	"nogo/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns the non-learning baseline: a uniformly random legal
// move every turn.
func NewRandomAgent(rng *rand.Rand) Agent {
	if rng == nil {
		panic("agent: rng is required")
	}
	return randomAgent{rng: rng}
}

func (a randomAgent) ChooseMove(b *game.Board, c game.Color) (game.Pos, bool, metrics.SearchMetric) {
	legal := b.LegalMoves(c)
	if legal.IsEmpty() {
		return game.NoPos, false, metrics.SearchMetric{}
	}
	return legal.RandomPos(a.rng), true, metrics.SearchMetric{}
}
