package agent

import (
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"
)

type searchAgent struct {
	mcts *searcher.MCTS
}

// NewSearchAgent returns an agent backed by an MCTS engine.
func NewSearchAgent(mcts *searcher.MCTS) Agent {
	return searchAgent{mcts: mcts}
}

func (a searchAgent) ChooseMove(b *game.Board, c game.Color) (game.Pos, bool, metrics.SearchMetric) {
	return a.mcts.ChooseMove(b, c)
}
