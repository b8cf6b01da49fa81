package agent

import (
	"nogo/experiments/metrics"
	"nogo/game"
)

// Agent picks moves for one side of a match. ChooseMove returns false when
// the agent has no legal move and must pass, which loses the game.
type Agent interface {
	ChooseMove(b *game.Board, c game.Color) (game.Pos, bool, metrics.SearchMetric)
}
