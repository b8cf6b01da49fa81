package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher/agent"
)

// Engine runs a local match between two agents on one board. Black moves
// first; the side left without a legal move loses.
type Engine struct {
	Board  *game.Board
	agents [2]agent.Agent
}

func LocalEngine(black, white agent.Agent) *Engine {
	if black == nil || white == nil {
		panic("engine: two agents are required")
	}
	return &Engine{
		Board: game.NewBoard(),
		// Indexed by color: Black is 0, White is 1
		agents: [2]agent.Agent{black, white},
	}
}

// Run plays the game to completion and returns the winner together with
// game-level and per-move metrics.
func (e *Engine) Run() (game.Color, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	log.Info().Stringer("player", game.Black).Msg("game started")

	var moveMetrics []metrics.MoveMetric
	toMove := game.Black
	step := 0
	for e.Board.HasLegalMove(toMove) {
		pos, ok, searchMetric := e.agents[toMove].ChooseMove(e.Board, toMove)
		if !ok {
			panic(fmt.Sprintf("engine: %v passed with legal moves available", toMove))
		}
		if err := e.Board.Place(pos, toMove); err != nil {
			panic(fmt.Sprintf("engine: agent played illegal move: %v", err))
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       toMove.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().
			Int("step", step).
			Stringer("player", toMove).
			Stringer("move", pos).
			Msg("move played")

		toMove = toMove.Opponent()
	}

	// toMove has no legal reply and loses
	winner := toMove.Opponent()
	end := time.Now()
	log.Info().
		Stringer("winner", winner).
		Int("moves", step).
		Dur("duration", end.Sub(start)).
		Msg("game over")

	gameMetric := metrics.GameMetric{
		Winner:     winner.String(),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step,
	}
	return winner, gameMetric, moveMetrics
}
