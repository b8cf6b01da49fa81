package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"nogo/experiments/metrics"
	"nogo/game"
)

type Option func(m *MCTS)

// MCTS runs RAVE-augmented Monte Carlo tree search over NoGo positions. One
// search tree is built per ChooseMove call and discarded afterwards; a single
// call path mutates it sequentially, cycle by cycle.
type MCTS struct {
	minIterations int
	minTime       time.Duration
	checkInterval int
	policy        policy
	rng           *rand.Rand
	metrics       metrics.Collector
}

// WithMinIterations sets the quality floor: the minimum number of simulation
// cycles per move.
func WithMinIterations(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.minIterations = n
		}
	}
}

// WithMinTime sets the minimum wall-clock time spent per move. Zero disables
// the time floor, leaving a pure iteration budget.
func WithMinTime(d time.Duration) Option {
	return func(m *MCTS) {
		if d >= 0 {
			m.minTime = d
		}
	}
}

// WithTimeCheckInterval sets how many cycles run between wall-clock checks.
func WithTimeCheckInterval(n int) Option {
	return func(m *MCTS) {
		if n > 0 {
			m.checkInterval = n
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.policy.exploration = c
		}
	}
}

// WithoutRave reduces the selection policy to plain UCB1: no priors, no
// indirect statistics.
func WithoutRave() Option {
	return func(m *MCTS) {
		m.policy.rave = false
		m.policy.priorVisits = 0
		m.policy.priorWins = 0
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(rng *rand.Rand, options ...Option) *MCTS {
	if rng == nil {
		panic("searcher: rng is required")
	}
	m := &MCTS{ // Default values
		minIterations: 50000,
		minTime:       time.Second,
		checkInterval: 64,
		policy:        defaultPolicy(),
		rng:           rng,
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// ChooseMove picks a move for toMove on the given board, which is never
// mutated. The second return is false when toMove has no legal move (a pass,
// which loses the game under NoGo rules). The search runs simulation cycles
// until both the iteration floor and the time floor are satisfied.
func (m *MCTS) ChooseMove(b *game.Board, toMove game.Color) (game.Pos, bool, metrics.SearchMetric) {
	if !b.HasLegalMove(toMove) {
		return game.NoPos, false, metrics.SearchMetric{}
	}

	m.metrics.Start(m.minIterations, m.minTime)
	start := time.Now()
	root := &node{mover: toMove.Opponent(), pos: game.NoPos}

	var raves [2]game.Bitboard
	cycles := 0
	deadlineMet := m.minTime <= 0
	for {
		raves[game.Black].Reset()
		raves[game.White].Reset()
		m.simulate(root, b, &raves)
		cycles++
		m.metrics.AddCycle()

		// Cycles are atomic: the budget is only re-checked between them,
		// and the clock only every checkInterval cycles.
		if !deadlineMet && cycles%m.checkInterval == 0 {
			deadlineMet = time.Since(start) >= m.minTime
		}
		if cycles >= m.minIterations && deadlineMet {
			break
		}
	}

	metric := m.metrics.Complete()
	log.Debug().
		Dur("duration", time.Since(start)).
		Int("cycles", cycles).
		Stringer("player", toMove).
		Msg("search complete")

	pos, ok := bestMove(root.childVisits())
	return pos, ok, metric
}

// simulate runs one selection, expansion, rollout, backpropagation cycle
// against a working clone of the board.
func (m *MCTS) simulate(root *node, b *game.Board, raves *[2]game.Bitboard) {
	board := b.Clone()

	// Selection
	n := root
	for n.hasChildren() {
		n = n.selectChild(m.policy, m.rng)
		m.play(board, n, raves)
	}

	// Expansion: descend once into a newly created child
	if n.expand(board, m.policy) {
		n = n.selectChild(m.policy, m.rng)
		m.play(board, n, raves)
	}

	// Rollout: alternate biased legal moves until the side to move has none.
	// The loser is the side left without a legal placement.
	tactical := board.TacticalPoints()
	current := n.mover
	length := 0
	for board.HasLegalMove(current.Opponent()) {
		current = current.Opponent()
		pos, notable := board.RolloutMove(current, tactical, m.rng)
		mustPlace(board, pos, current)
		if notable && m.policy.rave {
			raves[current].Set(pos)
		}
		length++
	}
	winner := current
	m.metrics.AddRolloutMoves(length)

	// Backpropagation
	for ; n != nil; n = n.parent {
		n.update(winner, raves)
	}
}

func (m *MCTS) play(board *game.Board, n *node, raves *[2]game.Bitboard) {
	mustPlace(board, n.pos, n.mover)
	if m.policy.rave {
		raves[n.mover].Set(n.pos)
	}
}

// mustPlace applies a move the rules engine already reported legal. Failure
// means move enumeration and application have desynchronized, which is a
// programming error, not a recoverable condition.
func mustPlace(board *game.Board, pos game.Pos, c game.Color) {
	if err := board.Place(pos, c); err != nil {
		panic(fmt.Sprintf("searcher: %v", err))
	}
}

// bestMove applies the robust-child rule: highest visit count, not win rate.
// Ties break to the lowest position index for reproducibility.
func bestMove(visits map[game.Pos]int) (game.Pos, bool) {
	best := game.NoPos
	max := 0
	for pos, v := range visits {
		if v > max || (v == max && pos < best) {
			max = v
			best = pos
		}
	}
	if best == game.NoPos {
		return game.NoPos, false
	}
	return best, true
}
