package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyScore(t *testing.T) {
	t.Run("computing the blended score", func(t *testing.T) {
		p := defaultPolicy()
		parentLogVisits := math.Log(100)
		child := &node{visits: 10, wins: 6, raveVisits: 30, raveWins: 14}

		got := p.score(parentLogVisits, child)

		expected := (14.0 + 6.0 + 0.25*math.Sqrt(parentLogVisits*10)) / (30.0 + 10.0)
		require.InDelta(t, expected, got, 1e-9,
			"Should compute (raveWins+wins+c*sqrt(lnN*n))/(raveVisits+n)")
	})

	t.Run("priors keep unvisited children finite", func(t *testing.T) {
		p := defaultPolicy()
		child := &node{raveVisits: RavePriorVisits, raveWins: RavePriorWins}

		got := p.score(0, child)

		require.InDelta(t, 0.5, got, 1e-9,
			"Priors alone should score the prior win rate")
	})

	t.Run("without RAVE an unvisited child is prioritized", func(t *testing.T) {
		p := defaultPolicy()
		p.rave = false
		p.priorVisits = 0
		p.priorWins = 0
		child := &node{}

		require.True(t, math.IsInf(p.score(math.Log(10), child), 1),
			"Unexplored child should score infinity under plain UCB1")
	})

	t.Run("without RAVE the score reduces to UCB1", func(t *testing.T) {
		p := defaultPolicy()
		p.rave = false
		p.priorVisits = 0
		p.priorWins = 0
		parentLogVisits := math.Log(50)
		child := &node{visits: 8, wins: 5}

		got := p.score(parentLogVisits, child)

		expected := 5.0/8.0 + 0.25*math.Sqrt(parentLogVisits/8.0)
		require.InDelta(t, expected, got, 1e-9,
			"Zero priors should leave win rate plus exploration bonus")
	})

	t.Run("exploration bonus grows with parent visits", func(t *testing.T) {
		p := defaultPolicy()
		child := &node{visits: 10, wins: 5, raveVisits: 20, raveWins: 10}

		require.Greater(t, p.score(math.Log(1000), child), p.score(math.Log(10), child),
			"More parent visits should increase the score")
	})
}
