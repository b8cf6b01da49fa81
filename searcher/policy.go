package searcher

import "math"

// Hyperparameters for the selection policy

const Exploration = 0.25 // Exploration coefficient in the UCB bonus term

// Children scoring within this tolerance of the maximum are treated as tied
// and sampled uniformly, so array order never decides near-equal scores.
const tieEpsilon = 1e-4

// RAVE priors seed fresh children with weak indirect evidence (a 50% rate at
// low weight), keeping scores finite before the first direct visit.
const (
	RavePriorVisits = 20
	RavePriorWins   = 10
)

// policy is the configurable selection rule: RAVE-augmented UCB1 by default,
// plain UCB1 when rave is off (zero priors, no indirect statistics).
type policy struct {
	exploration float64
	rave        bool
	priorVisits int
	priorWins   int
}

func defaultPolicy() policy {
	return policy{
		exploration: Exploration,
		rave:        true,
		priorVisits: RavePriorVisits,
		priorWins:   RavePriorWins,
	}
}

// score blends the direct win rate, the RAVE estimate and a UCB exploration
// bonus, normalized by combined direct and indirect visits:
//
//	(raveWins + wins + c*sqrt(ln(N)*n)) / (raveVisits + n)
func (p policy) score(parentLogVisits float64, n *node) float64 {
	if n.visits == 0 && n.raveVisits == 0 {
		// Plain UCB1 has no priors; prioritize unexplored children
		return math.Inf(1)
	}
	direct := float64(n.visits)
	return (float64(n.raveWins) + float64(n.wins) + p.exploration*math.Sqrt(parentLogVisits*direct)) /
		(float64(n.raveVisits) + direct)
}
