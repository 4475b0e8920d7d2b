package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome, equal to a game's winning utility
const Loss = -Win // Reward for a losing outcome, also used as the virtual loss

// uct scores the children of one parent that has been visited N times.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) uct {
	if N < 1 {
		panic("N must be at least 1")
	}
	return uct{numerator: cSquared * math.Log(N)}
}

// evaluate returns q/n + sqrt(c^2*ln(N)/n) for a child with total reward q over n visits.
func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	return q/n + math.Sqrt(u.numerator/n)
}
