package searcher

import (
	"errors"
	"math"

	"gamearena/game"
)

// ErrTerminalState is returned, along with the zero action, when a search is
// asked to choose a move in a state that has no legal actions.
var ErrTerminalState = errors.New("searcher: no actions available in a terminal state")

// Strategy chooses a move for the player to move in state. Searches, random
// and human players all share this signature so they are interchangeable.
type Strategy[S any, A comparable] func(g game.Game[S, A], state S) (A, error)

// Decision is the outcome of a search: the chosen action, its backed up value
// from the root mover's perspective and what the search cost.
type Decision[A comparable] struct {
	Action  A
	Value   float64
	Metrics SearchMetric
}

// search holds what stays fixed during one recursive walk of the tree.
type search[S any, A comparable] struct {
	game     game.Game[S, A]
	player   game.Player      // Root mover, utilities are always from its perspective
	evaluate game.Evaluate[S] // nil for an exact search
	cutoff   int
	metrics  Collector
}

func newSearch[S any, A comparable](g game.Game[S, A], root S, evaluate game.Evaluate[S], o *options) *search[S, A] {
	return &search[S, A]{
		game:     g,
		player:   g.ToMove(root),
		evaluate: evaluate,
		cutoff:   o.cutoff,
		metrics:  o.metrics,
	}
}

// leaf scores state if the recursion must stop there. True terminal states
// always get their exact utility, whatever the depth.
func (s *search[S, A]) leaf(state S, depth int) (float64, bool) {
	s.metrics.AddNode()
	if s.game.TerminalTest(state) {
		s.metrics.AddTerminal()
		return s.game.Utility(state, s.player), true
	}
	if s.evaluate != nil && depth >= s.cutoff {
		s.metrics.AddEvaluation()
		return s.evaluate(state, s.player), true
	}
	return 0, false
}

// choose picks the first action with the highest value. value scores the
// successor of the i-th action given the best value found so far.
func choose[A comparable](actions []A, value func(i int, alpha float64) float64) (A, float64) {
	bestIndex := 0
	bestValue := math.Inf(-1)
	for i := range actions {
		// Strictly > so that ties keep the earliest action
		if v := value(i, bestValue); i == 0 || v > bestValue {
			bestIndex, bestValue = i, v
		}
	}
	return actions[bestIndex], bestValue
}

func complete[A comparable](name string, action A, value float64, o *options) Decision[A] {
	metric := o.metrics.Complete()
	o.logger.Debug().
		Str("search", name).
		Float64("value", value).
		Int64("nodes", metric.Nodes).
		Int64("terminals", metric.Terminals).
		Int64("evaluations", metric.Evaluations).
		Int64("prunes", metric.Prunes).
		Dur("elapsed", metric.Duration).
		Msgf("chose %v", action)
	return Decision[A]{Action: action, Value: value, Metrics: metric}
}
