package searcher

import (
	"math"

	"gamearena/game"
)

// Minimax searches the whole game tree below state and returns the action
// that maximizes the mover's worst-case utility. Cost is exponential in the
// remaining plies, so it is meant for small games only.
func Minimax[S any, A comparable](g game.Game[S, A], state S, opts ...Option) (Decision[A], error) {
	actions := g.Actions(state)
	if len(actions) == 0 {
		var none A
		return Decision[A]{Action: none}, ErrTerminalState
	}

	o := newOptions(opts)
	o.metrics.Start()
	s := newSearch(g, state, nil, o)
	action, value := choose(actions, func(i int, _ float64) float64 {
		return s.minValue(g.Result(state, actions[i]))
	})
	return complete("minimax", action, value, o), nil
}

func (s *search[S, A]) maxValue(state S) float64 {
	if v, ok := s.leaf(state, 0); ok {
		return v
	}
	v := math.Inf(-1)
	for _, action := range s.game.Actions(state) {
		v = max(v, s.minValue(s.game.Result(state, action)))
	}
	return v
}

func (s *search[S, A]) minValue(state S) float64 {
	if v, ok := s.leaf(state, 0); ok {
		return v
	}
	v := math.Inf(1)
	for _, action := range s.game.Actions(state) {
		v = min(v, s.maxValue(s.game.Result(state, action)))
	}
	return v
}
