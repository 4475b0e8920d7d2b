package searcher

import (
	"math"

	"gamearena/game"
)

// AlphaBeta returns the same action and value as Minimax but skips branches
// that cannot change the decision. Actions are visited in the order the game
// lists them and ties go to the earliest action.
func AlphaBeta[S any, A comparable](g game.Game[S, A], state S, opts ...Option) (Decision[A], error) {
	return alphaBeta("alphabeta", g, state, nil, opts)
}

// LimitedAlphaBeta is AlphaBeta cut off at a fixed ply depth (DefaultCutoff
// unless WithCutoff is given). States at the cutoff are scored by evaluate
// from the root mover's perspective, so the decision is only optimal for the
// truncated tree.
func LimitedAlphaBeta[S any, A comparable](g game.Game[S, A], state S, evaluate game.Evaluate[S], opts ...Option) (Decision[A], error) {
	if evaluate == nil {
		panic("depth-limited search needs an evaluation function")
	}
	return alphaBeta("limited-alphabeta", g, state, evaluate, opts)
}

func alphaBeta[S any, A comparable](name string, g game.Game[S, A], state S, evaluate game.Evaluate[S], opts []Option) (Decision[A], error) {
	actions := g.Actions(state)
	if len(actions) == 0 {
		var none A
		return Decision[A]{Action: none}, ErrTerminalState
	}

	o := newOptions(opts)
	o.metrics.Start()
	s := newSearch(g, state, evaluate, o)
	action, value := choose(actions, func(i int, alpha float64) float64 {
		return s.minAlphaBeta(g.Result(state, actions[i]), alpha, math.Inf(1), 0)
	})
	return complete(name, action, value, o), nil
}

func (s *search[S, A]) maxAlphaBeta(state S, alpha, beta float64, depth int) float64 {
	if v, ok := s.leaf(state, depth); ok {
		return v
	}
	v := math.Inf(-1)
	for _, action := range s.game.Actions(state) {
		v = max(v, s.minAlphaBeta(s.game.Result(state, action), alpha, beta, depth+1))
		if v >= beta { // The minimizing parent already has something better
			s.metrics.AddPrune()
			return v
		}
		alpha = max(alpha, v)
	}
	return v
}

func (s *search[S, A]) minAlphaBeta(state S, alpha, beta float64, depth int) float64 {
	if v, ok := s.leaf(state, depth); ok {
		return v
	}
	v := math.Inf(1)
	for _, action := range s.game.Actions(state) {
		v = min(v, s.maxAlphaBeta(s.game.Result(state, action), alpha, beta, depth+1))
		if v <= alpha {
			s.metrics.AddPrune()
			return v
		}
		beta = min(beta, v)
	}
	return v
}
