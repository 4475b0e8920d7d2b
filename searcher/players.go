package searcher

import (
	"context"
	"sync"

	"gamearena/game"

	"golang.org/x/exp/rand"
)

func MinimaxPlayer[S any, A comparable](opts ...Option) Strategy[S, A] {
	return func(g game.Game[S, A], state S) (A, error) {
		d, err := Minimax(g, state, opts...)
		return d.Action, err
	}
}

func AlphaBetaPlayer[S any, A comparable](opts ...Option) Strategy[S, A] {
	return func(g game.Game[S, A], state S) (A, error) {
		d, err := AlphaBeta(g, state, opts...)
		return d.Action, err
	}
}

func LimitedAlphaBetaPlayer[S any, A comparable](evaluate game.Evaluate[S], opts ...Option) Strategy[S, A] {
	if evaluate == nil {
		panic("depth-limited search needs an evaluation function")
	}
	return func(g game.Game[S, A], state S) (A, error) {
		d, err := LimitedAlphaBeta(g, state, evaluate, opts...)
		return d.Action, err
	}
}

// ParallelPlayer runs ParallelAlphaBeta without a deadline. evaluate may be
// nil for an exact search.
func ParallelPlayer[S any, A comparable](goroutines int, evaluate game.Evaluate[S], opts ...Option) Strategy[S, A] {
	return func(g game.Game[S, A], state S) (A, error) {
		d, err := ParallelAlphaBeta(context.Background(), g, state, goroutines, evaluate, opts...)
		return d.Action, err
	}
}

func MCTSPlayer[S any, A comparable](goroutines int, opts ...Option) Strategy[S, A] {
	if goroutines < 1 {
		panic("MCTS needs at least one goroutine")
	}
	return func(g game.Game[S, A], state S) (A, error) {
		d, err := MCTS(context.Background(), g, state, goroutines, opts...)
		return d.Action, err
	}
}

// RandomPlayer picks a legal action uniformly at random. The same seed
// replays the same choices for the same sequence of states.
func RandomPlayer[S any, A comparable](seed uint64) Strategy[S, A] {
	var mu sync.Mutex
	rng := rand.New(rand.NewSource(seed))
	return func(g game.Game[S, A], state S) (A, error) {
		actions := g.Actions(state)
		if len(actions) == 0 {
			var none A
			return none, ErrTerminalState
		}
		mu.Lock()
		defer mu.Unlock()
		return actions[rng.Intn(len(actions))], nil
	}
}
