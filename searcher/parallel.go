package searcher

import (
	"context"
	"math"

	"gamearena/game"

	"golang.org/x/sync/errgroup"
)

// ParallelAlphaBeta searches the root's children on up to goroutines
// goroutines, each child with its own alpha-beta walk and a full window.
// Every walk only reads the shared root state, so no locking is needed.
// The decision equals AlphaBeta's (LimitedAlphaBeta's when evaluate is not
// nil), ties going to the earliest action. Cancelling ctx stops scheduling
// new root children and returns ctx's error.
func ParallelAlphaBeta[S any, A comparable](ctx context.Context, g game.Game[S, A], state S, goroutines int, evaluate game.Evaluate[S], opts ...Option) (Decision[A], error) {
	if goroutines < 1 {
		panic("parallel search needs at least one goroutine")
	}
	var none A
	actions := g.Actions(state)
	if len(actions) == 0 {
		return Decision[A]{Action: none}, ErrTerminalState
	}

	o := newOptions(opts)
	o.metrics.Start()
	s := newSearch(g, state, evaluate, o)

	values := make([]float64, len(actions))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(goroutines)
	for i, action := range actions {
		i, action := i, action
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values[i] = s.minAlphaBeta(g.Result(state, action), math.Inf(-1), math.Inf(1), 0)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Decision[A]{Action: none}, err
	}

	action, value := choose(actions, func(i int, _ float64) float64 {
		return values[i]
	})
	return complete("parallel-alphabeta", action, value, o), nil
}
