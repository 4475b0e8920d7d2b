package searcher

import (
	"context"
	"sync"

	"gamearena/game"

	"golang.org/x/exp/rand"
)

// DefaultEpisodes is the number of rollouts when neither episodes nor a
// duration is given.
const DefaultEpisodes = 1000

// MCTS runs Monte Carlo tree search from state on goroutines goroutines
// sharing one tree, with virtual loss keeping them on different paths.
// Rollouts play uniformly random moves to the end of the game. The search
// stops after the configured episodes or duration, or when ctx is done, and
// picks the most visited action. Value is that action's mean reward for the
// root mover.
func MCTS[S any, A comparable](ctx context.Context, g game.Game[S, A], state S, goroutines int, opts ...Option) (Decision[A], error) {
	if goroutines < 1 {
		panic("MCTS needs at least one goroutine")
	}
	var none A
	actions := g.Actions(state)
	if len(actions) == 0 {
		return Decision[A]{Action: none}, ErrTerminalState
	}

	o := newOptions(opts)
	o.metrics.Start()
	root := newNode[S, A](nil, "", actions)

	if o.duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.duration)
		defer cancel()
	}
	episodes := o.episodes
	if episodes <= 0 && o.duration <= 0 {
		episodes = DefaultEpisodes
	}

	// Episodes are handed out as tokens, a nil channel never runs dry
	var tasks chan struct{}
	if episodes > 0 {
		tasks = make(chan struct{}, episodes)
		for i := 0; i < episodes; i++ {
			tasks <- struct{}{}
		}
		close(tasks)
	}

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if tasks != nil {
					if _, ok := <-tasks; !ok {
						return
					}
				}
				simulate(g, root, state, rng, o.metrics)
			}
		}(rand.New(rand.NewSource(o.seed + uint64(i))))
	}
	wg.Wait()

	if root.visits == 0 {
		return Decision[A]{Action: none}, ctx.Err()
	}
	best := root.bestChild()
	rewards, visits := root.children[best].stats()
	return complete("mcts", root.explored[best], rewards/visits, o), nil
}

func simulate[S any, A comparable](g game.Game[S, A], root *node[S, A], state S, rng *rand.Rand, metrics Collector) {
	leaf, state := selectThenExpand(g, root, state)
	metrics.AddNode()
	final := rollout(g, state, rng)
	metrics.AddTerminal()
	backup(leaf, func(player game.Player) float64 {
		return g.Utility(final, player)
	})
}

func selectThenExpand[S any, A comparable](g game.Game[S, A], root *node[S, A], state S) (*node[S, A], S) {
	child, state, selected := root.selectOrExpand(g, state)
	for selected {
		child, state, selected = child.selectOrExpand(g, state)
	}
	return child, state
}

// rollout plays random moves until the game is over.
func rollout[S any, A comparable](g game.Game[S, A], state S, rng *rand.Rand) S {
	for !g.TerminalTest(state) {
		actions := g.Actions(state)
		state = g.Result(state, actions[rng.Intn(len(actions))])
	}
	return state
}

func backup[S any, A comparable](leaf *node[S, A], reward func(game.Player) float64) {
	for n := leaf; n != nil; {
		n = n.backup(reward)
	}
}
