package engine

import (
	"fmt"
	"slices"
	"time"

	"gamearena/experiments/metrics"
	"gamearena/game"
	"gamearena/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Engine plays one game between two strategies on the local machine.
type Engine[S any, A comparable] struct {
	Game       game.Game[S, A]
	State      S
	Strategies [2]searcher.Strategy[S, A]
	metrics    metrics.Collector
}

var _ Runner = (*Engine[int, int])(nil)

// LocalEngine sets up a game from initial. The first strategy plays whoever
// is to move in initial, the second strategy plays the other side.
func LocalEngine[S any, A comparable](g game.Game[S, A], initial S, first, second searcher.Strategy[S, A]) *Engine[S, A] {
	if first == nil || second == nil {
		panic("need two strategies")
	}
	return &Engine[S, A]{
		Game:       g,
		State:      initial,
		Strategies: [2]searcher.Strategy[S, A]{first, second},
		metrics:    metrics.NewCollector(),
	}
}

// Run asks the strategy of the player to move for an action, applies it and
// repeats until the game is over.
func (e *Engine[S, A]) Run() (Result, error) {
	starting := e.Game.ToMove(e.State)
	var other game.Player
	e.metrics.Start(starting)

	log.Debug().Msgf("player %s is starting", starting)

	for step := 1; !e.Game.TerminalTest(e.State); step++ {
		if step > MaxMoves {
			return Result{}, ErrMaxMoves
		}

		player := e.Game.ToMove(e.State)
		index := 0
		if player != starting {
			index, other = 1, player
		}

		start := time.Now()
		action, err := e.Strategies[index](e.Game, e.State)
		if err != nil {
			return Result{}, errors.Wrapf(err, "move %d by %s", step, player)
		}
		if !slices.Contains(e.Game.Actions(e.State), action) {
			log.Warn().Msgf("player %s chose illegal move %v at step %d", player, action, step)
			return Result{}, errors.Wrapf(ErrIllegalMove, "move %d by %s: %v", step, player, action)
		}
		e.State = e.Game.Result(e.State, action)
		e.metrics.AddMove(player, fmt.Sprint(action), time.Since(start))

		log.Debug().Msgf("step %d: player %s played %v", step, player, action)
	}

	utility := e.Game.Utility(e.State, starting)
	var winner game.Player
	switch {
	case utility > 0:
		winner = starting
	case utility < 0:
		winner = other
	}
	gameMetric, moveMetrics := e.metrics.Complete(winner, utility)

	log.Debug().Msgf("game over after %d moves, utility %v for %s", gameMetric.TotalMoves, utility, starting)

	return Result{Utility: utility, GameMetric: gameMetric, MoveMetrics: moveMetrics}, nil
}
