package experiments

import (
	"context"
	"fmt"
	"io"
	"time"

	"gamearena/config"
	"gamearena/engine"
	"gamearena/experiments/metrics"
	"gamearena/game"
	"gamearena/player"
	"gamearena/reversi"
	"gamearena/searcher"
	"gamearena/tictactoe"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Results summarises a series of games between the same two players.
// Player 1 is the one who moves first in every game.
type Results struct {
	Player1Wins        int
	Player2Wins        int
	Draws              int
	AvgPlayer1MoveTime time.Duration // Average over games of the per-game average
	AvgPlayer2MoveTime time.Duration
}

func (r Results) Print(w io.Writer) {
	fmt.Fprintf(w, "Player 1 Wins: %d\n", r.Player1Wins)
	fmt.Fprintf(w, "Player 2 Wins: %d\n", r.Player2Wins)
	fmt.Fprintf(w, "Draws: %d\n", r.Draws)
	fmt.Fprintf(w, "Average Player 1 Move Time: %.4f seconds\n", r.AvgPlayer1MoveTime.Seconds())
	fmt.Fprintf(w, "Average Player 2 Move Time: %.4f seconds\n", r.AvgPlayer2MoveTime.Seconds())
}

// Summarize tallies finished games. A positive utility is a win for
// player 1, a negative one a win for player 2.
func Summarize(games []engine.Result) Results {
	var results Results
	if len(games) == 0 {
		return results
	}
	var total1, total2 time.Duration
	for _, g := range games {
		switch {
		case g.Utility > 0:
			results.Player1Wins++
		case g.Utility < 0:
			results.Player2Wins++
		default:
			results.Draws++
		}
		first := g.GameMetric.StartingPlayer
		total1 += metrics.AverageMoveTime(g.MoveMetrics, first)
		total2 += metrics.AverageMoveTime(g.MoveMetrics, secondPlayer(g.MoveMetrics, first))
	}
	results.AvgPlayer1MoveTime = total1 / time.Duration(len(games))
	results.AvgPlayer2MoveTime = total2 / time.Duration(len(games))
	return results
}

func secondPlayer(moves []metrics.MoveMetric, first game.Player) game.Player {
	for _, m := range moves {
		if m.Player != first {
			return m.Player
		}
	}
	return ""
}

// Simulate plays games on up to parallel goroutines. newGame is called once
// per game with its index and must return an engine with its own state.
// The first failing game cancels the rest.
func Simulate(ctx context.Context, games, parallel int, newGame func(i int) engine.Runner) (Results, []engine.Result, error) {
	if games < 1 || parallel < 1 {
		panic("need at least one game and one goroutine")
	}
	finished := make([]engine.Result, games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting game %d of %d...", i+1, games)

			result, err := newGame(i).Run()
			if err != nil {
				return errors.Wrapf(err, "game %d", i+1)
			}
			finished[i] = result

			log.Info().Msgf("completed game %d of %d with utility %v for player 1 after %d moves",
				i+1, games, result.Utility, result.GameMetric.TotalMoves)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, nil, err
	}
	return Summarize(finished), finished, nil
}

// Run plays the match described by cfg. Human players read moves from in
// and write the board and prompts to out.
func Run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) (Results, error) {
	cfg.Fill()
	if err := cfg.Validate(); err != nil {
		return Results{}, err
	}
	switch cfg.Game {
	case "reversi":
		r := reversi.New()
		return runMatch[reversi.State](ctx, cfg, r, r.Initial(), reversi.Evaluate, r.Display, in, out)
	case "tictactoe":
		t := tictactoe.New()
		return runMatch[tictactoe.State](ctx, cfg, t, t.Initial(), tictactoe.Evaluate, t.Display, in, out)
	}
	return Results{}, errors.Wrapf(config.ErrUnknownGame, "%q", cfg.Game)
}

func runMatch[S any](ctx context.Context, cfg config.Config, g game.Game[S, game.Point], initial S,
	evaluate game.Evaluate[S], display func(S) string, in io.Reader, out io.Writer) (Results, error) {
	// Both human sides share one scanner on in
	human := player.NewHuman[S, game.Point](in, out, game.ParsePoint, display)

	log.Info().Msgf("starting %s match of %d games between %s and %s...",
		cfg.Game, cfg.Games, cfg.Players[0].Strategy, cfg.Players[1].Strategy)

	results, games, err := Simulate(ctx, cfg.Games, cfg.Parallel, func(i int) engine.Runner {
		first := strategy(cfg.Players[0], i, evaluate, human)
		second := strategy(cfg.Players[1], i, evaluate, human)
		return engine.LocalEngine(g, initial, first, second)
	})
	if err != nil {
		return Results{}, err
	}

	log.Info().Msgf("completed %s match: %+v", cfg.Game, results)

	if cfg.Output != "" {
		if err := store(cfg, games); err != nil {
			return results, err
		}
	}
	return results, nil
}

// strategy builds a fresh strategy for game i. Random players are seeded
// per game so a match replays exactly.
func strategy[S any](p config.Player, i int, evaluate game.Evaluate[S], human *player.Human[S, game.Point]) searcher.Strategy[S, game.Point] {
	opts := []searcher.Option{searcher.WithCutoff(p.Cutoff), searcher.WithLogger(log.Logger)}
	switch p.Strategy {
	case "minimax":
		return searcher.MinimaxPlayer[S, game.Point](opts...)
	case "alphabeta":
		return searcher.AlphaBetaPlayer[S, game.Point](opts...)
	case "alphabeta-limited":
		return searcher.LimitedAlphaBetaPlayer[S, game.Point](evaluate, opts...)
	case "parallel":
		return searcher.ParallelPlayer[S, game.Point](p.Goroutines, evaluate, opts...)
	case "parallel-exact":
		return searcher.ParallelPlayer[S, game.Point](p.Goroutines, nil, opts...)
	case "mcts":
		return searcher.MCTSPlayer[S, game.Point](p.Goroutines, searcher.WithEpisodes(p.Episodes),
			searcher.WithDuration(p.Duration), searcher.WithSeed(gameSeed(p, i)), searcher.WithLogger(log.Logger))
	case "random":
		return searcher.RandomPlayer[S, game.Point](gameSeed(p, i))
	case "human":
		return human.Strategy()
	}
	panic(fmt.Sprintf("unknown strategy %q", p.Strategy))
}

// gameSeed is the seed of player p in game i. MCTS goroutine g of a game
// seeds with gameSeed+g, so games are spaced by the goroutine count to keep
// every rollout stream of a match distinct.
func gameSeed(p config.Player, i int) uint64 {
	stride := uint64(max(p.Goroutines, 1))
	return p.Seed + uint64(i)*stride
}

func store(cfg config.Config, games []engine.Result) error {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Game)
	if err != nil {
		return errors.Wrap(err, "creating experiment writer")
	}

	configs := make([]metrics.AgentConfig, len(cfg.Players))
	for i, p := range cfg.Players {
		configs[i] = metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   p.Strategy,
			Cutoff:     p.Cutoff,
			Goroutines: p.Goroutines,
			Episodes:   p.Episodes,
			Duration:   p.Duration,
			Seed:       p.Seed,
		}
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return errors.Wrap(err, "storing agent configs")
	}
	log.Info().Msg("stored agent configs")

	gameRecords := make([]metrics.GameRecord, 0, len(games))
	moveRecords := []metrics.MoveRecord{}
	for i, g := range games {
		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, Agent1: 1, Agent2: 2, GameMetric: g.GameMetric})
		for _, mm := range g.MoveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return errors.Wrap(err, "storing game records")
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return errors.Wrap(err, "storing move records")
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
