package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gamearena/config"
	"gamearena/experiments"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "", "YAML file describing the match")
	gameName := flag.String("game", "", "Game to play: reversi or tictactoe")
	player1 := flag.String("p1", "", "Strategy of the player moving first")
	player2 := flag.String("p2", "", "Strategy of the second player")
	games := flag.Int("games", 0, "Number of games to play")
	cutoff := flag.Int("cutoff", 0, "Depth limit of the limited searches")
	parallel := flag.Int("parallel", 0, "Games played at once")
	output := flag.String("output", "", "Directory to store game records in")
	profileDir := flag.String("profile", "", "Directory to write a CPU profile to")
	flag.Parse()

	cfg := config.Default()
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	override(&cfg, *gameName, *player1, *player2, *games, *cutoff, *parallel, *output, *profileDir)

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("match failed")
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if cfg.Profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile), profile.Quiet).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("The game is starting:")
	results, err := experiments.Run(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	results.Print(os.Stdout)
	return nil
}

func override(cfg *config.Config, gameName, player1, player2 string, games, cutoff, parallel int, output, profileDir string) {
	if gameName != "" {
		cfg.Game = gameName
	}
	for i, strategy := range []string{player1, player2} {
		if strategy != "" {
			cfg.Players[i].Strategy = strategy
		}
		if cutoff > 0 {
			cfg.Players[i].Cutoff = cutoff
		}
	}
	if games > 0 {
		cfg.Games = games
	}
	if parallel > 0 {
		cfg.Parallel = parallel
	}
	if output != "" {
		cfg.Output = output
	}
	if profileDir != "" {
		cfg.Profile = profileDir
	}
}
