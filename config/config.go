package config

import (
	stderrors "errors"
	"os"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultGoroutines is used by parallel and MCTS players that do not set their own.
const DefaultGoroutines = 8

// MaxParallelGames caps how many games an experiment plays at once.
const MaxParallelGames = 64

var (
	Games      = []string{"reversi", "tictactoe"}
	Strategies = []string{"minimax", "alphabeta", "alphabeta-limited", "parallel", "parallel-exact", "mcts", "random", "human"}
)

var (
	ErrUnknownGame   = stderrors.New("config: unknown game")
	ErrUnknownPlayer = stderrors.New("config: unknown player strategy")
)

// Player configures one side of the match.
type Player struct {
	Strategy   string        `yaml:"strategy"`
	Cutoff     int           `yaml:"cutoff,omitempty"`     // Depth limit, 0 for the search default
	Goroutines int           `yaml:"goroutines,omitempty"` // Only for parallel searches and mcts
	Episodes   int           `yaml:"episodes,omitempty"`   // Only for mcts
	Duration   time.Duration `yaml:"duration,omitempty"`   // Only for mcts
	Seed       uint64        `yaml:"seed,omitempty"`       // For random and mcts
}

type Config struct {
	Game     string   `yaml:"game"`
	Games    int      `yaml:"games"`    // Number of games to play
	Parallel int      `yaml:"parallel"` // Games played at once
	Players  []Player `yaml:"players"`  // The first player moves first
	Output   string   `yaml:"output"`   // Directory for CSV records, empty to skip
	LogLevel string   `yaml:"log_level"`
	Profile  string   `yaml:"profile"` // Directory for a CPU profile, empty to skip
}

func Default() Config {
	return Config{
		Game:     "reversi",
		Games:    1,
		Parallel: 1,
		Players: []Player{
			{Strategy: "alphabeta-limited"},
			{Strategy: "random"},
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of the defaults. Fields missing from the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	cfg.Fill()
	return cfg, cfg.Validate()
}

// Fill sets the defaults that depend on other fields.
func (c *Config) Fill() {
	c.Players = slices.Clone(c.Players)
	for i := range c.Players {
		if usesGoroutines(c.Players[i].Strategy) && c.Players[i].Goroutines == 0 {
			c.Players[i].Goroutines = DefaultGoroutines
		}
	}
}

func usesGoroutines(strategy string) bool {
	return strategy == "parallel" || strategy == "parallel-exact" || strategy == "mcts"
}

func (c Config) Validate() error {
	if !slices.Contains(Games, c.Game) {
		return errors.Wrapf(ErrUnknownGame, "%q", c.Game)
	}
	if c.Games < 1 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.Parallel < 1 || c.Parallel > MaxParallelGames {
		return errors.Errorf("parallel must be between 1 and %d, got %d", MaxParallelGames, c.Parallel)
	}
	if len(c.Players) != 2 {
		return errors.Errorf("need exactly 2 players, got %d", len(c.Players))
	}
	for i, p := range c.Players {
		if !slices.Contains(Strategies, p.Strategy) {
			return errors.Wrapf(ErrUnknownPlayer, "player %d: %q", i+1, p.Strategy)
		}
		if p.Cutoff < 0 {
			return errors.Errorf("player %d: negative cutoff %d", i+1, p.Cutoff)
		}
		if usesGoroutines(p.Strategy) && p.Goroutines < 1 {
			return errors.Errorf("player %d: %s search needs at least 1 goroutine", i+1, p.Strategy)
		}
		if p.Episodes < 0 || p.Duration < 0 {
			return errors.Errorf("player %d: negative episodes or duration", i+1)
		}
		if p.Strategy == "human" && c.Parallel > 1 {
			return errors.Errorf("player %d: a human can only play one game at a time", i+1)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, empty meaning info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrap(err, "log_level")
	}
	return level, nil
}
