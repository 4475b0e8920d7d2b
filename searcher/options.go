package searcher

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultCutoff is the ply depth at which the depth-limited search stops
// recursing and scores states with the evaluation function.
const DefaultCutoff = 3

type Option func(o *options)

type options struct {
	cutoff   int
	episodes int           // MCTS only
	duration time.Duration // MCTS only
	seed     uint64        // MCTS only
	metrics  Collector
	logger   zerolog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{ // Default values
		cutoff:  DefaultCutoff,
		metrics: NewDummyCollector(),
		logger:  zerolog.Nop(),
	}
	for _, option := range opts {
		option(o)
	}
	return o
}

// WithCutoff sets the ply depth of the depth-limited search. Exact searches ignore it.
func WithCutoff(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.cutoff = depth
		}
	}
}

// WithEpisodes bounds MCTS by a number of rollouts.
func WithEpisodes(episodes int) Option {
	return func(o *options) {
		if episodes > 0 {
			o.episodes = episodes
		}
	}
}

// WithDuration bounds MCTS by time. With episodes as well, whichever runs out first stops it.
func WithDuration(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.duration = duration
		}
	}
}

// WithSeed seeds the random rollouts, goroutine i using seed+i.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithMetrics counts nodes, leaves and prunes. A fresh collector is used for every search.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = NewCollector()
	}
}

// WithLogger logs a debug summary once a search completes.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
