package metrics

import (
	"time"

	"gamearena/game"
)

// AgentConfig describes one of the strategies taking part in an experiment.
type AgentConfig struct {
	ID         int
	Strategy   string
	Cutoff     int
	Goroutines int
	Episodes   int
	Duration   time.Duration
	Seed       uint64
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Action   string
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player // Empty on a draw
	Utility        float64     // For the starting player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records the moves of a single game. It is not safe for
// concurrent use, every game gets its own.
type Collector interface {
	Start(startingPlayer game.Player)
	AddMove(player game.Player, action string, duration time.Duration)
	Complete(winner game.Player, utility float64) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer game.Player
	startTime      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(startingPlayer game.Player) {
	c.startingPlayer = startingPlayer
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(player game.Player, action string, duration time.Duration) {
	c.moves = append(c.moves, MoveMetric{
		Step:     len(c.moves) + 1,
		Player:   player,
		Action:   action,
		Duration: duration,
	})
}

func (c *collector) Complete(winner game.Player, utility float64) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: c.startingPlayer,
		Winner:         winner,
		Utility:        utility,
		StartTime:      c.startTime,
		EndTime:        end,
		Duration:       end.Sub(c.startTime),
		TotalMoves:     len(c.moves),
	}, c.moves
}

// AverageMoveTime returns the mean time player took per move, 0 if it never moved.
func AverageMoveTime(moves []MoveMetric, player game.Player) time.Duration {
	var total time.Duration
	n := 0
	for _, m := range moves {
		if m.Player == player {
			total += m.Duration
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}
