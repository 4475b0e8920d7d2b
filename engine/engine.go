package engine

import (
	stderrors "errors"

	"gamearena/experiments/metrics"
)

// MaxMoves bounds a game so a misbehaving game model cannot loop forever.
const MaxMoves = 10000

var (
	ErrIllegalMove = stderrors.New("engine: strategy chose an illegal move")
	ErrMaxMoves    = stderrors.New("engine: game exceeded the move limit")
)

// Result is what one finished game produced.
type Result struct {
	Utility     float64 // For the player who moved first
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Runner interface {
	// Run plays a game to its end and reports the outcome for the first player
	Run() (Result, error)
}
