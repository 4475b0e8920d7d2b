// Package reversi models the flanking-capture game played on an 8x8 board.
package reversi

import (
	"fmt"
	"slices"

	"gamearena/game"
)

// State is one position of the game. It is never modified once built:
// Result copies the board before placing a piece.
type State struct {
	toMove  game.Player
	utility float64 // Relative to X, meaningful once terminal
	board   Board
	moves   []game.Point // Legal moves for toMove
}

// NewState builds a position from an arbitrary board. The board is copied.
// It panics if a cell lies off the board or a piece or the mover is not X or O.
func NewState(board Board, toMove game.Player) State {
	if toMove != X && toMove != O {
		panic(fmt.Sprintf("unknown player to move %q", toMove))
	}
	for cell, owner := range board {
		if !onBoard(cell) {
			panic(fmt.Sprintf("cell %v is off the board", cell))
		}
		if owner != X && owner != O {
			panic(fmt.Sprintf("cell %v holds unknown player %q", cell, owner))
		}
	}
	return newState(board.clone(), toMove)
}

func newState(board Board, toMove game.Player) State {
	moves := board.legalMoves(toMove)
	return State{
		toMove:  toMove,
		utility: computeUtility(board, moves),
		board:   board,
		moves:   moves,
	}
}

// computeUtility scores the board for X once the player to move is out of moves.
func computeUtility(board Board, moves []game.Point) float64 {
	if len(moves) > 0 {
		return 0
	}
	xs, os := board.Count(X), board.Count(O)
	switch {
	case xs > os:
		return 1
	case xs < os:
		return -1
	default:
		return 0
	}
}

func (s State) ToMove() game.Player {
	return s.toMove
}

// At returns the owner of cell, if any.
func (s State) At(cell game.Point) (game.Player, bool) {
	owner, ok := s.board[cell]
	return owner, ok
}

// Board returns a copy of the position's board.
func (s State) Board() Board {
	return s.board.clone()
}

// Captures returns the pieces that would flip if the player to move played cell.
func (s State) Captures(cell game.Point) []game.Point {
	return s.board.captures(s.toMove, cell)
}

// Reversi implements game.Game for the capture game.
type Reversi struct {
	initial State
}

var _ game.Game[State, game.Point] = (*Reversi)(nil)
var _ game.Displayer[State] = (*Reversi)(nil)

// New returns the game with the four center pieces placed and X to move.
func New() *Reversi {
	board := Board{
		{X: 3, Y: 3}: X,
		{X: 4, Y: 4}: X,
		{X: 3, Y: 4}: O,
		{X: 4, Y: 3}: O,
	}
	return &Reversi{initial: newState(board, X)}
}

func (r *Reversi) Initial() State {
	return r.initial
}

// Actions returns the precomputed legal moves. The slice must not be modified.
func (r *Reversi) Actions(state State) []game.Point {
	return state.moves
}

func (r *Reversi) Result(state State, move game.Point) State {
	if !slices.Contains(state.moves, move) {
		return state // Illegal move has no effect
	}

	board := state.board.clone()
	board[move] = state.toMove
	for _, p := range state.board.captures(state.toMove, move) {
		board[p] = state.toMove
	}
	return newState(board, Opponent(state.toMove))
}

func (r *Reversi) Utility(state State, player game.Player) float64 {
	if player == X {
		return state.utility
	}
	return -state.utility
}

func (r *Reversi) TerminalTest(state State) bool {
	return len(state.moves) == 0
}

func (r *Reversi) ToMove(state State) game.Player {
	return state.toMove
}

func (r *Reversi) Evaluate(state State, player game.Player) float64 {
	return Evaluate(state, player)
}
