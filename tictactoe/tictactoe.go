// Package tictactoe is the three-in-a-row game on a 3x3 board. Its game tree
// is small enough for exhaustive search, which makes it the reference game
// for checking the pruned searches against plain minimax.
package tictactoe

import (
	"slices"
	"strings"

	"gamearena/game"

	"golang.org/x/exp/maps"
)

const Size = 3

const (
	X game.Player = "X" // Moves first
	O game.Player = "O"
)

type State struct {
	toMove  game.Player
	utility float64 // Relative to X
	board   map[game.Point]game.Player
	moves   []game.Point
}

func (s State) At(cell game.Point) (game.Player, bool) {
	owner, ok := s.board[cell]
	return owner, ok
}

type TicTacToe struct {
	initial State
}

var _ game.Game[State, game.Point] = (*TicTacToe)(nil)
var _ game.Displayer[State] = (*TicTacToe)(nil)

func New() *TicTacToe {
	board := map[game.Point]game.Player{}
	return &TicTacToe{initial: State{toMove: X, board: board, moves: emptyCells(board)}}
}

func (t *TicTacToe) Initial() State {
	return t.initial
}

func (t *TicTacToe) Actions(state State) []game.Point {
	return state.moves
}

func (t *TicTacToe) Result(state State, move game.Point) State {
	if !slices.Contains(state.moves, move) {
		return state // Illegal move has no effect
	}
	board := maps.Clone(state.board)
	board[move] = state.toMove

	utility := 0.0
	if completesLine(board, move, state.toMove) {
		utility = 1
		if state.toMove == O {
			utility = -1
		}
	}

	var moves []game.Point
	if utility == 0 {
		moves = emptyCells(board)
	}

	next := X
	if state.toMove == X {
		next = O
	}
	return State{toMove: next, utility: utility, board: board, moves: moves}
}

func (t *TicTacToe) Utility(state State, player game.Player) float64 {
	if player == X {
		return state.utility
	}
	return -state.utility
}

func (t *TicTacToe) TerminalTest(state State) bool {
	return game.NoActions[State, game.Point](t, state)
}

func (t *TicTacToe) ToMove(state State) game.Player {
	return state.toMove
}

func (t *TicTacToe) Display(state State) string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if owner, ok := state.board[game.Point{X: x, Y: y}]; ok {
				sb.WriteString(string(owner))
			} else {
				sb.WriteString(".")
			}
			if x < Size-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func emptyCells(board map[game.Point]game.Player) []game.Point {
	var cells []game.Point
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			p := game.Point{X: x, Y: y}
			if _, taken := board[p]; !taken {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// completesLine reports whether the piece just placed at move is part of
// three in a row along any line through it.
func completesLine(board map[game.Point]game.Player, move game.Point, player game.Player) bool {
	for _, d := range [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}} {
		n := 1 + run(board, move, player, d[0], d[1]) + run(board, move, player, -d[0], -d[1])
		if n >= Size {
			return true
		}
	}
	return false
}

func run(board map[game.Point]game.Player, from game.Point, player game.Player, dx, dy int) int {
	n := 0
	for p := from.Add(dx, dy); board[p] == player; p = p.Add(dx, dy) {
		n++
	}
	return n
}
