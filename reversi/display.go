package reversi

import (
	"fmt"
	"slices"
	"strings"

	"gamearena/game"
)

const hline = "  +---+---+---+---+---+---+---+---+\n"

// Display draws the board with columns as x and rows as y. Legal moves for
// the player to move are marked with a dot.
func (r *Reversi) Display(state State) string {
	var sb strings.Builder
	sb.WriteString("    0   1   2   3   4   5   6   7\n")
	sb.WriteString(hline)
	for y := 0; y < Size; y++ {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < Size; x++ {
			p := game.Point{X: x, Y: y}
			cell := " "
			if owner, ok := state.board[p]; ok {
				cell = string(owner)
			} else if slices.Contains(state.moves, p) {
				cell = "."
			}
			fmt.Fprintf(&sb, "| %s ", cell)
		}
		sb.WriteString("|\n")
		sb.WriteString(hline)
	}
	fmt.Fprintf(&sb, "%s: %d  %s: %d  to move: %s\n", X, state.board.Count(X), O, state.board.Count(O), state.toMove)
	return sb.String()
}
