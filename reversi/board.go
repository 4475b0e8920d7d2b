package reversi

import (
	"gamearena/game"

	"golang.org/x/exp/maps"
)

// Size is the width and height of the board.
const Size = 8

const (
	X game.Player = "X" // Moves first
	O game.Player = "O"
)

// Opponent returns the other side.
func Opponent(player game.Player) game.Player {
	if player == X {
		return O
	}
	return X
}

// Board maps occupied cells to their owner, an absent key is an empty cell.
type Board map[game.Point]game.Player

var directions = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func onBoard(p game.Point) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (b Board) clone() Board {
	return maps.Clone(b)
}

// captures returns the opponent pieces flanked by a hypothetical placement
// of player at cell, or nil if the placement is illegal. The board is only read.
func (b Board) captures(player game.Player, cell game.Point) []game.Point {
	if !onBoard(cell) {
		return nil
	}
	if _, taken := b[cell]; taken {
		return nil
	}

	opponent := Opponent(player)
	var flips []game.Point
	for _, d := range directions {
		run := 0
		p := cell.Add(d[0], d[1])
		for onBoard(p) && b[p] == opponent {
			run++
			p = p.Add(d[0], d[1])
		}
		// Stepping off the board or onto an empty cell invalidates the direction
		if run == 0 || !onBoard(p) || b[p] != player {
			continue
		}
		for i := 1; i <= run; i++ {
			flips = append(flips, cell.Add(i*d[0], i*d[1]))
		}
	}
	return flips
}

// legalMoves scans the grid column by column and returns every cell where
// player captures at least one piece.
func (b Board) legalMoves(player game.Player) []game.Point {
	var moves []game.Point
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			p := game.Point{X: x, Y: y}
			if len(b.captures(player, p)) > 0 {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// Count returns the number of pieces owned by player.
func (b Board) Count(player game.Player) int {
	n := 0
	for _, owner := range b {
		if owner == player {
			n++
		}
	}
	return n
}
