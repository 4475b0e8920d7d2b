package tictactoe

import "gamearena/game"

// lines lists every row, column and diagonal of the board.
var lines = func() [][Size]game.Point {
	var all [][Size]game.Point
	var diag, anti [Size]game.Point
	for i := 0; i < Size; i++ {
		var row, col [Size]game.Point
		for j := 0; j < Size; j++ {
			row[j] = game.Point{X: j, Y: i}
			col[j] = game.Point{X: i, Y: j}
		}
		all = append(all, row, col)
		diag[i] = game.Point{X: i, Y: i}
		anti[i] = game.Point{X: i, Y: Size - 1 - i}
	}
	return append(all, diag, anti)
}()

// Evaluate counts the lines player can still complete minus those the
// opponent can, scaled into (-1, 1) so it never outweighs a real win.
func Evaluate(state State, player game.Player) float64 {
	open := 0
	for _, line := range lines {
		var mine, theirs bool
		for _, p := range line {
			if owner, ok := state.board[p]; ok {
				if owner == player {
					mine = true
				} else {
					theirs = true
				}
			}
		}
		switch {
		case !theirs && mine:
			open++
		case !mine && theirs:
			open--
		}
	}
	return float64(open) / float64(len(lines)+1)
}
