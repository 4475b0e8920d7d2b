package reversi

import "gamearena/game"

const (
	parityWeight    = 10
	cornersWeight   = 801.724
	proximityWeight = 382.026
	mobilityWeight  = 78.922
	stabilityWeight = 10
)

// stability weights each cell, indexed [y][x]. It mirrors the top-left quadrant
// {20,-3,11,8}, {-3,-7,-4,1}, {11,-4,2,2}, {8,1,2,-3} onto the other three.
var stability = [Size][Size]float64{
	{20, -3, 11, 8, 8, 11, -3, 20},
	{-3, -7, -4, 1, 1, -4, -7, -3},
	{11, -4, 2, 2, 2, 2, -4, 11},
	{8, 1, 2, -3, -3, 2, 1, 8},
	{8, 1, 2, -3, -3, 2, 1, 8},
	{11, -4, 2, 2, 2, 2, -4, 11},
	{-3, -7, -4, 1, 1, -4, -7, -3},
	{20, -3, 11, 8, 8, 11, -3, 20},
}

// corners lists each corner with the three cells touching it.
var corners = [4]struct {
	corner   game.Point
	adjacent [3]game.Point
}{
	{game.Point{X: 0, Y: 0}, [3]game.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	{game.Point{X: 0, Y: 7}, [3]game.Point{{X: 0, Y: 6}, {X: 1, Y: 6}, {X: 1, Y: 7}}},
	{game.Point{X: 7, Y: 0}, [3]game.Point{{X: 6, Y: 0}, {X: 6, Y: 1}, {X: 7, Y: 1}}},
	{game.Point{X: 7, Y: 7}, [3]game.Point{{X: 6, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 6}}},
}

// Evaluate scores a position for player as a weighted sum of coin parity,
// corners captured, corner proximity, mobility and positional stability.
// It reads the board once per feature and never modifies it.
func Evaluate(state State, player game.Player) float64 {
	b := state.board
	return parityWeight*coinParity(b, player) +
		cornersWeight*cornersCaptured(b, player) +
		proximityWeight*cornerProximity(b, player) +
		mobilityWeight*mobility(state, player) +
		stabilityWeight*positionalStability(b, player)
}

// lead returns the share (in percent) held by whichever side is ahead,
// positive when it is own and negative when it is other.
func lead(own, other float64) float64 {
	total := own + other
	switch {
	case total == 0 || own == other:
		return 0
	case own > other:
		return 100 * own / total
	default:
		return -100 * other / total
	}
}

func coinParity(b Board, player game.Player) float64 {
	return lead(float64(b.Count(player)), float64(b.Count(Opponent(player))))
}

func mobility(state State, player game.Player) float64 {
	own, other := state.moves, state.board.legalMoves(Opponent(player))
	if player != state.toMove {
		own, other = state.board.legalMoves(player), state.moves
	}
	return lead(float64(len(own)), float64(len(other)))
}

func cornersCaptured(b Board, player game.Player) float64 {
	own, other := 0, 0
	for _, c := range corners {
		switch owner, ok := b[c.corner]; {
		case !ok:
		case owner == player:
			own++
		default:
			other++
		}
	}
	return 25 * float64(own-other)
}

// cornerProximity penalizes pieces next to a corner nobody holds yet.
func cornerProximity(b Board, player game.Player) float64 {
	own, other := 0, 0
	for _, c := range corners {
		if _, taken := b[c.corner]; taken {
			continue
		}
		for _, p := range c.adjacent {
			switch owner, ok := b[p]; {
			case !ok:
			case owner == player:
				own++
			default:
				other++
			}
		}
	}
	return -12.5 * float64(own-other)
}

func positionalStability(b Board, player game.Player) float64 {
	score := 0.0
	for p, owner := range b {
		if owner == player {
			score += stability[p.Y][p.X]
		} else {
			score -= stability[p.Y][p.X]
		}
	}
	return score
}
