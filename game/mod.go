package game

// Player identifies one of the two sides of a game. Each game owns its symbols.
type Player string

// Game is the contract any two-player, zero-sum, perfect-information game
// must satisfy to be searched. States should be immutable - Result always
// returns a new state and never modifies its argument.
type Game[S any, A comparable] interface {
	// Actions returns the legal moves in a stable order, empty when the state is terminal
	Actions(state S) []A
	// Result returns the successor state, or state itself if action is not legal
	Result(state S, action A) S
	// Utility returns the outcome (-1, 0 or 1) of a terminal state for player.
	// On a non-terminal state the returned value carries no meaning.
	Utility(state S, player Player) float64
	TerminalTest(state S) bool
	ToMove(state S) Player
}

// Displayer is implemented by games that can render a state for humans.
type Displayer[S any] interface {
	Display(state S) string
}

// Evaluate estimates how favorable a non-terminal state is for player.
// Larger is better for player.
type Evaluate[S any] func(state S, player Player) float64

// NoActions is the default terminal test: a state is terminal when the
// player to move has no legal actions.
func NoActions[S any, A comparable](g Game[S, A], state S) bool {
	return len(g.Actions(state)) == 0
}
