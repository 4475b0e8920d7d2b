package searcher

import (
	"bytes"
	"strings"
	"testing"

	"gamearena/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

/*
Tests the searches on hand-built trees:
- minimax: backed up value and first-best action
- alpha-beta: same decision, fewer leaves, prunes counted
- depth-limited: evaluation replaces recursion at the cutoff, terminal states keep exact utility
- terminal root: explicit error, zero action
*/

type mockNode struct {
	player   game.Player
	children []string
	utility  float64 // For X at a leaf
	eval     float64 // For X below the cutoff
}

// mockGame is a game tree keyed by node id, actions are child indexes.
type mockGame map[string]mockNode

func (m mockGame) Actions(state string) []int {
	actions := make([]int, len(m[state].children))
	for i := range actions {
		actions[i] = i
	}
	return actions
}

func (m mockGame) Result(state string, action int) string {
	children := m[state].children
	if action < 0 || action >= len(children) {
		return state
	}
	return children[action]
}

func (m mockGame) Utility(state string, player game.Player) float64 {
	if player == "X" {
		return m[state].utility
	}
	return -m[state].utility
}

func (m mockGame) TerminalTest(state string) bool {
	return game.NoActions[string, int](m, state)
}

func (m mockGame) ToMove(state string) game.Player {
	return m[state].player
}

func (m mockGame) evaluate(state string, player game.Player) float64 {
	if player == "X" {
		return m[state].eval
	}
	return -m[state].eval
}

// textbookTree is the classic two-ply example: max over three min nodes
// with leaves {3, 12, 8}, {2, 4, 6}, {14, 5, 2}.
func textbookTree() mockGame {
	g := mockGame{
		"A": {player: "X", children: []string{"B", "C", "D"}},
		"B": {player: "O", children: []string{"B1", "B2", "B3"}},
		"C": {player: "O", children: []string{"C1", "C2", "C3"}},
		"D": {player: "O", children: []string{"D1", "D2", "D3"}},
	}
	leaves := map[string]float64{
		"B1": 3, "B2": 12, "B3": 8,
		"C1": 2, "C2": 4, "C3": 6,
		"D1": 14, "D2": 5, "D3": 2,
	}
	for id, u := range leaves {
		g[id] = mockNode{player: "X", utility: u}
	}
	return g
}

// binaryTree builds a complete binary tree of the given depth, X moving at
// even plies. Leaves are worth 1 to X when their path has an odd number of
// right branches, -1 otherwise. Every inner node evaluates to its number of
// right branches.
func binaryTree(depth int) mockGame {
	g := mockGame{}
	var build func(path string)
	build = func(path string) {
		player := game.Player("X")
		if len(path)%2 == 1 {
			player = "O"
		}
		ones := float64(strings.Count(path, "1"))
		if len(path) == depth {
			utility := -1.0
			if int(ones)%2 == 1 {
				utility = 1
			}
			g["root"+path] = mockNode{player: player, utility: utility}
			return
		}
		g["root"+path] = mockNode{
			player:   player,
			children: []string{"root" + path + "0", "root" + path + "1"},
			eval:     ones,
		}
		build(path + "0")
		build(path + "1")
	}
	build("")
	return g
}

func TestMinimax(t *testing.T) {
	t.Run("textbook tree", func(t *testing.T) {
		d, err := Minimax[string, int](textbookTree(), "A", WithMetrics())

		require.NoError(t, err)
		require.Equal(t, 0, d.Action, "Should pick the min node worth 3")
		require.Equal(t, 3.0, d.Value)
		require.Equal(t, int64(9), d.Metrics.Terminals, "Should score every leaf")
		require.Equal(t, int64(12), d.Metrics.Nodes)
		require.Zero(t, d.Metrics.Prunes)
	})

	t.Run("ties keep the first action", func(t *testing.T) {
		g := mockGame{
			"root": {player: "X", children: []string{"a", "b", "c"}},
			"a":    {player: "O", utility: 0},
			"b":    {player: "O", utility: 1},
			"c":    {player: "O", utility: 1},
		}
		d, err := Minimax[string, int](g, "root")
		require.NoError(t, err)
		require.Equal(t, 1, d.Action)
		require.Equal(t, 1.0, d.Value)
	})

	t.Run("utility stays with the root mover when O searches", func(t *testing.T) {
		g := mockGame{
			"root": {player: "O", children: []string{"a", "b"}},
			"a":    {player: "X", utility: 1},  // X wins
			"b":    {player: "X", utility: -1}, // O wins
		}
		d, err := Minimax[string, int](g, "root")
		require.NoError(t, err)
		require.Equal(t, 1, d.Action, "O should pick the branch X loses")
		require.Equal(t, 1.0, d.Value)
	})

	t.Run("terminal root returns an explicit error", func(t *testing.T) {
		g := mockGame{"root": {player: "X", utility: 1}}
		d, err := Minimax[string, int](g, "root")
		require.ErrorIs(t, err, ErrTerminalState)
		require.Zero(t, d.Action)
	})
}

func TestAlphaBeta(t *testing.T) {
	t.Run("textbook tree prunes two leaves", func(t *testing.T) {
		d, err := AlphaBeta[string, int](textbookTree(), "A", WithMetrics())

		require.NoError(t, err)
		require.Equal(t, 0, d.Action)
		require.Equal(t, 3.0, d.Value)
		require.Equal(t, int64(7), d.Metrics.Terminals, "C2, C3 should be pruned")
		require.Equal(t, int64(2), d.Metrics.Prunes)
	})

	t.Run("agrees with minimax on a deeper tree", func(t *testing.T) {
		g := binaryTree(6)
		mm, err := Minimax[string, int](g, "root", WithMetrics())
		require.NoError(t, err)
		ab, err := AlphaBeta[string, int](g, "root", WithMetrics())
		require.NoError(t, err)

		require.Equal(t, mm.Action, ab.Action)
		require.Equal(t, mm.Value, ab.Value)
		require.Less(t, ab.Metrics.Terminals, mm.Metrics.Terminals)
	})

	t.Run("terminal root returns an explicit error", func(t *testing.T) {
		g := mockGame{"root": {player: "X"}}
		_, err := AlphaBeta[string, int](g, "root")
		require.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("summary is logged at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		_, err := AlphaBeta[string, int](textbookTree(), "A", WithLogger(logger), WithMetrics())
		require.NoError(t, err)
		require.Contains(t, buf.String(), `"search":"alphabeta"`)
		require.Contains(t, buf.String(), `"terminals":7`)
	})
}

func TestLimitedAlphaBeta(t *testing.T) {
	t.Run("evaluation at the cutoff changes the decision", func(t *testing.T) {
		// Leaves are 5 plies deep, with cutoff 3 the nodes 4 plies deep are evaluated
		g := binaryTree(5)

		mm, err := Minimax[string, int](g, "root")
		require.NoError(t, err)
		ab, err := AlphaBeta[string, int](g, "root")
		require.NoError(t, err)
		limited, err := LimitedAlphaBeta[string, int](g, "root", g.evaluate, WithCutoff(3), WithMetrics())
		require.NoError(t, err)

		require.Equal(t, mm.Action, ab.Action, "Exact searches should agree")
		require.Equal(t, mm.Value, ab.Value, "Exact searches should agree")
		require.Equal(t, 1.0, mm.Value, "X can always fix the parity on the last move")
		require.Equal(t, 0, mm.Action)

		require.Equal(t, 2.0, limited.Value, "max-min-max-min of right branch counts")
		require.Equal(t, 1, limited.Action)
		require.NotEqual(t, mm.Value, limited.Value)
		require.Positive(t, limited.Metrics.Evaluations)
		require.Zero(t, limited.Metrics.Terminals, "No leaf is reached above the cutoff")
	})

	t.Run("terminal states short-circuit before the cutoff", func(t *testing.T) {
		g := mockGame{
			"root": {player: "X", children: []string{"a", "b"}},
			"a":    {player: "O", utility: -1, eval: 50},
			"b":    {player: "O", children: []string{"b1"}, eval: 10},
			"b1":   {player: "X", utility: 1, eval: 20},
		}
		d, err := LimitedAlphaBeta[string, int](g, "root", g.evaluate, WithCutoff(1), WithMetrics())
		require.NoError(t, err)
		require.Equal(t, 1, d.Action)
		require.Equal(t, 1.0, d.Value, "b1 is terminal at the cutoff and keeps its utility")
		require.Zero(t, d.Metrics.Evaluations)
	})

	t.Run("default cutoff evaluates four plies below the root", func(t *testing.T) {
		g := binaryTree(8)
		d, err := LimitedAlphaBeta[string, int](g, "root", g.evaluate)
		require.NoError(t, err)
		require.Equal(t, 2.0, d.Value)
	})

	t.Run("missing evaluation function panics", func(t *testing.T) {
		require.Panics(t, func() {
			_, _ = LimitedAlphaBeta[string, int](textbookTree(), "A", nil)
		})
	})
}
