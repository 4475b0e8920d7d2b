package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("X")
	c.AddMove("X", "2,4", 10*time.Millisecond)
	c.AddMove("O", "2,3", 4*time.Millisecond)
	c.AddMove("X", "1,2", 20*time.Millisecond)

	game, moves := c.Complete("X", 1)

	require.Equal(t, 3, game.TotalMoves)
	require.Equal(t, "X", string(game.StartingPlayer))
	require.Equal(t, 1.0, game.Utility)
	require.False(t, game.EndTime.Before(game.StartTime))
	require.Equal(t, []int{1, 2, 3}, []int{moves[0].Step, moves[1].Step, moves[2].Step})
	require.Equal(t, 15*time.Millisecond, AverageMoveTime(moves, "X"))
	require.Equal(t, 4*time.Millisecond, AverageMoveTime(moves, "O"))
	require.Zero(t, AverageMoveTime(nil, "X"), "No moves should average to 0")
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "reversi")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Strategy: "alphabeta-limited", Cutoff: 3, Goroutines: 1},
		{ID: 2, Strategy: "mcts", Goroutines: 4, Episodes: 500, Duration: 10 * time.Millisecond, Seed: 7},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{StartingPlayer: "X", Winner: "X", Utility: 1, TotalMoves: 60}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "X", Action: "2,4", Duration: time.Millisecond}},
	}))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"id", "strategy", "cutoff", "goroutines", "episodes", "duration", "seed"}, rows[0])
	require.Equal(t, []string{"1", "alphabeta-limited", "3", "1", "0", "0s", "0"}, rows[1])
	require.Equal(t, []string{"2", "mcts", "0", "4", "500", "10ms", "7"}, rows[2])

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "X", rows[1][4])
	require.Equal(t, "60", rows[1][9])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "X", "2,4", "1ms"}, rows[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
