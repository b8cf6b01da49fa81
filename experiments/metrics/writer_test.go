package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readRecords(t *testing.T, dir, name string) [][]string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*", "*", name))
	require.NoError(t, err)
	require.Len(t, matches, 1, "Writer should create exactly one %s", name)

	f, err := os.Open(matches[0])
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir, "test")
	require.NoError(t, err)

	t.Run("writing agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 0, Kind: KindRandom},
			{ID: 1, Kind: KindSearch, MinIterations: 1000, MinTime: time.Second, TimeCheckInterval: 64, Rave: true},
		}
		require.NoError(t, writer.WriteAgentConfigs(configs))

		rows := readRecords(t, dir, "agent_configs.csv")
		require.Len(t, rows, 3, "Header plus one row per config")
		require.Equal(t, []string{"id", "kind", "min_iterations", "min_time", "time_check_interval", "rave"}, rows[0])
		require.Equal(t, "search", rows[2][1])
		require.Equal(t, "1s", rows[2][3])
	})

	t.Run("writing game records", func(t *testing.T) {
		now := time.Now().UTC()
		records := []GameRecord{
			{ID: 1, Black: 1, White: 0, GameMetric: GameMetric{
				Winner:     "black",
				StartTime:  now,
				EndTime:    now.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 42,
			}},
		}
		require.NoError(t, writer.WriteGameRecords(records))

		rows := readRecords(t, dir, "game_records.csv")
		require.Len(t, rows, 2)
		require.Equal(t, "black", rows[1][3])
		require.Equal(t, "42", rows[1][7])
	})

	t.Run("writing move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: "black", SearchMetric: SearchMetric{
				Duration:     time.Millisecond,
				Cycles:       5000,
				RolloutMoves: 60,
			}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: "white"}},
		}
		require.NoError(t, writer.WriteMoveRecords(records))

		rows := readRecords(t, dir, "move_records.csv")
		require.Len(t, rows, 3)
		require.Equal(t, "5000", rows[1][4])
		require.Equal(t, "white", rows[2][2])
	})
}
