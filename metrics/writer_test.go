package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yuanhenglee/go-nogo-mcts/board"
)

func TestWriterWritesMovesAndGamesCSV(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	moves := []MoveMetric{
		{Step: 1, Player: "black", Side: board.Black, Iterations: 50, Duration: 5 * time.Millisecond, Move: board.Point(10)},
	}
	games := []GameMetric{
		{Black: "black", White: "white", Winner: "black", TotalMoves: 1, Duration: 5 * time.Millisecond},
	}

	require.NoError(t, w.WriteMoves(moves))
	require.NoError(t, w.WriteGames(games))

	movesBytes, err := os.ReadFile(filepath.Join(w.baseDir, "moves.csv"))
	require.NoError(t, err)
	require.Contains(t, string(movesBytes), "black")
	require.Contains(t, string(movesBytes), "10")

	gamesBytes, err := os.ReadFile(filepath.Join(w.baseDir, "games.csv"))
	require.NoError(t, err)
	require.Contains(t, string(gamesBytes), "white")
}
