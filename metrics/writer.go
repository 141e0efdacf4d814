package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists a Collector's accumulated metrics as CSV files under
// a timestamped subdirectory, the same layout convention this is
// adapted from.
type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/<RFC3339 timestamp>/ and returns a Writer
// rooted there.
func NewWriter(baseDir string) (*Writer, error) {
	dir := filepath.Join(baseDir, time.Now().UTC().Format(time.RFC3339))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("metrics: create output directory: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

// WriteMoves writes one row per MoveMetric to moves.csv.
func (w *Writer) WriteMoves(moves []MoveMetric) error {
	path := filepath.Join(w.baseDir, "moves.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: create moves file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"step", "player", "side", "iterations", "duration_ms", "move"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("metrics: write moves header: %w", err)
	}

	for _, m := range moves {
		row := []string{
			strconv.Itoa(m.Step),
			m.Player,
			m.Side.String(),
			strconv.Itoa(m.Iterations),
			strconv.FormatInt(m.Duration.Milliseconds(), 10),
			strconv.Itoa(int(m.Move)),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("metrics: write move row: %w", err)
		}
	}
	return nil
}

// WriteGames writes one row per GameMetric to games.csv.
func (w *Writer) WriteGames(games []GameMetric) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: create games file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"black", "white", "winner", "total_moves", "duration_ms"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("metrics: write games header: %w", err)
	}

	for _, g := range games {
		row := []string{
			g.Black,
			g.White,
			g.Winner,
			strconv.Itoa(g.TotalMoves),
			strconv.FormatInt(g.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("metrics: write game row: %w", err)
		}
	}
	return nil
}
