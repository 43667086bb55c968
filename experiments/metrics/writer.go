package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for one run.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "cell", "duration", "episodes", "nodes", "blocked"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Cell),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Nodes),
			strconv.FormatBool(record.Blocked),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
