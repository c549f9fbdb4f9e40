package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment files.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(root, name, timestamp)
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

// StatesDir is where per-game state logs are written.
func (w *Writer) StatesDir() string {
	return filepath.Join(w.baseDir, "states")
}

// WriteConfig stores the experiment setup as YAML so the run can be repeated.
func (w *Writer) WriteConfig(config any) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "config.yaml"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game_id", "seed", "rounds", "score_1", "score_2", "score_3", "score_4",
		"winners", "start_time", "end_time", "duration"}
	return w.writeCSV("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		row := []string{
			strconv.Itoa(record.ID),
			record.GameID,
			strconv.FormatInt(record.Seed, 10),
			strconv.Itoa(record.Rounds),
		}
		for _, score := range record.Scores {
			row = append(row, strconv.Itoa(score))
		}
		return append(row,
			strings.Join(record.Winners, ";"),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		)
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "seat", "player", "decision", "duration", "episodes", "expansions", "candidates", "nodes"}
	return w.writeCSV("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Seat),
			record.Player,
			strconv.Itoa(record.Decision),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Expansions),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Nodes),
		}
	})
}

func (w *Writer) WriteSummary(summaries []PlayerSummary) error {
	header := []string{"seat", "player", "type", "games", "wins", "mean_score", "stddev"}
	return w.writeCSV("summary.csv", header, len(summaries), func(i int) []string {
		s := summaries[i]
		return []string{
			strconv.Itoa(s.Seat),
			s.Name,
			s.Type,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.FormatFloat(s.MeanScore, 'f', 2, 64),
			strconv.FormatFloat(s.StdDev, 'f', 2, 64),
		}
	})
}

func (w *Writer) writeCSV(name string, header []string, n int, row func(i int) []string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
