package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

var header = []string{"timestamp", "goal", "tone", "output_type", "audience", "prompt"}

// Record is one generated prompt with the submission that produced it.
type Record struct {
	Timestamp  time.Time
	Goal       string
	Tone       string
	OutputType string
	Audience   string
	Prompt     string
}

// Store is an append-only CSV file. One writer at a time (one running app).
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Append adds one record to the end of the file, creating it (with a
// header row) on first use. Records are never updated or deleted.
func (s *Store) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	info, err := os.Stat(s.path)
	needHeader := errors.Is(err, os.ErrNotExist) || (err == nil && info.Size() == 0)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		rec.Timestamp.Format(timeLayout),
		rec.Goal,
		rec.Tone,
		rec.OutputType,
		rec.Audience,
		rec.Prompt,
	}); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// Load returns all records in insertion order. A missing file is an
// empty history, not an error.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var records []Record
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == header[0] {
			continue
		}
		if len(row) < 6 {
			continue
		}
		ts, _ := time.ParseInLocation(timeLayout, row[0], time.Local)
		records = append(records, Record{
			Timestamp:  ts,
			Goal:       row[1],
			Tone:       row[2],
			OutputType: row[3],
			Audience:   row[4],
			Prompt:     row[5],
		})
	}

	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// SaveText writes generated text to a timestamped .txt file in dir and
// returns the file name.
func SaveText(dir, text string) (string, error) {
	name := fmt.Sprintf("prompt_%s.txt", time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return name, nil
}
