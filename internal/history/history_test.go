package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "prompt_history.csv"))
}

func TestLoadEmptyStore(t *testing.T) {
	s := testStore(t)

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load() on missing file: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Load() returned %d records, want 0", len(records))
	}
}

func TestAppendTwicePreservesOrder(t *testing.T) {
	s := testStore(t)

	first := Record{
		Timestamp:  time.Date(2025, 3, 1, 9, 30, 0, 0, time.Local),
		Goal:       "plan my day",
		Tone:       "Motivational",
		OutputType: "Bullet List",
		Audience:   "Busy professionals",
		Prompt:     "You are a productivity coach...",
	}
	second := Record{
		Timestamp:  time.Date(2025, 3, 1, 9, 45, 0, 0, time.Local),
		Goal:       "roast my latte habit",
		Tone:       "Roasty",
		OutputType: "Text",
		Audience:   "People who enjoy pain as comedy",
		Prompt:     "You are a stand-up comedian...",
	}

	if err := s.Append(first); err != nil {
		t.Fatalf("first Append: %v", err)
	}
	if err := s.Append(second); err != nil {
		t.Fatalf("second Append: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Load() returned %d records, want 2", len(records))
	}

	if records[0].Goal != first.Goal {
		t.Errorf("records[0].Goal = %q, want %q", records[0].Goal, first.Goal)
	}
	if records[1].Goal != second.Goal {
		t.Errorf("records[1].Goal = %q, want %q", records[1].Goal, second.Goal)
	}
	if !records[0].Timestamp.Equal(first.Timestamp) {
		t.Errorf("records[0].Timestamp = %v, want %v", records[0].Timestamp, first.Timestamp)
	}
	if records[1].Tone != "Roasty" {
		t.Errorf("records[1].Tone = %q, want Roasty", records[1].Tone)
	}
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	s := testStore(t)

	rec := Record{Timestamp: time.Now(), Goal: "g", Tone: "Casual", OutputType: "Text", Audience: "a", Prompt: "p"}
	if err := s.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if n := strings.Count(string(data), "timestamp,goal,tone"); n != 1 {
		t.Errorf("header appears %d times, want 1", n)
	}
}

func TestRoundTripMultilinePrompt(t *testing.T) {
	s := testStore(t)

	rec := Record{
		Timestamp:  time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local),
		Goal:       "goal with, commas",
		Tone:       "Witty",
		OutputType: "Markdown",
		Audience:   `audience "quoted"`,
		Prompt:     "line one\nline two\nline three",
	}

	if err := s.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Prompt != rec.Prompt {
		t.Errorf("Prompt round-trip = %q, want %q", records[0].Prompt, rec.Prompt)
	}
	if records[0].Audience != rec.Audience {
		t.Errorf("Audience round-trip = %q, want %q", records[0].Audience, rec.Audience)
	}
}

func TestSaveText(t *testing.T) {
	dir := t.TempDir()

	name, err := SaveText(dir, "the generated prompt")
	if err != nil {
		t.Fatalf("SaveText: %v", err)
	}
	if !strings.HasPrefix(name, "prompt_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("file name %q should look like prompt_<timestamp>.txt", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "the generated prompt" {
		t.Errorf("saved content = %q", string(data))
	}
}
