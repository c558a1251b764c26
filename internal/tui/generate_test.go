package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/prompt"
)

// stubProvider returns a canned result or error without any network.
type stubProvider struct {
	result string
	err    error

	gotPrompt string
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func (s *stubProvider) Ping(context.Context) error { return nil }

func devStore(t *testing.T) *history.Store {
	t.Helper()
	return history.NewStore(filepath.Join(t.TempDir(), "prompt_history.csv"))
}

func TestRunGenerateSuccessAppendsHistory(t *testing.T) {
	store := devStore(t)
	stub := &stubProvider{result: "a polished prompt"}

	sub := prompt.Submission{
		Goal:       "plan my week",
		Tone:       "Motivational",
		OutputType: "Bullet List",
		Audience:   "me",
		Depth:      1,
	}

	msg := runGenerate(context.Background(), generateOptions{
		provider: stub,
		store:    store,
		devMode:  true,
	}, sub)

	done, ok := msg.(generateDoneMsg)
	if !ok {
		t.Fatalf("got %T, want generateDoneMsg", msg)
	}
	if done.result != "a polished prompt" {
		t.Errorf("result = %q", done.result)
	}
	if done.recursive {
		t.Error("non-recursive goal flagged recursive")
	}

	// The provider saw the assembled instruction text, not the raw goal.
	if !strings.Contains(stub.gotPrompt, "- Goal: plan my week") {
		t.Errorf("provider prompt missing goal line: %q", stub.gotPrompt)
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("history has %d records, want 1", len(records))
	}
	if records[0].Prompt != "a polished prompt" {
		t.Errorf("recorded prompt = %q", records[0].Prompt)
	}
	if records[0].Goal != "plan my week" {
		t.Errorf("recorded goal = %q", records[0].Goal)
	}
}

func TestRunGenerateFailureWritesNothing(t *testing.T) {
	store := devStore(t)
	stub := &stubProvider{err: errors.New("model exploded")}

	msg := runGenerate(context.Background(), generateOptions{
		provider: stub,
		store:    store,
		devMode:  true,
	}, prompt.Submission{Goal: "anything", Tone: "Casual", OutputType: "Text"})

	errMsg, ok := msg.(generateErrMsg)
	if !ok {
		t.Fatalf("got %T, want generateErrMsg", msg)
	}
	if !strings.Contains(errMsg.err.Error(), "model exploded") {
		t.Errorf("error %q should carry the provider failure verbatim", errMsg.err)
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("history has %d records after failure, want 0", len(records))
	}
}

func TestRunGenerateSkipsHistoryOutsideDevMode(t *testing.T) {
	store := devStore(t)
	stub := &stubProvider{result: "ok"}

	msg := runGenerate(context.Background(), generateOptions{
		provider: stub,
		store:    store,
		devMode:  false,
	}, prompt.Submission{Goal: "anything", Tone: "Casual", OutputType: "Text"})

	if _, ok := msg.(generateDoneMsg); !ok {
		t.Fatalf("got %T, want generateDoneMsg", msg)
	}

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("history has %d records outside dev mode, want 0", len(records))
	}
}

func TestRunGenerateRecursionFlag(t *testing.T) {
	stub := &stubProvider{result: "meta"}

	msg := runGenerate(context.Background(), generateOptions{provider: stub}, prompt.Submission{
		Goal:    "prompt prompt prompt",
		Depth:   3,
		GodMode: true,
	})

	done, ok := msg.(generateDoneMsg)
	if !ok {
		t.Fatalf("got %T, want generateDoneMsg", msg)
	}
	if !done.recursive {
		t.Error("recursive goal not flagged")
	}
	if !strings.Contains(stub.gotPrompt, "Recursion depth: 3") {
		t.Errorf("assembled prompt missing depth: %q", stub.gotPrompt)
	}
	if !strings.Contains(stub.gotPrompt, "God Mode: ON") {
		t.Errorf("assembled prompt missing god mode: %q", stub.gotPrompt)
	}
}

func TestRunGenerateSaveTxt(t *testing.T) {
	dir := t.TempDir()
	stub := &stubProvider{result: "save me"}

	msg := runGenerate(context.Background(), generateOptions{
		provider: stub,
		saveDir:  dir,
		saveTxt:  true,
	}, prompt.Submission{Goal: "anything", Tone: "Casual", OutputType: "Text"})

	done, ok := msg.(generateDoneMsg)
	if !ok {
		t.Fatalf("got %T, want generateDoneMsg", msg)
	}
	if done.savedAs == "" {
		t.Fatal("savedAs is empty with saveTxt on")
	}
	if !strings.HasPrefix(done.savedAs, "prompt_") {
		t.Errorf("savedAs = %q", done.savedAs)
	}
}
