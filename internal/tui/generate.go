package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/llm"
	"github.com/rmartin/promptsynth/internal/prompt"
)

type generateDoneMsg struct {
	result    string
	recursive bool
	savedAs   string
}

type generateErrMsg struct{ err error }

// generateOptions is everything one generate cycle needs, detached from
// the bubbletea model so the flow is testable.
type generateOptions struct {
	provider llm.Provider
	store    *history.Store
	devMode  bool
	saveDir  string
	saveTxt  bool
}

// runGenerate assembles the prompt, makes the one blocking model call,
// and performs the success-path side effects. On failure nothing is
// written anywhere.
func runGenerate(ctx context.Context, opts generateOptions, sub prompt.Submission) tea.Msg {
	text := prompt.Assemble(sub)

	result, err := opts.provider.Generate(ctx, text)
	if err != nil {
		return generateErrMsg{err}
	}

	var savedAs string
	if opts.saveTxt {
		name, err := history.SaveText(opts.saveDir, result)
		if err != nil {
			return generateErrMsg{fmt.Errorf("generated but could not save: %w", err)}
		}
		savedAs = name
	}

	if opts.devMode && opts.store != nil {
		rec := history.Record{
			Timestamp:  time.Now(),
			Goal:       sub.Goal,
			Tone:       sub.Tone,
			OutputType: sub.OutputType,
			Audience:   sub.Audience,
			Prompt:     result,
		}
		if err := opts.store.Append(rec); err != nil {
			return generateErrMsg{fmt.Errorf("generated but could not record history: %w", err)}
		}
	}

	return generateDoneMsg{
		result:    result,
		recursive: prompt.Recursive(sub.Goal),
		savedAs:   savedAs,
	}
}

func (a *App) generate() tea.Cmd {
	sub := a.state.submission()
	opts := generateOptions{
		provider: a.state.provider,
		store:    a.state.store,
		devMode:  a.state.config.DevMode,
		saveDir:  ".",
		saveTxt:  a.state.saveTxt,
	}
	return func() tea.Msg {
		return runGenerate(context.Background(), opts, sub)
	}
}
