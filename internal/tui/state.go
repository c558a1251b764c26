package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmartin/promptsynth/internal/config"
	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/llm"
	"github.com/rmartin/promptsynth/internal/prompt"
)

// Form focus slots, in tab order.
const (
	focusGoal = iota
	focusTone
	focusOutput
	focusAudience
	focusSaveTxt
	focusDepth
	focusGodMode
	focusSubmit
	focusCount
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Settings
	settingsMode string

	// Form state (one Submission per generate cycle)
	goalInput     textarea.Model
	audienceInput textinput.Model
	toneIdx       int
	outputIdx     int
	saveTxt       bool
	depth         int
	godMode       bool
	focus         int

	// Selected preset (empty when the form was filled by hand)
	selectedTemplate string

	// Sidebar flavor
	tip string

	// Browse view
	browseCursor int
	browseNames  []string // flattened, category order

	// Processing
	generating bool
	spin       spinner.Model

	// Result
	result    string
	recursive bool
	savedAs   string

	// History (dev mode)
	store        *history.Store
	histRecords  []history.Record
	histScroll   int

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error

	// Last failure shown in the error view
	generateError error
}

func newState() *state {
	goal := textarea.New()
	goal.Placeholder = "What do you want the AI to do?"
	goal.CharLimit = 2000
	goal.SetWidth(64)
	goal.SetHeight(4)
	goal.ShowLineNumbers = false
	goal.Focus()

	audience := textinput.New()
	audience.Placeholder = "Who's it for? (optional)"
	audience.CharLimit = 200
	audience.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorSecondary)

	return &state{
		goalInput:     goal,
		audienceInput: audience,
		apiKeyInput:   apiKey,
		spin:          sp,
		depth:         1,
		tip:           prompt.RandomTip(),
	}
}

// submission snapshots the current form state.
func (s *state) submission() prompt.Submission {
	return prompt.Submission{
		Goal:       s.goalInput.Value(),
		Tone:       currentTone(s.toneIdx),
		OutputType: currentOutputType(s.outputIdx),
		Audience:   s.audienceInput.Value(),
		Depth:      s.depth,
		GodMode:    s.godMode,
	}
}

// applyTemplate prefills the form from a catalog preset.
func (s *state) applyTemplate(name string) {
	tpl, ok := lookupTemplate(name)
	if !ok {
		return
	}
	s.selectedTemplate = name
	s.goalInput.SetValue(tpl.Goal)
	s.audienceInput.SetValue(tpl.Audience)
	s.toneIdx = toneIndex(tpl.Tone)
	s.outputIdx = outputTypeIndex(tpl.OutputType)
}
