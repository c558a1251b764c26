package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmartin/promptsynth/internal/catalog"
	"github.com/rmartin/promptsynth/internal/config"
	"github.com/rmartin/promptsynth/internal/history"
	"github.com/rmartin/promptsynth/internal/llm"
)

type view int

const (
	viewForm view = iota
	viewBrowse
	viewProcessing
	viewResult
	viewHistory
	viewSetup
	viewSettings
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, err := config.Load()
	if cfg == nil || err != nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}

	if path, err := config.HistoryPath(); err == nil {
		s.store = history.NewStore(path)
	}

	s.browseNames = flattenedNames()

	return &App{
		view:  viewForm,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
	)
}

func (a *App) testProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type historyLoadedMsg struct{ records []history.Record }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		if a.state.generating {
			var cmd tea.Cmd
			a.state.spin, cmd = a.state.spin.Update(msg)
			return a, cmd
		}

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewForm
		return a, a.testProvider()

	case setupErrorMsg:
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		a.state.provider = msg.provider
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case generateDoneMsg:
		a.state.generating = false
		a.state.result = msg.result
		a.state.recursive = msg.recursive
		a.state.savedAs = msg.savedAs
		a.view = viewResult
		return a, nil

	case generateErrMsg:
		a.state.generating = false
		a.state.generateError = msg.err
		a.view = viewError
		return a, nil

	case historyLoadedMsg:
		a.state.histRecords = msg.records
		a.state.histScroll = 0
		a.view = viewHistory
		return a, nil

	case savedMsg:
		a.state.savedAs = msg.name
		return a, nil
	}

	// Route remaining messages (cursor blinks etc.) to the focused input.
	if (a.view == viewSetup && a.state.setupStep == 1) ||
		(a.view == viewSettings && a.state.settingsMode == "apikey") {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewForm {
		var cmd tea.Cmd
		switch a.state.focus {
		case focusGoal:
			a.state.goalInput, cmd = a.state.goalInput.Update(msg)
		case focusAudience:
			a.state.audienceInput, cmd = a.state.audienceInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return a, tea.Quit
	}

	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewBrowse:
		return a.handleBrowseKey(msg)
	case viewProcessing:
		// One blocking call per submission, no cancellation.
		return a, nil
	case viewResult:
		return a.handleResultKey(msg)
	case viewHistory:
		return a.handleHistoryKey(msg)
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp, viewError:
		return a.handleDismissKey(msg)
	}

	return a, nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, keys.Generate):
		return a, a.submit()

	case key.Matches(msg, keys.Browse):
		a.view = viewBrowse
		return a, nil

	case key.Matches(msg, keys.Surprise):
		a.state.applyTemplate(catalog.Random())
		return a, nil

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return a, nil

	case msg.String() == "ctrl+o":
		a.state.settingsMode = ""
		a.view = viewSettings
		return a, nil

	case msg.String() == "ctrl+e":
		if a.state.config.DevMode && a.state.store != nil {
			return a, a.loadHistory()
		}
		return a, nil

	case key.Matches(msg, keys.Tab):
		a.moveFocus(1)
		return a, textinput.Blink

	case key.Matches(msg, keys.ShiftTab):
		a.moveFocus(-1)
		return a, textinput.Blink

	case key.Matches(msg, keys.Enter):
		switch a.state.focus {
		case focusGoal:
			// newline inside the goal textarea
		case focusSubmit:
			return a, a.submit()
		default:
			a.moveFocus(1)
			return a, textinput.Blink
		}
	}

	// Non-text fields take value keys directly.
	switch a.state.focus {
	case focusTone:
		if key.Matches(msg, keys.Left) {
			a.state.toneIdx = cycle(a.state.toneIdx, -1, len(catalog.Tones))
			return a, nil
		}
		if key.Matches(msg, keys.Right) || msg.String() == " " {
			a.state.toneIdx = cycle(a.state.toneIdx, 1, len(catalog.Tones))
			return a, nil
		}

	case focusOutput:
		if key.Matches(msg, keys.Left) {
			a.state.outputIdx = cycle(a.state.outputIdx, -1, len(catalog.OutputTypes))
			return a, nil
		}
		if key.Matches(msg, keys.Right) || msg.String() == " " {
			a.state.outputIdx = cycle(a.state.outputIdx, 1, len(catalog.OutputTypes))
			return a, nil
		}

	case focusSaveTxt:
		if msg.String() == " " || key.Matches(msg, keys.Left) || key.Matches(msg, keys.Right) {
			a.state.saveTxt = !a.state.saveTxt
			return a, nil
		}

	case focusDepth:
		if key.Matches(msg, keys.Left) && a.state.depth > 1 {
			a.state.depth--
			return a, nil
		}
		if key.Matches(msg, keys.Right) && a.state.depth < 5 {
			a.state.depth++
			return a, nil
		}

	case focusGodMode:
		if msg.String() == " " || key.Matches(msg, keys.Left) || key.Matches(msg, keys.Right) {
			a.state.godMode = !a.state.godMode
			return a, nil
		}
	}

	// Text fields get everything else.
	var cmd tea.Cmd
	switch a.state.focus {
	case focusGoal:
		a.state.goalInput, cmd = a.state.goalInput.Update(msg)
		// Hand edits detach the form from the preset.
		a.state.selectedTemplate = ""
	case focusAudience:
		a.state.audienceInput, cmd = a.state.audienceInput.Update(msg)
	}
	return a, cmd
}

func (a *App) moveFocus(delta int) {
	a.state.focus = cycle(a.state.focus, delta, focusCount)

	if a.state.focus == focusGoal {
		a.state.goalInput.Focus()
	} else {
		a.state.goalInput.Blur()
	}
	if a.state.focus == focusAudience {
		a.state.audienceInput.Focus()
	} else {
		a.state.audienceInput.Blur()
	}
}

func (a *App) submit() tea.Cmd {
	if strings.TrimSpace(a.state.goalInput.Value()) == "" {
		return nil
	}
	if !a.state.providerReady {
		if a.state.providerError != nil {
			a.state.generateError = a.state.providerError
			a.view = viewError
		}
		return nil
	}

	a.state.generating = true
	a.view = viewProcessing
	return tea.Batch(a.state.spin.Tick, a.generate())
}

func (a *App) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.view = viewForm
		return a, nil

	case key.Matches(msg, keys.Up):
		if a.state.browseCursor > 0 {
			a.state.browseCursor--
		}

	case key.Matches(msg, keys.Down):
		if a.state.browseCursor < len(a.state.browseNames)-1 {
			a.state.browseCursor++
		}

	case msg.String() == "r":
		a.state.applyTemplate(catalog.Random())
		a.view = viewForm
		return a, nil

	case key.Matches(msg, keys.Enter):
		if a.state.browseCursor < len(a.state.browseNames) {
			a.state.applyTemplate(a.state.browseNames[a.state.browseCursor])
		}
		a.view = viewForm
		return a, nil
	}

	return a, nil
}

func (a *App) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return a, tea.Quit

	case msg.String() == "s":
		return a, a.saveResult()

	case msg.String() == "n", key.Matches(msg, keys.Enter):
		a.state.result = ""
		a.state.savedAs = ""
		a.view = viewForm
		return a, nil
	}
	return a, nil
}

func (a *App) saveResult() tea.Cmd {
	return func() tea.Msg {
		name, err := history.SaveText(".", a.state.result)
		if err != nil {
			return generateErrMsg{err}
		}
		return savedMsg{name}
	}
}

type savedMsg struct{ name string }

func (a *App) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.view = viewForm

	case key.Matches(msg, keys.Up):
		if a.state.histScroll > 0 {
			a.state.histScroll--
		}

	case key.Matches(msg, keys.Down):
		if a.state.histScroll < len(a.state.histRecords)-1 {
			a.state.histScroll++
		}
	}
	return a, nil
}

func (a *App) loadHistory() tea.Cmd {
	return func() tea.Msg {
		records, err := a.state.store.Load()
		if err != nil {
			return generateErrMsg{err}
		}
		return historyLoadedMsg{records}
	}
}

func (a *App) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		if a.state.setupStep == 1 {
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			return a, nil
		}
		a.quitting = true
		return a, tea.Quit
	}

	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey {
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return a, textinput.Blink
			}
			return a, a.finishSetup()
		}

	case 1: // API key entry
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			return a, a.finishSetup()
		}
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		if a.state.settingsMode != "" {
			a.state.settingsMode = ""
			return a, nil
		}
		a.view = viewForm
		return a, nil
	}

	switch a.state.settingsMode {
	case "":
		switch msg.String() {
		case "p":
			a.state.settingsMode = "provider"
		case "k":
			a.state.settingsMode = "apikey"
			a.state.apiKeyInput.Reset()
			a.state.apiKeyInput.Focus()
			return a, textinput.Blink
		case "r":
			a.state.needsSetup = true
			a.state.setupStep = 0
			a.view = viewSetup
		}

	case "provider":
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			p := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = p.ID
			a.state.config.Model = p.DefaultModel
			a.state.settingsMode = ""
			a.state.providerReady = false
			return a, tea.Batch(a.finishSetup(), a.testProvider())
		}

	case "apikey":
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			a.state.settingsMode = ""
			a.state.providerReady = false
			return a, tea.Batch(a.finishSetup(), a.testProvider())
		}
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a *App) handleDismissKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.view = viewForm
		return a, nil
	case msg.String() == "r" && a.view == viewError:
		a.view = viewForm
		return a, nil
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewForm:
		return a.renderForm()
	case viewBrowse:
		return a.renderBrowse()
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewHistory:
		return a.renderHistory()
	case viewSetup:
		return a.renderSetup()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderForm()
	}
}
