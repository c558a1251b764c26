package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmartin/promptsynth/internal/prompt"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Synthesizing your prompt...")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.state.spin.View()))
	b.WriteString("\n\n")

	goal := strings.TrimSpace(a.state.goalInput.Value())
	if goal != "" {
		goalLine := styleSubtitle.Render("> " + truncate(goal, 55))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, goalLine))
		b.WriteString("\n")
	}

	if prompt.Recursive(goal) {
		banner := lipgloss.NewStyle().Foreground(colorWarning).Bold(true).
			Render("INCEPTION MODE ACTIVATED")
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
	}

	return a.centerVertically(b.String())
}
