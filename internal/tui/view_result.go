package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	title := styleLogo.Render("Your Generated Prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if a.state.recursive {
		banner := lipgloss.NewStyle().Foreground(colorWarning).Bold(true).
			Render("INCEPTION MODE ACTIVATED")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
		b.WriteString("\n")

		depthNote := styleSubtitle.Render(fmt.Sprintf("You selected %d layer(s) of recursion.", a.state.depth))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, depthNote))
		b.WriteString("\n")

		if a.state.depth >= 4 {
			warn := lipgloss.NewStyle().Foreground(colorWarning).
				Render("Caution: Depths beyond level 3 may destabilize your perception of reality.")
			b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, warn))
			b.WriteString("\n")
		}

		if a.state.godMode {
			god := lipgloss.NewStyle().Foreground(colorSuccess).
				Render("Prompt God Mode enabled - the AI transcends time, syntax, and possibly copyright.")
			b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, god))
			b.WriteString("\n")
			quote := styleSubtitle.Italic(true).
				Render(`"What is a prompt, but a mirror to the mind that wields it?" - Prompt God`)
			b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, quote))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	result := a.state.result

	// Clamp to the visible area; the full text still goes to any save.
	maxResultHeight := a.height - 12
	if maxResultHeight < 5 {
		maxResultHeight = 5
	}
	resultLines := strings.Split(result, "\n")
	if len(resultLines) > maxResultHeight {
		resultLines = resultLines[:maxResultHeight]
		resultLines = append(resultLines, styleSubtitle.Render("... (truncated, save to read everything)"))
		result = strings.Join(resultLines, "\n")
	}

	resultBox := styleBox.Copy().
		Width(min(72, max(40, a.width-4))).
		BorderForeground(colorPrimary).
		Render(result)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	if a.state.savedAs != "" {
		saved := lipgloss.NewStyle().Foreground(colorSuccess).
			Render("Saved to " + a.state.savedAs)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, saved))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[s] Save to .txt  [n] New prompt  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
