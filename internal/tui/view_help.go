package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmartin/promptsynth/internal/prompt"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Tab / Shift+Tab   Move between form fields",
		"  Left / Right      Change tone, format, depth",
		"  Space             Toggle checkboxes",
		"  Ctrl+G            Generate from anywhere",
		"  F1                This help screen",
		"  Ctrl+T            Browse the template catalog",
		"  Ctrl+R            Surprise me (random preset)",
		"  Ctrl+O            Settings",
		"  Ctrl+E            Prompt history (dev mode)",
		"  Esc               Back / Quit",
	}

	shortcutsBox := styleBox.Copy().
		Width(54).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	inception := []string{
		"  Write the word \"prompt\" three or more times in",
		"  your goal and inception mode takes over. Depth",
		"  and God Mode only matter there.",
	}
	inceptionTitle := styleSubtitle.Render("About inception mode")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inceptionTitle))
	b.WriteString("\n\n")
	inceptionBox := styleBox.Copy().
		Width(54).
		Render(strings.Join(inception, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inceptionBox))
	b.WriteString("\n\n")

	signOff := styleSubtitle.Italic(true).Render(prompt.SignOff())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, signOff))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
