package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHistory() string {
	var b strings.Builder

	title := styleLogo.Render("Prompt History")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	if len(a.state.histRecords) == 0 {
		empty := styleBox.Copy().
			Width(min(60, max(30, a.width-4))).
			Foreground(colorMuted).
			Render("No prompts recorded yet.\n\nGenerate something and it will show up here.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
	} else {
		count := styleSubtitle.Render(fmt.Sprintf("%d saved prompt(s), oldest first", len(a.state.histRecords)))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, count))
		b.WriteString("\n\n")

		visible := a.height - 14
		if visible < 3 {
			visible = 3
		}

		var lines []string
		for i := a.state.histScroll; i < len(a.state.histRecords) && i < a.state.histScroll+visible; i++ {
			rec := a.state.histRecords[i]
			cursor := "  "
			when := rec.Timestamp.Format("2006-01-02 15:04")
			line := fmt.Sprintf("%s  %-16s  %s", when, truncate(rec.Tone, 16), truncate(rec.Goal, 34))
			if i == a.state.histScroll {
				cursor = "> "
				lines = append(lines, cursor+lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(line))
				lines = append(lines, styleSubtitle.Render("    "+truncate(strings.ReplaceAll(rec.Prompt, "\n", " "), 64)))
			} else {
				lines = append(lines, cursor+styleSubtitle.Render(line))
			}
		}

		histBox := styleBox.Copy().
			Width(min(74, max(40, a.width-4))).
			BorderForeground(colorPrimary).
			Render(strings.Join(lines, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, histBox))
	}
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[j/k] Scroll  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
