package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmartin/promptsynth/internal/catalog"
)

func (a *App) renderBrowse() string {
	var b strings.Builder

	title := styleLogo.Render("Template Catalog")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	desc := styleSubtitle.Render("Pick a preset to prefill the form")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	var lines []string
	idx := 0
	for _, category := range catalog.Categories() {
		lines = append(lines, styleLabel.Render(category))
		for _, name := range catalog.Templates(category) {
			tpl, _ := catalog.Get(name)
			cursor := "  "
			line := name
			if idx == a.state.browseCursor {
				cursor = "> "
				line = lipgloss.NewStyle().
					Foreground(colorSecondary).
					Bold(true).
					Render(name)
				lines = append(lines, cursor+line)
				lines = append(lines, styleSubtitle.Render("    "+truncate(tpl.Goal, 58)))
			} else {
				lines = append(lines, cursor+styleSubtitle.Render(line))
			}
			idx++
		}
		lines = append(lines, "")
	}

	listBox := styleBox.Copy().
		Width(min(68, max(40, a.width-4))).
		BorderForeground(colorPrimary).
		Render(strings.TrimRight(strings.Join(lines, "\n"), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[j/k] Navigate  [Enter] Use preset  [r] Surprise me  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
