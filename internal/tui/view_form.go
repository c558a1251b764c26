package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rmartin/promptsynth/internal/prompt"
)

const logo = `
 ███████╗██╗   ██╗███╗   ██╗████████╗██╗  ██╗
 ██╔════╝╚██╗ ██╔╝████╗  ██║╚══██╔══╝██║  ██║
 ███████╗ ╚████╔╝ ██╔██╗ ██║   ██║   ███████║
 ╚════██║  ╚██╔╝  ██║╚██╗██║   ██║   ██╔══██║
 ███████║   ██║   ██║ ╚████║   ██║   ██║  ██║
 ╚══════╝   ╚═╝   ╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝
`

func (a *App) renderForm() string {
	var b strings.Builder

	title := styleLogo.Render("Prompt Synthesizer")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Turn your rough idea into a polished AI prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n")

	tip := styleSubtitle.Render(truncate("Tip of the day: "+a.state.tip, max(24, a.width-2)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, tip))
	b.WriteString("\n\n")

	if a.state.selectedTemplate != "" {
		preset := lipgloss.NewStyle().Foreground(colorSuccess).
			Render("Preset: " + a.state.selectedTemplate)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, preset))
		b.WriteString("\n")
	}

	var fields []string

	fields = append(fields, a.fieldLabel(focusGoal, "What do you want the AI to do?"))
	fields = append(fields, a.state.goalInput.View())
	fields = append(fields, "")

	fields = append(fields, lipgloss.JoinHorizontal(lipgloss.Top,
		a.fieldLabel(focusTone, "Tone")+"  "+a.selector(focusTone, currentTone(a.state.toneIdx)),
	))
	fields = append(fields, lipgloss.JoinHorizontal(lipgloss.Top,
		a.fieldLabel(focusOutput, "Output format")+"  "+a.selector(focusOutput, currentOutputType(a.state.outputIdx)),
	))
	fields = append(fields, "")

	fields = append(fields, a.fieldLabel(focusAudience, "Audience"))
	fields = append(fields, a.state.audienceInput.View())
	fields = append(fields, "")

	fields = append(fields, a.checkbox(focusSaveTxt, a.state.saveTxt, "Save result to a .txt file"))
	fields = append(fields, a.depthSlider())
	fields = append(fields, a.checkbox(focusGodMode, a.state.godMode, "Prompt God Mode (advanced recursion)"))
	fields = append(fields, "")
	fields = append(fields, a.submitButton())

	if prompt.Recursive(a.state.goalInput.Value()) {
		fields = append(fields, "")
		fields = append(fields, lipgloss.NewStyle().Foreground(colorWarning).
			Render("Inception mode will activate on generate"))
	}

	formBox := styleBox.Copy().
		Width(min(70, max(40, a.width-4))).
		Render(strings.Join(fields, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formBox))
	b.WriteString("\n\n")

	statusItems := []string{"[Tab] Next field", "[Ctrl+G] Generate", "[Ctrl+T] Templates", "[Ctrl+R] Surprise me", "[F1] Help"}
	if a.state.config != nil && a.state.config.DevMode {
		statusItems = append(statusItems, "[Ctrl+E] History")
	}
	statusItems = append(statusItems, "[Esc] Quit")
	status := styleStatusBar.Render(strings.Join(statusItems, "  "))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	if a.state.providerError != nil {
		b.WriteString("\n")
		warn := lipgloss.NewStyle().Foreground(colorError).
			Render(truncate("provider: "+a.state.providerError.Error(), max(24, a.width-4)))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, warn))
	}

	return a.centerVertically(b.String())
}

func (a *App) fieldLabel(slot int, label string) string {
	if a.state.focus == slot {
		return styleLabelFocused.Render("> " + label)
	}
	return styleLabel.Render("  " + label)
}

func (a *App) selector(slot int, value string) string {
	if a.state.focus == slot {
		return lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).
			Render(fmt.Sprintf("< %s >", value))
	}
	return styleSubtitle.Render(value)
}

func (a *App) checkbox(slot int, checked bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s", box, label)
	if a.state.focus == slot {
		return lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render("> " + line)
	}
	return styleSubtitle.Render("  " + line)
}

func (a *App) depthSlider() string {
	filled := strings.Repeat("■", a.state.depth)
	empty := strings.Repeat("·", 5-a.state.depth)
	line := fmt.Sprintf("Inception depth  %s%s  %d/5", filled, empty, a.state.depth)
	if a.state.focus == focusDepth {
		return lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render("> " + line)
	}
	return styleSubtitle.Render("  " + line)
}

func (a *App) submitButton() string {
	label := " Generate Prompt "
	if a.state.focus == focusSubmit {
		return lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(colorPrimary).
			Bold(true).
			Render(label)
	}
	return lipgloss.NewStyle().
		Foreground(colorMuted).
		Border(lipgloss.NormalBorder()).
		Render(strings.TrimSpace(label))
}
