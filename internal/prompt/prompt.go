package prompt

import (
	_ "embed"
	"fmt"
	"math/rand"
	"strings"
)

//go:embed normal.md
var normalTemplate string

//go:embed recursion.md
var recursionTemplate string

// Submission is one form submission's worth of state.
type Submission struct {
	Goal       string
	Tone       string
	OutputType string
	Audience   string

	// Depth and GodMode only affect the recursion-mode instruction text.
	Depth   int
	GodMode bool
}

// Recursive reports whether the goal triggers inception mode:
// the word "prompt" appears three or more times.
func Recursive(goal string) bool {
	lower := strings.ToLower(goal)
	return strings.Contains(lower, "prompt") && strings.Count(lower, "prompt") >= 3
}

// Assemble builds the instruction text sent to the model. Pure string
// formatting; it cannot fail for well-typed inputs.
func Assemble(sub Submission) string {
	if Recursive(sub.Goal) {
		god := "OFF"
		if sub.GodMode {
			god = "ON"
		}
		return fmt.Sprintf(strings.TrimSpace(recursionTemplate), sub.Depth, god)
	}

	return fmt.Sprintf(strings.TrimSpace(normalTemplate),
		sub.Goal, sub.Tone, sub.OutputType, sub.Audience)
}

var tips = []string{
	"Keep prompts specific, not vague.",
	"Include sample inputs/outputs if you can.",
	"Ask the AI to adopt a role: 'Act like a teacher...'",
	"Use bullet points for structured tasks.",
	"Mention tone and audience clearly.",
	"Avoid multi-tasking prompts. Focus on one goal.",
	"Review and refine your prompt after the first try!",
}

// RandomTip returns the tip of the day.
func RandomTip() string {
	return tips[rand.Intn(len(tips))]
}

var signOffs = []string{
	"Built by Ryan Martin. If it breaks, it's your fault.",
	"Another lovingly overengineered tool by Ryan Martin.",
	"If you're reading this, congrats. You're now tech support. - RM",
	"Ryan Martin made this. Don't encourage him.",
}

// SignOff returns a random about-box sign-off line.
func SignOff() string {
	return signOffs[rand.Intn(len(signOffs))]
}
