package catalog

import "math/rand"

// Template is a named preset bundle used to prefill the form.
// Immutable after package init.
type Template struct {
	Goal       string
	Tone       string
	OutputType string
	Audience   string
}

// Tones are the fixed tone labels, in display order.
var Tones = []string{
	"Clear and helpful", "Professional", "Casual", "Funny", "Creative",
	"Motivational", "Witty", "Analytical", "Cynical but comforting", "Roasty",
	"Passive aggressive", "Aggressively encouraging", "Satirical", "Irritated",
	"Snarky", "Reflective",
}

// OutputTypes are the fixed output format labels, in display order.
var OutputTypes = []string{
	"Text", "Conversation", "Image Prompt", "Markdown", "Bullet List", "JSON",
}

// DefaultTone and DefaultOutputType are used when no preset is selected.
const (
	DefaultTone       = "Clear and helpful"
	DefaultOutputType = "Text"
)

type entry struct {
	Name     string
	Template Template
}

type category struct {
	Name    string
	Entries []entry
}

var categories = []category{
	{
		Name: "Real Estate",
		Entries: []entry{
			{"Cold Outreach Message", Template{
				Goal:       "Craft a short, attention-grabbing message to reach out to a new commercial real estate prospect in Tucson, AZ.",
				Tone:       "Professional",
				OutputType: "Text",
				Audience:   "Commercial property owners",
			}},
			{"Market Summary Generator", Template{
				Goal:       "Summarize the current real estate market trends for investors in a specific submarket.",
				Tone:       "Clear and helpful",
				OutputType: "Markdown",
				Audience:   "CRE investors",
			}},
			{"Deal Analysis Helper", Template{
				Goal:       "Help analyze the pros and cons of an industrial property investment opportunity in Tucson, AZ.",
				Tone:       "Analytical",
				OutputType: "Bullet List",
				Audience:   "CRE analysts and brokers",
			}},
		},
	},
	{
		Name: "Productivity & Learning",
		Entries: []entry{
			{"Productivity Prompt Planner", Template{
				Goal:       "Generate a set of focused prompts to help me plan and prioritize my day effectively.",
				Tone:       "Motivational",
				OutputType: "Bullet List",
				Audience:   "Busy professionals and productivity nerds",
			}},
			{"Prompt Engineering Optimizer", Template{
				Goal:       "Take a rough prompt I've written and improve it so it's more structured, clear, and effective.",
				Tone:       "Clear and helpful",
				OutputType: "Markdown",
				Audience:   "Anyone learning how to prompt better",
			}},
			{"Weekly Review Wizard", Template{
				Goal:       "Guide me through a weekly review of what I accomplished, learned, and what I want to focus on next.",
				Tone:       "Reflective",
				OutputType: "Conversation",
				Audience:   "Personal growth and productivity focused users",
			}},
		},
	},
	{
		Name: "Creative & Fun",
		Entries: []entry{
			{"Vibecode Brainstorm Buddy", Template{
				Goal:       "Come up with fresh, creative app or automation ideas that I could build with my current skills.",
				Tone:       "Creative",
				OutputType: "Bullet List",
				Audience:   "A vibecoder looking for weekend build ideas",
			}},
			{"Mindset Reframe", Template{
				Goal:       "Help me reframe a negative thought or frustration into something more constructive and empowering.",
				Tone:       "Witty",
				OutputType: "Text",
				Audience:   "Someone in a funk who needs a boost",
			}},
			{"Existential Crisis Coach", Template{
				Goal:       "Help me cope with the crushing weight of late capitalism using sarcasm and dark humor.",
				Tone:       "Cynical but comforting",
				OutputType: "Text",
				Audience:   "Millennials spiraling at 2AM",
			}},
			{"Roast My Life Decisions", Template{
				Goal:       "Make fun of me for buying a $7 latte instead of saving for retirement, but make it clever and a little too real.",
				Tone:       "Roasty",
				OutputType: "Bullet List",
				Audience:   "People who enjoy pain as comedy",
			}},
			{"Email Response Rage Filter", Template{
				Goal:       "Help me respond to a deeply annoying email in a professional tone while screaming internally.",
				Tone:       "Passive aggressive",
				OutputType: "Text",
				Audience:   "Anyone who's ever replied all by accident",
			}},
			{"Clean Your Damn Room Bot", Template{
				Goal:       "Write a motivational pep talk that uses tough love and light profanity to convince me to clean my disgusting room.",
				Tone:       "Aggressively encouraging",
				OutputType: "Text",
				Audience:   "Procrastinators and goblins",
			}},
			{"Startup Idea Generator (That Probably Sucks)", Template{
				Goal:       "Give me absurd startup ideas that sound real until you think about them for more than 10 seconds.",
				Tone:       "Satirical",
				OutputType: "Bullet List",
				Audience:   "Tech bros with too much VC money",
			}},
			{"Rage Journal Prompt", Template{
				Goal:       "Give me a writing prompt to vent all my rage about people who don't use their turn signals.",
				Tone:       "Irritated",
				OutputType: "Markdown",
				Audience:   "Drivers barely holding on",
			}},
			{"Corporate Bullshit Translator", Template{
				Goal:       "Take a vague corporate memo and rewrite it with brutal honesty, swearing allowed.",
				Tone:       "Snarky",
				OutputType: "Text",
				Audience:   "Employees who know the game",
			}},
		},
	},
}

// Flattened lookups, built once at init.
var (
	byName       map[string]Template
	categoryOf   map[string]string
	orderedNames []string
)

func init() {
	byName = make(map[string]Template)
	categoryOf = make(map[string]string)
	for _, cat := range categories {
		for _, e := range cat.Entries {
			byName[e.Name] = e.Template
			categoryOf[e.Name] = cat.Name
			orderedNames = append(orderedNames, e.Name)
		}
	}
}

// Categories returns category names in display order.
func Categories() []string {
	result := make([]string, 0, len(categories))
	for _, cat := range categories {
		result = append(result, cat.Name)
	}
	return result
}

// Templates returns template names within a category, in display order.
// Unknown categories yield nil.
func Templates(categoryName string) []string {
	for _, cat := range categories {
		if cat.Name != categoryName {
			continue
		}
		result := make([]string, 0, len(cat.Entries))
		for _, e := range cat.Entries {
			result = append(result, e.Name)
		}
		return result
	}
	return nil
}

// Get returns the preset for a template name. Callers treat a miss as
// empty defaults, not a failure.
func Get(name string) (Template, bool) {
	t, ok := byName[name]
	return t, ok
}

// CategoryOf returns the category a template belongs to, or "".
func CategoryOf(name string) string {
	return categoryOf[name]
}

// Names returns all template names across categories, in display order.
func Names() []string {
	result := make([]string, len(orderedNames))
	copy(result, orderedNames)
	return result
}

// Random returns a uniformly random template name.
func Random() string {
	return orderedNames[rand.Intn(len(orderedNames))]
}

// Count returns the number of templates in the catalog.
func Count() int {
	return len(orderedNames)
}
