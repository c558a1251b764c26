package catalog

import (
	"testing"
)

func TestCategoriesOrder(t *testing.T) {
	want := []string{"Real Estate", "Productivity & Learning", "Creative & Fun"}
	got := Categories()

	if len(got) != len(want) {
		t.Fatalf("Categories() returned %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTemplatesOrder(t *testing.T) {
	tests := []struct {
		category string
		want     []string
	}{
		{
			category: "Real Estate",
			want:     []string{"Cold Outreach Message", "Market Summary Generator", "Deal Analysis Helper"},
		},
		{
			category: "Productivity & Learning",
			want:     []string{"Productivity Prompt Planner", "Prompt Engineering Optimizer", "Weekly Review Wizard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := Templates(tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("Templates(%q) returned %d names, want %d", tt.category, len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Templates(%q)[%d] = %q, want %q", tt.category, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTemplatesUnknownCategory(t *testing.T) {
	if got := Templates("Astrology"); got != nil {
		t.Errorf("Templates(unknown) = %v, want nil", got)
	}
}

func TestGetColdOutreachMessage(t *testing.T) {
	tpl, ok := Get("Cold Outreach Message")
	if !ok {
		t.Fatal("Get(\"Cold Outreach Message\") not found")
	}

	if tpl.Goal != "Craft a short, attention-grabbing message to reach out to a new commercial real estate prospect in Tucson, AZ." {
		t.Errorf("Goal = %q", tpl.Goal)
	}
	if tpl.Tone != "Professional" {
		t.Errorf("Tone = %q, want Professional", tpl.Tone)
	}
	if tpl.OutputType != "Text" {
		t.Errorf("OutputType = %q, want Text", tpl.OutputType)
	}
	if tpl.Audience != "Commercial property owners" {
		t.Errorf("Audience = %q, want Commercial property owners", tpl.Audience)
	}
}

func TestGetUnknownName(t *testing.T) {
	tpl, ok := Get("Does Not Exist")
	if ok {
		t.Error("Get(unknown) reported found")
	}
	if tpl != (Template{}) {
		t.Errorf("Get(unknown) = %+v, want zero Template", tpl)
	}
}

func TestEveryTemplateHasValidEnums(t *testing.T) {
	validTone := make(map[string]bool, len(Tones))
	for _, tone := range Tones {
		validTone[tone] = true
	}
	validOutput := make(map[string]bool, len(OutputTypes))
	for _, o := range OutputTypes {
		validOutput[o] = true
	}

	for _, name := range Names() {
		tpl, ok := Get(name)
		if !ok {
			t.Fatalf("Names() lists %q but Get misses it", name)
		}
		if !validTone[tpl.Tone] {
			t.Errorf("%s: tone %q not in fixed tone list", name, tpl.Tone)
		}
		if !validOutput[tpl.OutputType] {
			t.Errorf("%s: output type %q not in fixed list", name, tpl.OutputType)
		}
		if CategoryOf(name) == "" {
			t.Errorf("%s: no category", name)
		}
	}
}

func TestRandomReturnsKnownName(t *testing.T) {
	for i := 0; i < 20; i++ {
		name := Random()
		if _, ok := Get(name); !ok {
			t.Fatalf("Random() returned unknown name %q", name)
		}
	}
}

func TestCount(t *testing.T) {
	if Count() != 15 {
		t.Errorf("Count() = %d, want 15", Count())
	}
	if len(Tones) != 16 {
		t.Errorf("len(Tones) = %d, want 16", len(Tones))
	}
	if len(OutputTypes) != 6 {
		t.Errorf("len(OutputTypes) = %d, want 6", len(OutputTypes))
	}
}
