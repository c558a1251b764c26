package tui

import (
	"testing"

	"github.com/rmartin/promptsynth/internal/catalog"
)

func TestCycle(t *testing.T) {
	tests := []struct {
		name  string
		i     int
		delta int
		n     int
		want  int
	}{
		{"forward", 0, 1, 5, 1},
		{"wrap forward", 4, 1, 5, 0},
		{"backward", 2, -1, 5, 1},
		{"wrap backward", 0, -1, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cycle(tt.i, tt.delta, tt.n); got != tt.want {
				t.Errorf("cycle(%d, %d, %d) = %d, want %d", tt.i, tt.delta, tt.n, got, tt.want)
			}
		})
	}
}

func TestToneIndexRoundTrip(t *testing.T) {
	for i, tone := range catalog.Tones {
		if got := toneIndex(tone); got != i {
			t.Errorf("toneIndex(%q) = %d, want %d", tone, got, i)
		}
		if got := currentTone(i); got != tone {
			t.Errorf("currentTone(%d) = %q, want %q", i, got, tone)
		}
	}
	if toneIndex("No Such Tone") != 0 {
		t.Error("unknown tone should fall back to index 0")
	}
	if currentTone(-1) != catalog.DefaultTone {
		t.Error("out-of-range index should fall back to the default tone")
	}
}

func TestApplyTemplatePrefillsForm(t *testing.T) {
	s := newState()

	s.applyTemplate("Cold Outreach Message")

	if s.selectedTemplate != "Cold Outreach Message" {
		t.Errorf("selectedTemplate = %q", s.selectedTemplate)
	}
	tpl, _ := catalog.Get("Cold Outreach Message")
	if s.goalInput.Value() != tpl.Goal {
		t.Errorf("goal = %q, want %q", s.goalInput.Value(), tpl.Goal)
	}
	if s.audienceInput.Value() != tpl.Audience {
		t.Errorf("audience = %q, want %q", s.audienceInput.Value(), tpl.Audience)
	}
	if currentTone(s.toneIdx) != "Professional" {
		t.Errorf("tone = %q, want Professional", currentTone(s.toneIdx))
	}
	if currentOutputType(s.outputIdx) != "Text" {
		t.Errorf("output type = %q, want Text", currentOutputType(s.outputIdx))
	}
}

func TestApplyTemplateUnknownNameIsNoop(t *testing.T) {
	s := newState()
	s.goalInput.SetValue("hand-typed goal")

	s.applyTemplate("Not A Preset")

	if s.goalInput.Value() != "hand-typed goal" {
		t.Error("unknown preset should leave the form untouched")
	}
	if s.selectedTemplate != "" {
		t.Errorf("selectedTemplate = %q, want empty", s.selectedTemplate)
	}
}

func TestSubmissionSnapshot(t *testing.T) {
	s := newState()
	s.goalInput.SetValue("roast me")
	s.audienceInput.SetValue("friends")
	s.toneIdx = toneIndex("Roasty")
	s.outputIdx = outputTypeIndex("Bullet List")
	s.depth = 4
	s.godMode = true

	sub := s.submission()

	if sub.Goal != "roast me" || sub.Audience != "friends" {
		t.Errorf("submission text fields = %q / %q", sub.Goal, sub.Audience)
	}
	if sub.Tone != "Roasty" {
		t.Errorf("Tone = %q", sub.Tone)
	}
	if sub.OutputType != "Bullet List" {
		t.Errorf("OutputType = %q", sub.OutputType)
	}
	if sub.Depth != 4 || !sub.GodMode {
		t.Errorf("Depth/GodMode = %d/%v", sub.Depth, sub.GodMode)
	}
}
