package tui

import "github.com/rmartin/promptsynth/internal/catalog"

// Selector helpers over the fixed enum slices. Indices are clamped so the
// widgets can never produce a value outside the catalog lists.

func currentTone(i int) string {
	if i < 0 || i >= len(catalog.Tones) {
		return catalog.DefaultTone
	}
	return catalog.Tones[i]
}

func currentOutputType(i int) string {
	if i < 0 || i >= len(catalog.OutputTypes) {
		return catalog.DefaultOutputType
	}
	return catalog.OutputTypes[i]
}

func toneIndex(tone string) int {
	for i, t := range catalog.Tones {
		if t == tone {
			return i
		}
	}
	return 0
}

func outputTypeIndex(outputType string) int {
	for i, o := range catalog.OutputTypes {
		if o == outputType {
			return i
		}
	}
	return 0
}

func cycle(i, delta, n int) int {
	i = (i + delta) % n
	if i < 0 {
		i += n
	}
	return i
}

func lookupTemplate(name string) (catalog.Template, bool) {
	return catalog.Get(name)
}

// flattenedNames lists every template name in category display order,
// for the browse view cursor.
func flattenedNames() []string {
	return catalog.Names()
}
