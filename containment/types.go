// Package containment defines the graph types shared by the closure and
// capacity queries, with deterministic enumeration accessors.
package containment

import (
	"sort"

	"github.com/katalvlaran/haversack/rules"
)

// ColorSet is a set of bag colors.
type ColorSet map[string]struct{}

// Has reports whether color is in the set. Safe on a nil set.
func (s ColorSet) Has(color string) bool {
	_, ok := s[color]

	return ok
}

// Sorted returns the colors in lexicographic ascending order.
func (s ColorSet) Sorted() []string {
	out := make([]string, 0, len(s))
	var color string
	for color = range s {
		out = append(out, color)
	}
	sort.Strings(out)

	return out
}

// ContentSet is a set of direct requirements keyed by structural equality.
// Identical (count, color) requirements declared twice in one rule collapse
// into a single entry.
type ContentSet map[rules.Content]struct{}

// Sorted returns the requirements ordered by color, then count.
func (s ContentSet) Sorted() []rules.Content {
	out := make([]rules.Content, 0, len(s))
	var c rules.Content
	for c = range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Color != out[j].Color {
			return out[i].Color < out[j].Color
		}

		return out[i].Count < out[j].Count
	})

	return out
}

// ContainedBy maps each color to the set of colors that directly contain
// it. Colors that no rule places inside another bag have no entry.
type ContainedBy map[string]ColorSet

// DirectContainers returns the sorted colors that directly contain color,
// or nil when nothing does.
func (g ContainedBy) DirectContainers(color string) []string {
	set, ok := g[color]
	if !ok {
		return nil
	}

	return set.Sorted()
}

// Contains maps each declared color to its direct requirements. Every
// parsed rule has an entry; a terminal rule maps to an empty set.
type Contains map[string]ContentSet
