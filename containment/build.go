// Package containment builds both query graphs in one pass each over the
// parsed rule set; see doc.go for the shape invariants they guarantee.
package containment

import "github.com/katalvlaran/haversack/rules"

// NewContainedBy inverts the rules into the reverse containment relation:
// for every rule "B contains n C", C maps to a set holding B.
//
// A rule with no contents contributes nothing as a source, though its color
// may still appear as a target of other rules. Complexity: O(R + C) time.
func NewContainedBy(bags []rules.Bag) ContainedBy {
	g := make(ContainedBy, len(bags))
	for _, bag := range bags {
		for _, c := range bag.Contents {
			// First sight of a contained color creates its container set.
			set, ok := g[c.Color]
			if !ok {
				set = make(ColorSet)
				g[c.Color] = set
			}
			set[bag.Color] = struct{}{}
		}
	}

	return g
}

// NewContains keys every rule's color to the set of its direct requirements.
//
// A rule with no contents maps to an empty set, so every declared color
// resolves during descent. If the same color is declared by two rules, the
// later rule wins. Complexity: O(R + C) time.
func NewContains(bags []rules.Bag) Contains {
	g := make(Contains, len(bags))
	for _, bag := range bags {
		set := make(ContentSet, len(bag.Contents))
		for _, c := range bag.Contents {
			set[c] = struct{}{}
		}
		g[bag.Color] = set
	}

	return g
}
