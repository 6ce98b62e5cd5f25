// Package rules defines the value types and sentinel errors shared by the
// luggage-rule parser: one Bag per rule line, holding the subject color and
// its direct Content requirements.
package rules

import "errors"

var (
	// ErrRuleSyntax indicates that a line does not match the
	// "<color> bags contain <contents>" rule grammar.
	ErrRuleSyntax = errors.New("rules: line does not match rule grammar")

	// ErrBadCount indicates that a content clause carries a count that
	// does not fit a uint64.
	ErrBadCount = errors.New("rules: content count is not a valid non-negative integer")
)

// Content records one direct containment requirement: Count bags of Color
// must sit immediately inside the subject bag.
//
// Content is comparable; two values are equal iff both fields are equal.
// Graph builders rely on that structural equality for set membership.
type Content struct {
	// Count is the number of Color bags required; well-formed rules
	// always declare at least 1.
	Count uint64

	// Color is the contained bag's color, e.g. "shiny gold".
	Color string
}

// Bag is one parsed rule line.
type Bag struct {
	// Color is the subject bag's color, e.g. "light red".
	Color string

	// Contents lists the direct requirements in the order they appeared
	// on the line; empty for bags that contain no other bags.
	Contents []Content
}
