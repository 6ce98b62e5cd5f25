// Package containment derives the two query graphs from a parsed rule set:
// the reverse relation (which colors directly contain a color) and the
// forward relation (what a color directly contains, with multiplicities).
//
// What
//
//   - NewContainedBy inverts the rules into a ContainedBy graph:
//     color → set of colors holding at least one bag of it.
//   - NewContains keys every rule's color to its direct ContentSet:
//     color → set of (count, color) requirements.
//   - ColorSet and ContentSet expose Sorted accessors so callers can
//     enumerate deterministically.
//
// Shape invariants
//
//	ContainedBy holds entries only for colors some rule places inside
//	another bag; a color nothing contains has no key at all, and lookups
//	treat the absent key as "no containers". Contains, by contrast, keys
//	every declared color, mapping terminal rules to empty sets, so the
//	descent queries can tell "contains nothing" from "never declared".
//
// Both builders are pure functions of the bag slice: building twice from
// the same rules yields equal graphs.
//
// Complexity (R = #rules, C = #requirements across all rules)
//
//   - NewContainedBy: O(R + C) time, O(C) memory.
//   - NewContains:    O(R + C) time, O(R + C) memory.
//
// Usage
//
//	bags, _ := rules.Bags(rules.ScanLines(f))
//	rev := containment.NewContainedBy(bags)
//	fwd := containment.NewContains(bags)
package containment
