// Package capacity answers the descendant side of the containment relation:
// how many bags one bag must transitively hold, counting multiplicities.
//
// What
//
//   - RequiredBags walks the Contains graph downward from a target color
//     and sums count × subtree over every requirement, excluding the
//     target bag itself from the total.
//
// Why
//
//   - "How many individual bags are required inside a single shiny gold
//     bag?" Packing one bag means packing everything its rules demand,
//     recursively.
//
// Termination
//
//	The walk memoizes a per-color total under three vertex states, so each
//	color is expanded once regardless of how many requirements share it.
//	A color re-entered while still being expanded means the rules route a
//	bag into itself; that makes the total unbounded, and the walk fails
//	with ErrCycleDetected instead of descending forever.
//
// Errors
//
//   - ErrColorNotFound  if the target, or any color reached during the
//     descent, has no rule of its own.
//   - ErrCycleDetected  if the rules contain a containment cycle.
//
// Totals are uint64; the memoized walk keeps the arithmetic linear in the
// rule set even when the counted total grows combinatorially.
//
// Complexity (V = declared colors, E = requirements)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for states, memo, and descent depth
//
// Usage
//
//	fwd := containment.NewContains(bags)
//	n, err := capacity.RequiredBags(fwd, "shiny gold")
package capacity
