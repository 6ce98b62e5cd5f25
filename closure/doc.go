// Package closure answers the ancestor side of the containment relation:
// which colors can, directly or transitively, hold a given color.
//
// What
//
//   - PotentialContainers expands the ContainedBy graph from a target
//     color outward and returns every reachable container as a ColorSet.
//
// Why
//
//   - "How many bag colors can eventually hold at least one shiny gold
//     bag?" is exactly the cardinality of this closure.
//
// Termination
//
//	The walk is an iterative depth-first closure over an explicit work
//	stack; the result set doubles as the visited set, so shared ancestors
//	expand once and cyclic input terminates. There is no failure mode: a
//	color nothing contains, or one never mentioned at all, simply yields
//	an empty set.
//
// Complexity (V = reachable colors, E = reverse edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and result set
//
// Usage
//
//	rev := containment.NewContainedBy(bags)
//	holders := closure.PotentialContainers(rev, "shiny gold")
//	fmt.Println(len(holders))
package closure
