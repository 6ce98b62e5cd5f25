// Package closure implements the ancestor query as an iterative reverse
// reachability walk; see doc.go for termination guarantees.
package closure

import "github.com/katalvlaran/haversack/containment"

// PotentialContainers returns every color that can directly or transitively
// contain target, following reverse containment edges.
//
// The target is never seeded into its own result: it appears only when some
// chain of rules routes back to it, which well-formed acyclic rule sets
// never do. A target absent from g yields an empty, non-nil set.
//
// Complexity: O(V + E) over reachable reverse edges, O(V) memory.
func PotentialContainers(g containment.ContainedBy, target string) containment.ColorSet {
	// 1. Seed the work stack with the query color alone.
	stack := []string{target}
	found := make(containment.ColorSet)

	// 2. Expand each pending color's direct containers exactly once; the
	//    result set doubles as the visited set. An absent key ranges zero
	//    times, ending that branch.
	var color string
	for len(stack) > 0 {
		color, stack = stack[len(stack)-1], stack[:len(stack)-1]
		for parent := range g[color] {
			if found.Has(parent) {
				continue
			}
			found[parent] = struct{}{}
			stack = append(stack, parent)
		}
	}

	return found
}
