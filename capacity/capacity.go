// Package capacity implements the weighted-descent query with a memoized
// three-state walk; see doc.go for the termination and error contract.
package capacity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/haversack/containment"
)

// Descent state of a color during the memoized walk.
const (
	white = iota // white: not reached yet
	gray         // gray: on the current descent path
	black        // black: total computed and memoized
)

var (
	// ErrColorNotFound indicates that a queried or referenced color has
	// no entry in the contains graph.
	ErrColorNotFound = errors.New("capacity: color not present in contains graph")

	// ErrCycleDetected indicates that the rules route a color back into
	// itself, making its required count unbounded.
	ErrCycleDetected = errors.New("capacity: containment cycle detected")
)

// RequiredBags returns the total number of bags required inside one target
// bag: every direct requirement, its requirements, and so on, with
// multiplicities. The target bag itself is not counted.
//
// Error conditions:
//   - ErrColorNotFound : target, or a color reached during descent, has
//     no rule of its own.
//   - ErrCycleDetected : the rules contain a containment cycle.
//
// Complexity: O(V + E) time, O(V) memory.
func RequiredBags(g containment.Contains, target string) (uint64, error) {
	d := &descender{
		graph: g,
		state: make(map[string]int, len(g)),
		total: make(map[string]uint64, len(g)),
	}
	n, err := d.visit(target)
	if err != nil {
		return 0, err
	}

	// The query counts the bags inside the target, not the target itself.
	return n - 1, nil
}

// descender holds the memoized walk state over the contains graph.
type descender struct {
	graph containment.Contains
	state map[string]int    // white/gray/black per color
	total map[string]uint64 // bags per single color instance, itself included
}

// visit returns the bag count of one color instance, itself included.
func (d *descender) visit(color string) (uint64, error) {
	// 1. A revisited color either closes a cycle (gray, a back edge on the
	//    current path) or reuses its memoized total (black).
	if d.state[color] != white {
		if d.state[color] == gray {
			return 0, fmt.Errorf("%w: %q", ErrCycleDetected, color)
		}

		return d.total[color], nil
	}
	// 2. Every color reached must carry a rule of its own.
	contents, ok := d.graph[color]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColorNotFound, color)
	}
	// 3. Mark as in-progress (gray) before expanding.
	d.state[color] = gray

	// 4. One for the bag itself, plus count × total of each requirement.
	n := uint64(1)
	for c := range contents {
		sub, err := d.visit(c.Color)
		if err != nil {
			return 0, err
		}
		n += c.Count * sub
	}

	// 5. Seal the color (black) and memoize its total.
	d.state[color] = black
	d.total[color] = n

	return n, nil
}
