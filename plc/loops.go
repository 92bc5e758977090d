package plc

import (
	"fmt"
	"sort"
)

// Conventional ordering for named boundary loops of a box-like domain.
// Named loops are emitted in this order, then any remaining names in
// sorted order, so loop markers are reproducible run to run.
var namedLoopOrder = []string{"top", "north", "east", "south", "west"}

// NormalizeNamedLoops flattens a map of named boundary polygons into an
// ordered loop list. Box-like domains are expected to name at least
// five enclosing polygons.
func NormalizeNamedLoops(named map[string][]int) ([][]int, error) {
	if len(named) == 0 {
		return nil, fmt.Errorf("boundary loops are required (list of polygons or map of named polygons)")
	}

	out := make([][]int, 0, len(named))
	appendLoop := func(name string, poly []int) error {
		if len(poly) < 3 {
			return fmt.Errorf("boundary loop %q must have at least 3 vertices", name)
		}
		loop := make([]int, len(poly))
		copy(loop, poly)
		out = append(out, loop)
		return nil
	}

	seen := make(map[string]bool, len(namedLoopOrder))
	for _, name := range namedLoopOrder {
		if poly, ok := named[name]; ok {
			if err := appendLoop(name, poly); err != nil {
				return nil, err
			}
			seen[name] = true
		}
	}
	extras := make([]string, 0, len(named))
	for name := range named {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		if err := appendLoop(name, named[name]); err != nil {
			return nil, err
		}
	}

	if len(out) < 5 {
		return nil, fmt.Errorf("named boundary loops should include at least five polygons (e.g. top,north,east,south,west)")
	}
	return out, nil
}
