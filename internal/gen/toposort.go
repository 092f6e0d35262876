package gen

import (
	"errors"
	"fmt"
	"sort"
)

// errCycle is returned by topoSort when the dependencies form a cycle.
var errCycle = errors.New("cycle detected")

// topoSort orders items so that every item comes after its dependencies.
//
// The result is deterministic: among the items that are ready, the one
// that comes first in the input wins, so an input that already respects
// the dependencies is returned unchanged. A dependency that is not part of
// items is an error.
func topoSort[T comparable](items []T, deps func(T) []T) ([]T, error) {
	index := make(map[T]int, len(items))
	for i, item := range items {
		index[item] = i
	}

	indeg := make([]int, len(items))
	out := make([][]int, len(items))

	for i, item := range items {
		for _, d := range deps(item) {
			j, ok := index[d]
			if !ok {
				return nil, fmt.Errorf("item %d depends on %v, which is not in the list", i, d)
			}

			indeg[i]++
			out[j] = append(out[j], i)
		}
	}

	var ready []int

	for i := range items {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]T, 0, len(items))

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, items[i])
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != len(items) {
		return nil, errCycle
	}

	return order, nil
}
