// Package graph provides the dependency-ordering primitive shared by the module
// expander (grouping-import cycles) and the topological orderer (component
// cycles): a depth-first traversal with three-state marking and a visiting-path
// stack for full-path cycle diagnostics.
package graph

import "strings"

type state uint8

const (
	unvisited state = iota
	visiting
	done
)

// CycleError reports a dependency cycle. Path holds the display names along the
// cycle in traversal order, ending with a repeat of the entry node; a
// self-referencing node yields a two-element path [X, X].
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "dependency cycle: " + strings.Join(e.Path, " -> ")
}

// Sort returns the nodes in dependency-before-dependent order.
//
// edges must return only nodes present in the input set; display names a node
// for cycle reporting. Roots are visited in input order and edges in declaration
// order, so the result is deterministic. The result is the DFS post-order
// concatenation across all nodes.
func Sort[N comparable](nodes []N, edges func(N) []N, display func(N) string) ([]N, *CycleError) {
	states := make(map[N]state, len(nodes))
	order := make([]N, 0, len(nodes))

	var stackNodes []N
	var stackNames []string

	var visit func(n N) *CycleError
	visit = func(n N) *CycleError {
		switch states[n] {
		case done:
			return nil
		case visiting:
			// The cycle is the path-stack slice from n's first occurrence to
			// the current node, closed by repeating n.
			start := 0
			for i, sn := range stackNodes {
				if sn == n {
					start = i
					break
				}
			}
			path := append([]string{}, stackNames[start:]...)
			path = append(path, display(n))
			return &CycleError{Path: path}
		}

		states[n] = visiting
		stackNodes = append(stackNodes, n)
		stackNames = append(stackNames, display(n))

		for _, dep := range edges(n) {
			if err := visit(dep); err != nil {
				return err
			}
		}

		stackNodes = stackNodes[:len(stackNodes)-1]
		stackNames = stackNames[:len(stackNames)-1]
		states[n] = done
		order = append(order, n)
		return nil
	}

	for _, n := range nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return order, nil
}
