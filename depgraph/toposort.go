package depgraph

import (
	"errors"
	"sort"

	"github.com/grouptopo/grouptopo/target"
)

// vertex visitation state, the same three colors the teacher's dfs package
// uses for cycle detection and topological sort.
const (
	white = iota
	gray
	black
)

// ErrCycle is returned by TopologicalSort when the graph contains a directed
// cycle. DetectCycle reports cycles through its boolean result instead.
var ErrCycle = errors.New("depgraph: cycle detected")

// DetectCycle reports whether g contains any directed cycle, along with one
// example cycle (target names in traversal order) if so.
func (g *Graph) DetectCycle() (bool, []target.TargetName) {
	state := make(map[target.TargetName]int, len(g.nodes))
	var path []target.TargetName

	var visit func(id target.TargetName) []target.TargetName
	visit = func(id target.TargetName) []target.TargetName {
		state[id] = gray
		path = append(path, id)
		for nbr := range g.out[id] {
			switch state[nbr] {
			case white:
				if cyc := visit(nbr); cyc != nil {
					return cyc
				}
			case gray:
				// Back-edge: reconstruct the cycle from path.
				start := 0
				for i, p := range path {
					if p == nbr {
						start = i
						break
					}
				}
				cyc := make([]target.TargetName, len(path)-start)
				copy(cyc, path[start:])
				return cyc
			case black:
				// already fully explored, no cycle through here
			}
		}
		state[id] = black
		path = path[:len(path)-1]

		return nil
	}

	// Deterministic iteration order keeps cycle reports stable across runs.
	for _, n := range g.sortedNames() {
		if state[n] == white {
			if cyc := visit(n); cyc != nil {
				return true, cyc
			}
		}
	}

	return false, nil
}

// TopologicalSort computes a linear ordering of every target such that for
// every edge A -> B, A appears before B. Returns ErrCycle if g is not
// acyclic.
func (g *Graph) TopologicalSort() ([]target.TargetName, error) {
	state := make(map[target.TargetName]int, len(g.nodes))
	order := make([]target.TargetName, 0, len(g.nodes))

	var visit func(id target.TargetName) error
	visit = func(id target.TargetName) error {
		state[id] = gray
		for nbr := range g.out[id] {
			switch state[nbr] {
			case white:
				if err := visit(nbr); err != nil {
					return err
				}
			case gray:
				return ErrCycle
			}
		}
		state[id] = black
		order = append(order, id)

		return nil
	}

	for _, n := range g.sortedNames() {
		if state[n] == white {
			if err := visit(n); err != nil {
				return nil, err
			}
		}
	}

	// order is currently post-order; reverse it to get a valid topo order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// sortedNames returns target names in a stable, deterministic order so
// traversal results (and cycle reports) do not depend on map iteration.
func (g *Graph) sortedNames() []target.TargetName {
	out := make([]target.TargetName, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
