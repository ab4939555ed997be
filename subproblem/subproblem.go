// Package subproblem represents the per-SCC induced subgraph the inner
// solver operates on: a copy of the relevant slice of the dependency graph,
// with each surviving node carrying a residual path (the part of its ideal
// path below the driver's current prefix) that the simplifier mutates.
package subproblem

import (
	"sort"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/target"
)

// Node is one surviving member of the subproblem, along with its residual
// path below the enclosing prefix.
type Node struct {
	Name     target.TargetName
	Residual target.Path
}

// Graph is the per-SCC induced subgraph the simplifier mutates in place.
// Owned locally by one inner-solver invocation and discarded on return, per
// the entity-lifetime note in the data model.
type Graph struct {
	nodes map[target.TargetName]*Node
	out   map[target.TargetName]map[target.TargetName]struct{}
	in    map[target.TargetName]map[target.TargetName]struct{}
}

// Build constructs the induced subgraph over members: every target in
// members becomes a node with residual path equal to its effective path
// with prefix stripped, and every dependency edge of g between two members
// is carried over.
func Build(g *depgraph.Graph, prefix target.Path, members []target.TargetName) *Graph {
	sub := &Graph{
		nodes: make(map[target.TargetName]*Node, len(members)),
		out:   make(map[target.TargetName]map[target.TargetName]struct{}, len(members)),
		in:    make(map[target.TargetName]map[target.TargetName]struct{}, len(members)),
	}

	memberSet := make(map[target.TargetName]struct{}, len(members))
	for _, m := range members {
		memberSet[m] = struct{}{}
	}

	for _, m := range members {
		n := g.Node(m)
		sub.nodes[m] = &Node{
			Name:     m,
			Residual: n.EffectivePath[len(prefix):].Clone(),
		}
		sub.out[m] = make(map[target.TargetName]struct{})
		sub.in[m] = make(map[target.TargetName]struct{})
	}

	for _, m := range members {
		for _, dep := range g.Dependencies(m) {
			if _, ok := memberSet[dep]; ok {
				sub.out[m][dep] = struct{}{}
				sub.in[dep][m] = struct{}{}
			}
		}
	}

	return sub
}

// Names returns every surviving node's name, sorted for determinism.
func (g *Graph) Names() []target.TargetName {
	out := make([]target.TargetName, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Node returns the surviving node for name, or nil if it has been removed
// (or was never a member).
func (g *Graph) Node(name target.TargetName) *Node {
	return g.nodes[name]
}

// OutNeighbors returns the out-edge targets of name among surviving nodes.
func (g *Graph) OutNeighbors(name target.TargetName) []target.TargetName {
	return setToSlice(g.out[name])
}

// InNeighbors returns the in-edge sources of name among surviving nodes.
func (g *Graph) InNeighbors(name target.TargetName) []target.TargetName {
	return setToSlice(g.in[name])
}

// Len returns the number of surviving nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// addEdge records an edge between two surviving nodes, suppressing self-edges.
func (g *Graph) addEdge(from, to target.TargetName) {
	if from == to {
		return
	}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}
}

// removeNode deletes name and every edge touching it.
func (g *Graph) removeNode(name target.TargetName) {
	for nbr := range g.out[name] {
		delete(g.in[nbr], name)
	}
	for nbr := range g.in[name] {
		delete(g.out[nbr], name)
	}
	delete(g.out, name)
	delete(g.in, name)
	delete(g.nodes, name)
}

func setToSlice(s map[target.TargetName]struct{}) []target.TargetName {
	out := make([]target.TargetName, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// FirstSegment returns the first segment of name's residual path, and
// whether it has one (false means residual is empty — a "top element").
func (g *Graph) FirstSegment(name target.TargetName) (target.DirName, bool) {
	n := g.nodes[name]
	if len(n.Residual) == 0 {
		return "", false
	}

	return n.Residual[0], true
}
