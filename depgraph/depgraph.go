// Package depgraph implements the dependency graph: a directed graph whose
// vertices are build targets and whose edges are direct dependencies.
//
// The graph is intentionally small and single-threaded (no locking), unlike
// the teacher's core.Graph: the whole engine runs synchronously per the
// concurrency model, so there is nothing to protect here.
package depgraph

import (
	"errors"
	"fmt"

	"github.com/grouptopo/grouptopo/target"
)

// ErrVertexNotFound is returned when a lookup references a target that was
// never added to the graph.
var ErrVertexNotFound = errors.New("depgraph: target not found")

// ErrDuplicateTarget is returned by AddNode when provides already exists.
var ErrDuplicateTarget = errors.New("depgraph: duplicate target")

// Node is one build target: its identity, its original ideal path, and its
// effective path (mutated only by the hoist executor).
type Node struct {
	Provides     target.TargetName
	IdealPath    target.Path
	EffectivePath target.Path
}

// Graph is a directed graph of Nodes keyed by TargetName. Edge A -> B means
// "A depends directly on B", mirroring spec's DepGraph.
type Graph struct {
	nodes map[target.TargetName]*Node
	// out[a] is the set of targets a depends on directly.
	out map[target.TargetName]map[target.TargetName]struct{}
	// in[b] is the set of targets that depend directly on b.
	in map[target.TargetName]map[target.TargetName]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[target.TargetName]*Node),
		out:   make(map[target.TargetName]map[target.TargetName]struct{}),
		in:    make(map[target.TargetName]map[target.TargetName]struct{}),
	}
}

// AddNode inserts a new target with its ideal path. EffectivePath is
// initialised equal to IdealPath. Returns ErrDuplicateTarget if provides is
// already present.
func (g *Graph) AddNode(provides target.TargetName, idealPath target.Path) error {
	if _, exists := g.nodes[provides]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, provides)
	}
	g.nodes[provides] = &Node{
		Provides:      provides,
		IdealPath:     idealPath.Clone(),
		EffectivePath: idealPath.Clone(),
	}
	g.out[provides] = make(map[target.TargetName]struct{})
	g.in[provides] = make(map[target.TargetName]struct{})

	return nil
}

// AddEdge records that from depends directly on to. Both vertices must
// already exist.
func (g *Graph) AddEdge(from, to target.TargetName) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %s", ErrVertexNotFound, to)
	}
	g.out[from][to] = struct{}{}
	g.in[to][from] = struct{}{}

	return nil
}

// Node returns the node for name, or nil if absent.
func (g *Graph) Node(name target.TargetName) *Node {
	return g.nodes[name]
}

// HasNode reports whether name is present.
func (g *Graph) HasNode(name target.TargetName) bool {
	_, ok := g.nodes[name]
	return ok
}

// Nodes returns every node in the graph. Order is unspecified; callers that
// need determinism should sort by Provides.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}

	return out
}

// Dependencies returns the set of targets that name depends on directly.
func (g *Graph) Dependencies(name target.TargetName) []target.TargetName {
	nbrs := g.out[name]
	out := make([]target.TargetName, 0, len(nbrs))
	for t := range nbrs {
		out = append(out, t)
	}

	return out
}

// Dependents returns the set of targets that directly depend on name.
func (g *Graph) Dependents(name target.TargetName) []target.TargetName {
	nbrs := g.in[name]
	out := make([]target.TargetName, 0, len(nbrs))
	for t := range nbrs {
		out = append(out, t)
	}

	return out
}

// Len returns the number of targets in the graph.
func (g *Graph) Len() int { return len(g.nodes) }
