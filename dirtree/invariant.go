package dirtree

import (
	"fmt"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/target"
)

// CheckInvariant verifies the D<->T cross-invariant: every target in g has
// an effective path that resolves in t to a node whose Targets set contains
// it, and conversely every target recorded anywhere in t has exactly that
// path as its effective path in g. It is called after hoist execution when
// the caller opts into verification; a violation is a programmer bug, not a
// recoverable input error, so it panics rather than returning an error.
func CheckInvariant(g *depgraph.Graph, t *Tree) {
	for _, n := range g.Nodes() {
		node := t.LookupAt(n.EffectivePath)
		if node == nil {
			panic(fmt.Sprintf("dirtree: invariant broken: %s has no tree node at %s", n.Provides, n.EffectivePath))
		}
		if _, ok := node.Targets[n.Provides]; !ok {
			panic(fmt.Sprintf("dirtree: invariant broken: %s missing from tree node at %s", n.Provides, n.EffectivePath))
		}
	}

	_ = t.Walk(func(path target.Path, node *Tree) error {
		for name := range node.Targets {
			n := g.Node(name)
			if n == nil {
				panic(fmt.Sprintf("dirtree: invariant broken: tree target %s at %s has no depgraph node", name, path))
			}
			if !n.EffectivePath.Equal(path) {
				panic(fmt.Sprintf("dirtree: invariant broken: %s at tree path %s but depgraph effective path %s", name, path, n.EffectivePath))
			}
		}

		return nil
	})
}
