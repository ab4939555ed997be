// Package hoistplan defines the Hoist record the inner solver emits and the
// executor that applies a batch of them to the dependency graph and tree.
package hoistplan

import (
	"fmt"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/dirtree"
	"github.com/grouptopo/grouptopo/target"
)

// Hoist records that Target should be relocated to ChosenPath, a strict
// prefix of its original ideal path.
type Hoist struct {
	Target     target.TargetName
	ChosenPath target.Path
}

// Execute applies every hoist in hoists to g and tree: it looks up the
// target's current node, removes it from its old tree location, re-inserts
// it under ChosenPath, and overwrites its effective path. If verify is true
// the D<->T cross-invariant is re-checked after every hoist is applied,
// matching the "only when debug assertions are enabled" note in the
// component design — an explicit, discoverable knob rather than a hidden
// build tag, since Go has no direct debug_assertions equivalent.
//
// Panics if a hoist's target is unknown or its old location does not
// resolve in the tree: both indicate a broken precondition upstream, a
// programmer bug rather than a recoverable runtime fault.
func Execute(g *depgraph.Graph, tree *dirtree.Tree, hoists []Hoist, verify bool) {
	for _, h := range hoists {
		n := g.Node(h.Target)
		if n == nil {
			panic(fmt.Sprintf("hoistplan: hoist references unknown target %s", h.Target))
		}

		oldPath := n.EffectivePath
		if err := tree.Remove(h.Target, oldPath); err != nil {
			panic(fmt.Sprintf("hoistplan: %v", err))
		}
		tree.Insert(h.Target, h.ChosenPath)
		n.EffectivePath = h.ChosenPath.Clone()
	}

	if verify {
		dirtree.CheckInvariant(g, tree)
	}
}
