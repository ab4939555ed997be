// Package driver implements the recursive descent that localises the
// global hoist-selection problem to each directory, and the post-hoist
// verifier that re-checks toposortability everywhere.
package driver

import (
	"context"
	"fmt"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/dirtree"
	"github.com/grouptopo/grouptopo/hoistplan"
	"github.com/grouptopo/grouptopo/sibling"
	"github.com/grouptopo/grouptopo/solver"
	"github.com/grouptopo/grouptopo/target"
)

// FindAllHoistsNeeded walks the tree from prefix down (descending first, an
// intentional #APPROX: each level's subproblem is solved independently of
// its ancestors, per the design notes on level-coupling), and at every
// internal directory builds the sibling graph, finds its non-trivial SCCs,
// and invokes the inner solver on each. Returns every hoist gathered across
// the whole tree; none of them are applied yet — that is hoistplan.Execute's
// job, run once after the full recursion completes.
//
// ctx is checked only between one SCC's inner-solver call and the next
// (never inside a single permutation search), so a caller embedding this as
// a library can cancel a long-running analysis between subproblems without
// the core algorithm itself gaining suspension points. A nil ctx is treated
// as context.Background().
func FindAllHoistsNeeded(ctx context.Context, g *depgraph.Graph, tree *dirtree.Tree, prefix target.Path, opts solver.Options) ([]hoistplan.Hoist, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var hoists []hoistplan.Hoist

	node := tree.LookupAt(prefix)
	if node == nil {
		return hoists, nil
	}

	// 1. Descend first.
	for d := range node.Subdirs {
		child := append(prefix.Clone(), d)
		childHoists, err := FindAllHoistsNeeded(ctx, g, tree, child, opts)
		if err != nil {
			return hoists, err
		}
		hoists = append(hoists, childHoists...)
	}

	// 2-3. Build the sibling graph at this level and find its SCCs.
	sg := sibling.BuildGraph(g, tree, prefix)
	comps := sibling.TarjanSCC(sg)

	// 4. For each non-trivial SCC, induce the target subgraph and solve it.
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		select {
		case <-ctx.Done():
			return hoists, ctx.Err()
		default:
		}
		members := membersOf(g, prefix, comp)
		hoists = append(hoists, solver.FindHoistsNeededForSubgraph(g, prefix, members, opts)...)
	}

	return hoists, nil
}

// membersOf collects every target whose effective path begins with
// prefix+d for some directory vertex d in comp, plus every loose target
// vertex directly in comp.
func membersOf(g *depgraph.Graph, prefix target.Path, comp []sibling.Vertex) []target.TargetName {
	dirs := make(map[target.DirName]struct{})
	var loose []target.TargetName
	for _, v := range comp {
		switch v.Kind {
		case sibling.KindDir:
			dirs[v.Dir] = struct{}{}
		case sibling.KindSingle:
			loose = append(loose, v.Target)
		}
	}

	var members []target.TargetName
	for _, n := range g.Nodes() {
		if !n.EffectivePath.HasPrefix(prefix) {
			continue
		}
		rest := n.EffectivePath[len(prefix):]
		if len(rest) == 0 {
			continue
		}
		if _, ok := dirs[rest[0]]; ok {
			members = append(members, n.Provides)
		}
	}
	members = append(members, loose...)

	return members
}

// AssertToposortPossible implements the verifier (component design 4.8): it
// traverses the tree after hoisting and, at every internal node, asserts
// the sibling graph is a DAG. An SCC of size >= 2 found here is a
// correctness bug in the engine itself, not a user-facing error, so it
// panics rather than returning an error.
func AssertToposortPossible(g *depgraph.Graph, tree *dirtree.Tree) {
	_ = tree.Walk(func(path target.Path, node *dirtree.Tree) error {
		sg := sibling.BuildGraph(g, tree, path)
		for _, comp := range sibling.TarjanSCC(sg) {
			if len(comp) >= 2 {
				panic(fmt.Sprintf("driver: post-hoist verification failed: directory %q is not toposortable", path))
			}
		}

		return nil
	})
}
