// Package solver implements the inner solver: given the subgraph of targets
// belonging to one non-trivial sibling SCC, it simplifies, enumerates
// sibling-directory orderings, and emits the cheapest set of hoists.
package solver

import (
	"fmt"
	"io"
	"sort"

	"github.com/grouptopo/grouptopo/chooser"
	"github.com/grouptopo/grouptopo/conflict"
	"github.com/grouptopo/grouptopo/constraint"
	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/hoistplan"
	"github.com/grouptopo/grouptopo/permute"
	"github.com/grouptopo/grouptopo/subproblem"
	"github.com/grouptopo/grouptopo/target"
)

// Options configures the inner solver's diagnostics.
type Options struct {
	// Warn receives the O(n!*n^2) time-complexity warning before a
	// permutation search whose directory count exceeds WarnThreshold. A nil
	// Warn suppresses the message entirely.
	Warn io.Writer
	// WarnThreshold is the directory count above which the warning fires.
	// Zero means "warn before every permutation search", matching the
	// original's unconditional per-SCC warning.
	WarnThreshold int
}

// FindHoistsNeededForSubgraph runs the inner solver (component design 4.3)
// over the targets in members, all of whose effective paths begin with
// prefix and whose first segment after prefix belongs to the same
// non-trivial SCC. Returns the hoists chosen for this subproblem, each
// rooted at prefix.
func FindHoistsNeededForSubgraph(g *depgraph.Graph, prefix target.Path, members []target.TargetName, opts Options) []hoistplan.Hoist {
	sub := subproblem.Build(g, prefix, members)
	forced := sub.Simplify()

	dirs := localDirectories(sub)
	n := len(dirs)
	if n == 0 {
		return nil
	}

	pairwise := make([][]constraint.HoistsNeeded, n)
	for i := range pairwise {
		pairwise[i] = make([]constraint.HoistsNeeded, n)
		for j := range pairwise[i] {
			if i != j {
				pairwise[i][j] = conflict.CostOfDirBeforeDir(sub, dirs[i], dirs[j])
			}
		}
	}

	if opts.Warn != nil && n > opts.WarnThreshold {
		fmt.Fprintf(opts.Warn, "grouptopo: algorithm with time-complexity O(n! n^2), n = %d\n", n)
	}

	universe := sub.Names()
	var bestNames []target.TargetName
	bestCount := -1

	permute.Each(n, func(perm []int) {
		f := constraint.NewFastHN(universe)
		for a := 0; a < len(perm); a++ {
			for b := a + 1; b < len(perm); b++ {
				f.Flatten(pairwise[perm[a]][perm[b]])
			}
		}
		for _, fc := range forced {
			f.Flatten(fc)
		}

		chosenIdx := chooser.MinimumHoistsNeededApprox(f)
		if bestCount == -1 || len(chosenIdx) < bestCount {
			bestCount = len(chosenIdx)
			bestNames = namesOf(f, chosenIdx)
		}
	})

	hoists := make([]hoistplan.Hoist, 0, len(bestNames))
	for _, name := range bestNames {
		hoists = append(hoists, hoistplan.Hoist{Target: name, ChosenPath: prefix.Clone()})
	}

	return hoists
}

// localDirectories returns the distinct first residual segments among sub's
// surviving nodes, sorted for deterministic permutation ordering.
func localDirectories(sub *subproblem.Graph) []target.DirName {
	set := make(map[target.DirName]struct{})
	for _, n := range sub.Names() {
		if seg, ok := sub.FirstSegment(n); ok {
			set[seg] = struct{}{}
		}
	}
	out := make([]target.DirName, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func namesOf(f *constraint.FastHN, idx []int) []target.TargetName {
	out := make([]target.TargetName, len(idx))
	for i, v := range idx {
		out[i] = f.NameOf(v)
	}

	return out
}
