// Package conflict implements the pairwise cost analyser: for an ordered
// pair of sibling directories (A, B), the constraint describing which
// hoists would make it legal to emit A before B.
package conflict

import (
	"github.com/grouptopo/grouptopo/constraint"
	"github.com/grouptopo/grouptopo/subproblem"
	"github.com/grouptopo/grouptopo/target"
)

// CostOfDirBeforeDir returns the HoistsNeeded constraint for legally
// emitting directory a before directory b within sub. Self-pairs return the
// trivially-satisfied constraint. For every violating edge s->t (s in a,
// t in b) the clause is:
//
//	Any( All(s and its a-ancestors), All(t and its b-descendants) )
//
// and the full pair cost is the All of one such clause per violating edge.
func CostOfDirBeforeDir(sub *subproblem.Graph, a, b target.DirName) constraint.HoistsNeeded {
	if a == b {
		return constraint.TrivialSatisfied()
	}

	var clauses []constraint.HoistsNeeded
	for _, s := range sub.Names() {
		seg, ok := sub.FirstSegment(s)
		if !ok || seg != a {
			continue
		}
		for _, t := range sub.OutNeighbors(s) {
			tSeg, ok := sub.FirstSegment(t)
			if !ok || tSeg != b {
				continue
			}

			ancestors := ancestorsWithinSegment(sub, s, a)
			descendants := descendantsWithinSegment(sub, t, b)

			clauses = append(clauses, constraint.Any(
				singletonsOf(ancestors),
				singletonsOf(descendants),
			))
		}
	}

	return constraint.All(clauses...)
}

// singletonsOf builds All(Single(n)...) for a (non-empty, since it always
// contains at least the edge's own endpoint) set of node names.
func singletonsOf(names []target.TargetName) constraint.HoistsNeeded {
	children := make([]constraint.HoistsNeeded, len(names))
	for i, n := range names {
		children[i] = constraint.Single(n)
	}

	return constraint.All(children...)
}

// ancestorsWithinSegment returns s together with every node whose first
// residual segment equals seg and that has a path to s within sub.
func ancestorsWithinSegment(sub *subproblem.Graph, s target.TargetName, seg target.DirName) []target.TargetName {
	reach := reachableTo(sub, s)
	out := []target.TargetName{s}
	for _, n := range sub.Names() {
		if n == s {
			continue
		}
		if _, ok := reach[n]; !ok {
			continue
		}
		if segN, ok := sub.FirstSegment(n); ok && segN == seg {
			out = append(out, n)
		}
	}

	return out
}

// descendantsWithinSegment returns t together with every node whose first
// residual segment equals seg and that is reachable from t within sub.
func descendantsWithinSegment(sub *subproblem.Graph, t target.TargetName, seg target.DirName) []target.TargetName {
	reach := reachableFrom(sub, t)
	out := []target.TargetName{t}
	for _, n := range sub.Names() {
		if n == t {
			continue
		}
		if _, ok := reach[n]; !ok {
			continue
		}
		if segN, ok := sub.FirstSegment(n); ok && segN == seg {
			out = append(out, n)
		}
	}

	return out
}

// reachableTo returns every node with a path to target (excluding target
// itself), via a bounded DFS over in-edges — bounded by the size of one
// sibling-directory's worth of targets, so a direct DFS is both correct and
// fast with no library dependency warranted.
func reachableTo(sub *subproblem.Graph, start target.TargetName) map[target.TargetName]struct{} {
	seen := make(map[target.TargetName]struct{})
	var visit func(target.TargetName)
	visit = func(n target.TargetName) {
		for _, p := range sub.InNeighbors(n) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			visit(p)
		}
	}
	visit(start)

	return seen
}

// reachableFrom returns every node reachable from start (excluding start
// itself) via out-edges.
func reachableFrom(sub *subproblem.Graph, start target.TargetName) map[target.TargetName]struct{} {
	seen := make(map[target.TargetName]struct{})
	var visit func(target.TargetName)
	visit = func(n target.TargetName) {
		for _, s := range sub.OutNeighbors(n) {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			visit(s)
		}
	}
	visit(start)

	return seen
}
