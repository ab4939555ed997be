// Package chooser implements the approximate minimum-cover selection over a
// FastHN constraint set: given a conjunction of two-alternative disjunctions,
// greedily pick a small set of nodes that satisfies every clause.
//
// #APPROX: this is a heuristic, not an exact minimum-cardinality cover. The
// exact problem is NP-hard; the spec marks this departure intentionally and
// asks implementations to preserve it rather than "fix" it.
package chooser

import "github.com/grouptopo/grouptopo/constraint"

// MinimumHoistsNeededApprox runs the greedy approximate min-cover algorithm
// over f and returns the chosen set of node indices (into f.Index).
func MinimumHoistsNeededApprox(f *constraint.FastHN) []int {
	active := make([]bool, len(f.Clauses))
	for i, c := range f.Clauses {
		active[i] = c.Active
	}

	chosen := make(map[int]struct{})

	// 1/2. Repeatedly pick the most-frequent single-node alternative across
	// active clauses, as long as it appears in at least two clauses.
	for {
		counts := make(map[int]int)
		for i, c := range f.Clauses {
			if !active[i] {
				continue
			}
			for _, alt := range c.Alts {
				if len(alt.Nodes) == 1 {
					counts[alt.Nodes[0]]++
				}
			}
		}

		best, bestCount := -1, 0
		// Deterministic tie-break: lowest node index wins.
		for idx := 0; idx < len(f.Index); idx++ {
			if c, ok := counts[idx]; ok && c > bestCount {
				best, bestCount = idx, c
			}
		}
		if best == -1 || bestCount < 2 {
			break
		}

		chosen[best] = struct{}{}
		for i, c := range f.Clauses {
			if !active[i] {
				continue
			}
			if clauseSatisfied(c, chosen) {
				active[i] = false
			}
		}
	}

	// 3. For each still-active clause, pick the alternative that shares the
	// most nodes with the chosen set already, minimising newly-required
	// hoists, and add its nodes.
	for i, c := range f.Clauses {
		if !active[i] {
			continue
		}
		pick := bestAlternative(c, chosen)
		for _, n := range pick.Nodes {
			chosen[n] = struct{}{}
		}
	}

	out := make([]int, 0, len(chosen))
	for idx := range chosen {
		out = append(out, idx)
	}

	return out
}

// clauseSatisfied reports whether c is already satisfied by chosen: an
// Alternative is a conjunction, so it only satisfies the clause once every
// one of its nodes is in chosen, not merely when chosen overlaps it. A
// clause must never be deactivated on partial membership in a multi-node
// alternative — that would discard an alternative's still-missing nodes
// along with it.
func clauseSatisfied(c constraint.Clause, chosen map[int]struct{}) bool {
	for _, alt := range c.Alts {
		if altFullySatisfied(alt, chosen) {
			return true
		}
	}

	return false
}

func altFullySatisfied(alt constraint.Alternative, chosen map[int]struct{}) bool {
	for _, n := range alt.Nodes {
		if _, ok := chosen[n]; !ok {
			return false
		}
	}

	return true
}

// bestAlternative returns the alternative of c that overlaps chosen the
// most; ties favour the first alternative (Alts[0]) deterministically.
func bestAlternative(c constraint.Clause, chosen map[int]struct{}) constraint.Alternative {
	best, bestScore := c.Alts[0], overlap(c.Alts[0], chosen)
	for i := 1; i < len(c.Alts); i++ {
		if s := overlap(c.Alts[i], chosen); s > bestScore {
			best, bestScore = c.Alts[i], s
		}
	}

	return best
}

func overlap(alt constraint.Alternative, chosen map[int]struct{}) int {
	n := 0
	for _, idx := range alt.Nodes {
		if _, ok := chosen[idx]; ok {
			n++
		}
	}

	return n
}

// ChosenCount runs the algorithm and returns just the cardinality of the
// result, the metric the permutation search minimises over.
func ChosenCount(f *constraint.FastHN) int {
	return len(MinimumHoistsNeededApprox(f))
}
