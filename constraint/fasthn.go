package constraint

import (
	"fmt"

	"github.com/grouptopo/grouptopo/target"
)

// Alternative is one side of a clause's OR: a short conjunction of node
// indices, almost always a singleton in practice.
type Alternative struct {
	Nodes []int
}

// Clause is one outer-AND conjunct: an OR of exactly two Alternatives, with
// an Active flag the chooser flips to O(1) logically drop a satisfied
// clause from further consideration.
type Clause struct {
	Alts   [2]Alternative
	Active bool
}

// FastHN is the flattened three-level form described in the data model:
// AND of Clauses, each an OR of two Alternatives, each an AND of singleton
// node indices. It is constructed once per pair of sibling directories and
// mutated (activated/deactivated) repeatedly by the chooser.
type FastHN struct {
	// Index maps a node index back to its target name.
	Index []target.TargetName
	// byName is the inverse of Index, built by NewFastHN.
	byName   map[target.TargetName]int
	Clauses []Clause
}

// NewFastHN returns an empty FastHN over the given universe of node names
// (the local node indices used by this subproblem).
func NewFastHN(universe []target.TargetName) *FastHN {
	f := &FastHN{
		Index:  append([]target.TargetName(nil), universe...),
		byName: make(map[target.TargetName]int, len(universe)),
	}
	for i, n := range universe {
		f.byName[n] = i
	}

	return f
}

func (f *FastHN) indexOf(n target.TargetName) int {
	i, ok := f.byName[n]
	if !ok {
		panic(fmt.Sprintf("constraint: FastHN: node %s is outside the declared universe", n))
	}

	return i
}

// Flatten converts h into clauses appended to f. h must be either the shape
// the conflict analyser produces, All(Any(alt, alt), ...), or one bare
// Any(alt, alt) clause such as a forced constraint, where each alt is a
// Single or an All of singletons. Anything else panics — that shape
// invariant is a programmer guarantee, not user input, per the
// error-handling design.
func (f *FastHN) Flatten(h HoistsNeeded) {
	switch h.Kind {
	case KindAll:
		for _, clause := range h.Children {
			f.appendClause(clause)
		}
	case KindAny:
		f.appendClause(h)
	case KindSingle:
		f.appendClause(Any(h))
	default:
		panic("constraint: FastHN.Flatten: unknown Kind")
	}
}

// appendClause converts a single Any(...) (or a degenerate All([]) trivial
// clause) into one Clause and appends it.
func (f *FastHN) appendClause(h HoistsNeeded) {
	switch h.Kind {
	case KindAll:
		if len(h.Children) != 0 {
			panic("constraint: FastHN: expected a trivially-satisfied All([]) clause")
		}
		// Trivial-satisfied clause: both alternatives empty, i.e. always active-off.
		f.Clauses = append(f.Clauses, Clause{Active: false})
	case KindAny:
		if len(h.Children) != 2 {
			panic(fmt.Sprintf("constraint: FastHN: clause has %d alternatives, want 2", len(h.Children)))
		}
		var alts [2]Alternative
		for i, alt := range h.Children {
			alts[i] = f.flattenAlternative(alt)
		}
		f.Clauses = append(f.Clauses, Clause{Alts: alts, Active: true})
	default:
		panic("constraint: FastHN: clause is not an Any or trivial All")
	}
}

// flattenAlternative converts a Single or an All(singletons) into an
// Alternative of node indices.
func (f *FastHN) flattenAlternative(h HoistsNeeded) Alternative {
	switch h.Kind {
	case KindSingle:
		return Alternative{Nodes: []int{f.indexOf(h.Node)}}
	case KindAll:
		nodes := make([]int, 0, len(h.Children))
		for _, c := range h.Children {
			if c.Kind != KindSingle {
				panic("constraint: FastHN: alternative is not a conjunction of singletons")
			}
			nodes = append(nodes, f.indexOf(c.Node))
		}
		return Alternative{Nodes: nodes}
	default:
		panic("constraint: FastHN: alternative is neither Single nor All(singletons)")
	}
}

// Merge appends every clause of other into f. Both FastHNs must share the
// same Index (node universe); callers build one FastHN per subproblem and
// merge the per-pair and forced constraints into it.
func (f *FastHN) Merge(other *FastHN) {
	f.Clauses = append(f.Clauses, other.Clauses...)
}

// NameOf returns the target name for a node index.
func (f *FastHN) NameOf(idx int) target.TargetName {
	return f.Index[idx]
}

// Len returns the number of clauses (active or not).
func (f *FastHN) Len() int { return len(f.Clauses) }
