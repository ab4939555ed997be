// Package constraint implements the Boolean constraint algebra the conflict
// analyser produces and the chooser consumes: HoistsNeeded, a small
// recursive AND/OR/singleton algebra, and FastHN, the flattened form used in
// the chooser's hot loop.
package constraint

import "github.com/grouptopo/grouptopo/target"

// Kind tags a HoistsNeeded node. Plain tagged structs, not interfaces: no
// dynamic dispatch is needed for a shape this small and this hot.
type Kind int

const (
	// KindSingle is satisfied iff its Node is in the chosen set.
	KindSingle Kind = iota
	// KindAny is satisfied iff at least one child is satisfied.
	KindAny
	// KindAll is satisfied iff every child is satisfied.
	KindAll
)

// HoistsNeeded is the recursive constraint value described in the data
// model: Single(node) | Any([...]) | All([...]).
type HoistsNeeded struct {
	Kind     Kind
	Node     target.TargetName // meaningful only when Kind == KindSingle
	Children []HoistsNeeded    // meaningful only when Kind == KindAny/KindAll
}

// Single builds a leaf constraint satisfied iff n is hoisted.
func Single(n target.TargetName) HoistsNeeded {
	return HoistsNeeded{Kind: KindSingle, Node: n}
}

// Any builds a disjunction: satisfied iff at least one child is.
func Any(children ...HoistsNeeded) HoistsNeeded {
	return HoistsNeeded{Kind: KindAny, Children: children}
}

// All builds a conjunction: satisfied iff every child is.
func All(children ...HoistsNeeded) HoistsNeeded {
	return HoistsNeeded{Kind: KindAll, Children: children}
}

// TrivialSatisfied is All([]): the empty conjunction, always satisfied. Used
// for the self-pair (A,A) in the conflict analyser.
func TrivialSatisfied() HoistsNeeded {
	return HoistsNeeded{Kind: KindAll}
}

// Satisfies reports whether the set chosen satisfies h. Used only by tests;
// the chooser itself works on the flattened FastHN form.
func (h HoistsNeeded) Satisfies(chosen map[target.TargetName]struct{}) bool {
	switch h.Kind {
	case KindSingle:
		_, ok := chosen[h.Node]
		return ok
	case KindAny:
		if len(h.Children) == 0 {
			return false
		}
		for _, c := range h.Children {
			if c.Satisfies(chosen) {
				return true
			}
		}
		return false
	case KindAll:
		for _, c := range h.Children {
			if !c.Satisfies(chosen) {
				return false
			}
		}
		return true
	default:
		panic("constraint: unknown Kind in Satisfies")
	}
}

// Leaves collects every distinct target referenced anywhere in h, in no
// particular order.
func (h HoistsNeeded) Leaves() []target.TargetName {
	seen := make(map[target.TargetName]struct{})
	var walk func(HoistsNeeded)
	walk = func(n HoistsNeeded) {
		if n.Kind == KindSingle {
			seen[n.Node] = struct{}{}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(h)

	out := make([]target.TargetName, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}

	return out
}
