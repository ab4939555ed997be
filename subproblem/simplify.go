package subproblem

import (
	"github.com/grouptopo/grouptopo/constraint"
	"github.com/grouptopo/grouptopo/target"
)

// Simplify runs the four-step reduction described in the component design,
// in the order correctness depends on: singles upward, then common-prefix
// stripping, then top-element elision (which emits forced constraints),
// then always-happy removal. It returns the forced constraints accumulated
// during top-element elision; callers must AND these into the subproblem's
// final cost alongside the pairwise conflict table.
func (g *Graph) Simplify() []constraint.HoistsNeeded {
	g.hoistSinglesUpward()
	g.killCommonPrefix()
	forced := g.removeTopElements()
	g.removeAlwaysHappy()

	return forced
}

// hoistSinglesUpward iteratively shortens the residual path of any node that
// is the sole surviving node whose residual path begins with its own: a
// target alone in its leaf directory may as well live in the parent.
func (g *Graph) hoistSinglesUpward() {
	for {
		changed := false
		for _, name := range g.Names() {
			n := g.nodes[name]
			if len(n.Residual) == 0 {
				continue
			}
			unique := true
			for _, other := range g.Names() {
				if other == name {
					continue
				}
				o := g.nodes[other]
				if o.Residual.HasPrefix(n.Residual) {
					unique = false
					break
				}
			}
			if unique {
				n.Residual = n.Residual[:len(n.Residual)-1]
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// killCommonPrefix drops the leading segment from every residual path while
// every surviving node agrees on what that segment is, collapsing the
// problem to its minimal ambiguous prefix.
func (g *Graph) killCommonPrefix() {
	for {
		names := g.Names()
		if len(names) == 0 {
			return
		}
		first, ok := g.FirstSegment(names[0])
		if !ok {
			return
		}
		for _, name := range names[1:] {
			seg, ok := g.FirstSegment(name)
			if !ok || seg != first {
				return
			}
		}
		for _, name := range names {
			n := g.nodes[name]
			n.Residual = n.Residual[1:]
		}
	}
}

// removeTopElements bypasses and deletes every node with an empty residual
// path, recording a forced Any(source, target) constraint whenever a
// bypass edge connects two nodes that share a first residual segment, even
// if that edge already existed (a
// same-directory chain routed through a node above it cannot be emitted in
// one pass without hoisting one end).
func (g *Graph) removeTopElements() []constraint.HoistsNeeded {
	var forced []constraint.HoistsNeeded

	for {
		var top target.TargetName
		found := false
		for _, name := range g.Names() {
			if _, ok := g.FirstSegment(name); !ok {
				top = name
				found = true
				break
			}
		}
		if !found {
			return forced
		}

		preds := g.InNeighbors(top)
		succs := g.OutNeighbors(top)
		for _, p := range preds {
			for _, s := range succs {
				if p == s {
					continue
				}
				g.addEdge(p, s)
				pSeg, pOK := g.FirstSegment(p)
				sSeg, sOK := g.FirstSegment(s)
				if pOK && sOK && pSeg == sSeg {
					forced = append(forced, constraint.Any(constraint.Single(p), constraint.Single(s)))
				}
			}
		}
		g.removeNode(top)
	}
}

// removeAlwaysHappy drops every node whose adjacent directories are
// mutually isolated: it builds the auxiliary graph (this subgraph plus a
// bidirectional edge between every pair of nodes sharing a first residual
// segment) and keeps only nodes with at least one original edge that lies
// on a cycle of that auxiliary graph.
func (g *Graph) removeAlwaysHappy() {
	names := g.Names()
	auxOut := make(map[target.TargetName]map[target.TargetName]struct{}, len(names))
	for _, n := range names {
		auxOut[n] = make(map[target.TargetName]struct{})
	}
	for _, n := range names {
		for _, nbr := range g.OutNeighbors(n) {
			auxOut[n][nbr] = struct{}{}
		}
	}
	bySegment := make(map[target.DirName][]target.TargetName)
	for _, n := range names {
		seg, ok := g.FirstSegment(n)
		if !ok {
			continue
		}
		bySegment[seg] = append(bySegment[seg], n)
	}
	for _, group := range bySegment {
		for _, a := range group {
			for _, b := range group {
				if a == b {
					continue
				}
				auxOut[a][b] = struct{}{}
			}
		}
	}

	comp := sccComponents(names, auxOut)

	keep := make(map[target.TargetName]bool, len(names))
	for _, n := range names {
		onCycle := false
		for _, nbr := range g.OutNeighbors(n) {
			if comp[n] == comp[nbr] {
				onCycle = true
				break
			}
		}
		if !onCycle {
			for _, nbr := range g.InNeighbors(n) {
				if comp[n] == comp[nbr] {
					onCycle = true
					break
				}
			}
		}
		keep[n] = onCycle
	}

	for _, n := range names {
		if !keep[n] {
			g.removeNode(n)
		}
	}
}

// sccComponents returns, for each name, the index of its strongly connected
// component in the graph described by adjacency out-edges. A hand-rolled
// Tarjan pass over a plain TargetName adjacency, the same shape as
// sibling.TarjanSCC but over this package's own node keys.
func sccComponents(names []target.TargetName, out map[target.TargetName]map[target.TargetName]struct{}) map[target.TargetName]int {
	index := make(map[target.TargetName]int)
	low := make(map[target.TargetName]int)
	onStack := make(map[target.TargetName]bool)
	comp := make(map[target.TargetName]int)
	var stack []target.TargetName
	next := 0
	compID := 0

	var strongConnect func(v target.TargetName)
	strongConnect = func(v target.TargetName) {
		index[v] = next
		low[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for nbr := range out[v] {
			if _, seen := index[nbr]; !seen {
				strongConnect(nbr)
				if low[nbr] < low[v] {
					low[v] = low[nbr]
				}
			} else if onStack[nbr] {
				if index[nbr] < low[v] {
					low[v] = index[nbr]
				}
			}
		}

		if low[v] == index[v] {
			for {
				n := len(stack) - 1
				w := stack[n]
				stack = stack[:n]
				onStack[w] = false
				comp[w] = compID
				if w == v {
					break
				}
			}
			compID++
		}
	}

	for _, n := range names {
		if _, seen := index[n]; !seen {
			strongConnect(n)
		}
	}

	return comp
}
