package sibling

// TarjanSCC computes the strongly connected components of g using Tarjan's
// low-link algorithm. The teacher ships cycle detection and topological
// sort built on a three-color DFS but no SCC partitioning, so this extends
// that same traversal shape (explicit index/low-link bookkeeping instead of
// White/Gray/Black, since Tarjan needs more per-vertex state than a plain
// three-color walk) rather than reusing code directly.
//
// Returns components in no particular order; within a component, vertex
// order is unspecified. A component of size 1 whose vertex has a self-edge
// is still reported with size 1 (self-edges are suppressed at graph
// construction, so this case does not arise from BuildGraph).
func TarjanSCC(g *Graph) [][]Vertex {
	t := &tarjan{
		g:       g,
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
	}

	for _, v := range g.Vertices() {
		if _, seen := t.index[v.key()]; !seen {
			t.strongConnect(v)
		}
	}

	return t.components
}

type tarjan struct {
	g          *Graph
	next       int
	index      map[string]int
	lowlink    map[string]int
	onStack    map[string]bool
	stack      []Vertex
	components [][]Vertex
}

func (t *tarjan) strongConnect(v Vertex) {
	vk := v.key()
	t.index[vk] = t.next
	t.lowlink[vk] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[vk] = true

	for _, w := range t.g.Successors(v) {
		wk := w.key()
		if _, seen := t.index[wk]; !seen {
			t.strongConnect(w)
			if t.lowlink[wk] < t.lowlink[vk] {
				t.lowlink[vk] = t.lowlink[wk]
			}
		} else if t.onStack[wk] {
			if t.index[wk] < t.lowlink[vk] {
				t.lowlink[vk] = t.index[wk]
			}
		}
	}

	if t.lowlink[vk] == t.index[vk] {
		var comp []Vertex
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w.key()] = false
			comp = append(comp, w)
			if w.key() == vk {
				break
			}
		}
		t.components = append(t.components, comp)
	}
}
