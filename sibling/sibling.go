// Package sibling builds the per-directory sibling graph the driver uses to
// decide, at one tree level, whether every immediate child (subdirectory or
// loose target) can be emitted in some order that respects the dependency
// graph.
package sibling

import (
	"sort"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/dirtree"
	"github.com/grouptopo/grouptopo/target"
)

// Kind tags a Vertex: a named subdirectory, or a target loose at this level.
// A plain tagged struct, not an interface — DirOrSingle has exactly two
// shapes and no behaviour of its own.
type Kind int

const (
	// KindDir is an immediate subdirectory of the subtree at prefix.
	KindDir Kind = iota
	// KindSingle is a target whose effective path equals prefix exactly.
	KindSingle
)

// Vertex is one node of the sibling graph: Dir(d) or Single(t).
type Vertex struct {
	Kind   Kind
	Dir    target.DirName    // meaningful only when Kind == KindDir
	Target target.TargetName // meaningful only when Kind == KindSingle
}

// key returns a string uniquely identifying v within one sibling graph, used
// as the map key for adjacency.
func (v Vertex) key() string {
	if v.Kind == KindDir {
		return "d:" + string(v.Dir)
	}

	return "s:" + string(v.Target)
}

// Graph is a directed graph over Vertex values: a pure reachability
// projection of the dependency graph onto one tree level, with no weights.
type Graph struct {
	vertices map[string]Vertex
	out      map[string]map[string]struct{}
	in       map[string]map[string]struct{}
}

func newGraph() *Graph {
	return &Graph{
		vertices: make(map[string]Vertex),
		out:      make(map[string]map[string]struct{}),
		in:       make(map[string]map[string]struct{}),
	}
}

func (g *Graph) addVertex(v Vertex) {
	k := v.key()
	if _, ok := g.vertices[k]; ok {
		return
	}
	g.vertices[k] = v
	g.out[k] = make(map[string]struct{})
	g.in[k] = make(map[string]struct{})
}

func (g *Graph) addEdge(from, to Vertex) {
	fk, tk := from.key(), to.key()
	if fk == tk {
		// Self-edges are suppressed per the sibling-graph-builder spec.
		return
	}
	g.out[fk][tk] = struct{}{}
	g.in[tk][fk] = struct{}{}
}

// Vertices returns every vertex in the graph, sorted by key for determinism.
func (g *Graph) Vertices() []Vertex {
	keys := make([]string, 0, len(g.vertices))
	for k := range g.vertices {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Vertex, len(keys))
	for i, k := range keys {
		out[i] = g.vertices[k]
	}

	return out
}

// Successors returns the vertices with an edge from v.
func (g *Graph) Successors(v Vertex) []Vertex {
	nbrs := g.out[v.key()]
	out := make([]Vertex, 0, len(nbrs))
	for k := range nbrs {
		out = append(out, g.vertices[k])
	}

	return out
}

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// firstSegmentAfter returns the directory name immediately following prefix
// in path, and whether path is strictly longer than prefix (false means the
// target is loose at prefix itself).
func firstSegmentAfter(prefix, path target.Path) (target.DirName, bool) {
	if len(path) <= len(prefix) {
		return "", false
	}

	return path[len(prefix)], true
}

// vertexFor classifies a target's effective path relative to prefix into
// the Vertex it belongs to at this level.
func vertexFor(prefix, effectivePath target.Path, name target.TargetName) Vertex {
	if seg, ok := firstSegmentAfter(prefix, effectivePath); ok {
		return Vertex{Kind: KindDir, Dir: seg}
	}
	_ = name

	return Vertex{Kind: KindSingle, Target: name}
}

// BuildGraph implements gen_dir_graph: it builds the sibling graph for the
// subtree at prefix. Only targets whose effective path begins with prefix
// participate (targets hoisted elsewhere are invisible to this level).
func BuildGraph(g *depgraph.Graph, tree *dirtree.Tree, prefix target.Path) *Graph {
	sg := newGraph()

	node := tree.LookupAt(prefix)
	if node != nil {
		for d := range node.Subdirs {
			sg.addVertex(Vertex{Kind: KindDir, Dir: d})
		}
		for t := range node.Targets {
			sg.addVertex(Vertex{Kind: KindSingle, Target: t})
		}
	}

	for _, n := range g.Nodes() {
		if !n.EffectivePath.HasPrefix(prefix) {
			continue
		}
		u := vertexFor(prefix, n.EffectivePath, n.Provides)
		sg.addVertex(u)

		for _, depName := range g.Dependencies(n.Provides) {
			dep := g.Node(depName)
			if dep == nil || !dep.EffectivePath.HasPrefix(prefix) {
				continue
			}
			v := vertexFor(prefix, dep.EffectivePath, dep.Provides)
			sg.addVertex(v)
			sg.addEdge(u, v)
		}
	}

	return sg
}
