package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/target"
)

func mustPath(t *testing.T, segs ...string) target.Path {
	t.Helper()
	p := make(target.Path, len(segs))
	for i, s := range segs {
		d, err := target.NewDirName(s)
		require.NoError(t, err)
		p[i] = d
	}

	return p
}

func TestAddNode_DuplicateRejected(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("foo", mustPath(t, "top")))
	err := g.AddNode("foo", mustPath(t, "top"))
	assert.ErrorIs(t, err, depgraph.ErrDuplicateTarget)
}

func TestAddEdge_MissingVertex(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("foo", mustPath(t, "top")))
	err := g.AddEdge("foo", "bar")
	assert.ErrorIs(t, err, depgraph.ErrVertexNotFound)
}

func TestDetectCycle_NoCycle(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("a", mustPath(t, "x")))
	require.NoError(t, g.AddNode("b", mustPath(t, "y")))
	require.NoError(t, g.AddEdge("a", "b"))

	has, cyc := g.DetectCycle()
	assert.False(t, has)
	assert.Nil(t, cyc)
}

func TestDetectCycle_SelfLoop(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("a", mustPath(t, "x")))
	require.NoError(t, g.AddEdge("a", "a"))

	has, cyc := g.DetectCycle()
	assert.True(t, has)
	assert.Equal(t, []target.TargetName{"a"}, cyc)
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("a", mustPath(t, "x")))
	require.NoError(t, g.AddNode("b", mustPath(t, "y")))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "a"))

	_, err := g.TopologicalSort()
	assert.ErrorIs(t, err, depgraph.ErrCycle)
}

func TestTopologicalSort_Order(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("a", mustPath(t, "x")))
	require.NoError(t, g.AddNode("b", mustPath(t, "y")))
	require.NoError(t, g.AddNode("c", mustPath(t, "z")))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	require.Len(t, order, 3)

	pos := make(map[target.TargetName]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["b"], pos["c"])
}
