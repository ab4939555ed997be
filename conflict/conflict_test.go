package conflict_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouptopo/grouptopo/conflict"
	"github.com/grouptopo/grouptopo/constraint"
	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/subproblem"
	"github.com/grouptopo/grouptopo/target"
)

func mustDir(t *testing.T, s string) target.DirName {
	t.Helper()
	d, err := target.NewDirName(s)
	require.NoError(t, err)

	return d
}

func mustPath(t *testing.T, segs ...string) target.Path {
	t.Helper()
	p := make(target.Path, len(segs))
	for i, s := range segs {
		p[i] = mustDir(t, s)
	}

	return p
}

func TestCostOfDirBeforeDir_SelfPairTrivial(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("a", mustPath(t, "x")))
	sub := subproblem.Build(g, nil, []target.TargetName{"a"})

	h := conflict.CostOfDirBeforeDir(sub, mustDir(t, "x"), mustDir(t, "x"))
	assert.True(t, h.Satisfies(nil))
}

func TestCostOfDirBeforeDir_SingleViolatingEdge(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("foo", mustPath(t, "midShared")))
	require.NoError(t, g.AddNode("bar", mustPath(t, "midOther")))
	require.NoError(t, g.AddEdge("foo", "bar"))

	sub := subproblem.Build(g, nil, []target.TargetName{"foo", "bar"})
	h := conflict.CostOfDirBeforeDir(sub, mustDir(t, "midShared"), mustDir(t, "midOther"))

	// Hoisting either endpoint of the one violating edge should satisfy it.
	assert.True(t, h.Satisfies(map[target.TargetName]struct{}{"foo": {}}))
	assert.True(t, h.Satisfies(map[target.TargetName]struct{}{"bar": {}}))
	assert.False(t, h.Satisfies(map[target.TargetName]struct{}{}))
}

func TestCostOfDirBeforeDir_NoEdgesIsTrivial(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("a", mustPath(t, "x")))
	require.NoError(t, g.AddNode("b", mustPath(t, "y")))
	sub := subproblem.Build(g, nil, []target.TargetName{"a", "b"})

	h := conflict.CostOfDirBeforeDir(sub, mustDir(t, "x"), mustDir(t, "y"))
	assert.True(t, h.Satisfies(nil))
	assert.Equal(t, constraint.KindAll, h.Kind)
}
