package hoistplan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/dirtree"
	"github.com/grouptopo/grouptopo/hoistplan"
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

func TestExecute_MovesTargetAndEffectivePath(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("foo", mustPath(t, "top", "mid", "bottom")))
	tree := dirtree.New()
	tree.Insert("foo", mustPath(t, "top", "mid", "bottom"))

	hoistplan.Execute(g, tree, []hoistplan.Hoist{
		{Target: "foo", ChosenPath: mustPath(t, "top")},
	}, true)

	assert.Equal(t, mustPath(t, "top"), g.Node("foo").EffectivePath)
	node := tree.LookupAt(mustPath(t, "top"))
	require.NotNil(t, node)
	_, ok := node.Targets["foo"]
	assert.True(t, ok)

	oldNode := tree.LookupAt(mustPath(t, "top", "mid", "bottom"))
	require.NotNil(t, oldNode)
	_, stillThere := oldNode.Targets["foo"]
	assert.False(t, stillThere)
}

func TestExecute_PanicsOnUnknownTarget(t *testing.T) {
	g := depgraph.New()
	tree := dirtree.New()

	assert.Panics(t, func() {
		hoistplan.Execute(g, tree, []hoistplan.Hoist{{Target: "ghost", ChosenPath: nil}}, false)
	})
}
