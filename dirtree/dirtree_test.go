package dirtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouptopo/grouptopo/depgraph"
	"github.com/grouptopo/grouptopo/dirtree"
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

func TestInsertAndLookup(t *testing.T) {
	tree := dirtree.New()
	tree.Insert("foo", mustPath(t, "top", "mid"))

	node := tree.LookupAt(mustPath(t, "top", "mid"))
	require.NotNil(t, node)
	_, ok := node.Targets["foo"]
	assert.True(t, ok)
}

func TestRemove_NotFound(t *testing.T) {
	tree := dirtree.New()
	err := tree.Remove("foo", mustPath(t, "top"))
	assert.ErrorIs(t, err, dirtree.ErrTargetNotFound)
}

func TestWalk_VisitsAllNodes(t *testing.T) {
	tree := dirtree.New()
	tree.Insert("a", mustPath(t, "x"))
	tree.Insert("b", mustPath(t, "x", "y"))

	var paths []string
	_ = tree.Walk(func(path target.Path, node *dirtree.Tree) error {
		paths = append(paths, path.String())
		return nil
	})

	assert.Contains(t, paths, "")
	assert.Contains(t, paths, "x")
	assert.Contains(t, paths, "x/y")
}

func TestCheckInvariant_HoldsAfterInsert(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("foo", mustPath(t, "top")))
	tree := dirtree.New()
	tree.Insert("foo", mustPath(t, "top"))

	assert.NotPanics(t, func() { dirtree.CheckInvariant(g, tree) })
}

func TestCheckInvariant_PanicsOnMismatch(t *testing.T) {
	g := depgraph.New()
	require.NoError(t, g.AddNode("foo", mustPath(t, "top")))
	tree := dirtree.New()
	// Deliberately insert at the wrong path to break the cross-invariant.
	tree.Insert("foo", mustPath(t, "other"))

	assert.Panics(t, func() { dirtree.CheckInvariant(g, tree) })
}
