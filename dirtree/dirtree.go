// Package dirtree implements the rooted directory tree that the driver
// descends: each node owns a set of immediate subdirectories and a set of
// targets whose ideal (or post-hoist effective) path terminates there.
package dirtree

import (
	"errors"
	"fmt"

	"github.com/grouptopo/grouptopo/target"
)

// ErrTargetNotFound is returned when Remove references a target that
// is not present at the given path.
var ErrTargetNotFound = errors.New("dirtree: target not found at path")

// ErrInvariantBroken names a violation of the D<->T cross-invariant
// described in the data model. CheckInvariant does not return it: it panics
// on a violation.
var ErrInvariantBroken = errors.New("dirtree: cross-structure invariant broken")

// Tree is one node of the directory tree, rooted at the project root
// (Tree.Subdirs of the caller's root value).
type Tree struct {
	Subdirs map[target.DirName]*Tree
	Targets map[target.TargetName]struct{}
}

// New returns an empty tree node.
func New() *Tree {
	return &Tree{
		Subdirs: make(map[target.DirName]*Tree),
		Targets: make(map[target.TargetName]struct{}),
	}
}

// childOrCreate returns the subdirectory named d, creating it if absent.
func (t *Tree) childOrCreate(d target.DirName) *Tree {
	child, ok := t.Subdirs[d]
	if !ok {
		child = New()
		t.Subdirs[d] = child
	}

	return child
}

// SubtreeAt walks path from t, creating intermediate directories as needed,
// and returns the node at the end of path (t itself if path is empty).
func (t *Tree) SubtreeAt(path target.Path) *Tree {
	cur := t
	for _, d := range path {
		cur = cur.childOrCreate(d)
	}

	return cur
}

// LookupAt walks path from t without creating anything, returning nil if any
// segment is missing.
func (t *Tree) LookupAt(path target.Path) *Tree {
	cur := t
	for _, d := range path {
		child, ok := cur.Subdirs[d]
		if !ok {
			return nil
		}
		cur = child
	}

	return cur
}

// Insert places name under path, creating directories as needed.
func (t *Tree) Insert(name target.TargetName, path target.Path) {
	t.SubtreeAt(path).Targets[name] = struct{}{}
}

// Remove deletes name from path's node. Returns ErrTargetNotFound if the
// path does not resolve or name is absent there.
func (t *Tree) Remove(name target.TargetName, path target.Path) error {
	node := t.LookupAt(path)
	if node == nil {
		return fmt.Errorf("%w: %s at %s", ErrTargetNotFound, name, path)
	}
	if _, ok := node.Targets[name]; !ok {
		return fmt.Errorf("%w: %s at %s", ErrTargetNotFound, name, path)
	}
	delete(node.Targets, name)

	return nil
}

// ChildNames returns the immediate subdirectory names of t. Order is
// unspecified; callers needing determinism should sort.
func (t *Tree) ChildNames() []target.DirName {
	out := make([]target.DirName, 0, len(t.Subdirs))
	for d := range t.Subdirs {
		out = append(out, d)
	}

	return out
}

// Walk visits t and every descendant in pre-order, passing the accumulated
// path to fn at each node. If fn returns an error, Walk aborts and returns
// it unwrapped.
func (t *Tree) Walk(fn func(path target.Path, node *Tree) error) error {
	return t.walk(nil, fn)
}

func (t *Tree) walk(prefix target.Path, fn func(target.Path, *Tree) error) error {
	if err := fn(prefix, t); err != nil {
		return err
	}
	for d, child := range t.Subdirs {
		if err := child.walk(append(prefix.Clone(), d), fn); err != nil {
			return err
		}
	}

	return nil
}
