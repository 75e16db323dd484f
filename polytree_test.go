package clipper

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPolyTreeHole(t *testing.T) {
	c := NewClipper()
	if err := c.AddPath(square(0, 0, 20), Subject, false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPath(square(5, 5, 10), Clip, false); err != nil {
		t.Fatal(err)
	}
	var tree PolyTree
	if err := c.ExecuteTree(Difference, NonZero, &tree, nil); err != nil {
		t.Fatal(err)
	}

	test.T(t, tree.ChildCount(), 1)
	outer, err := tree.Child(0)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, !outer.IsHole())
	test.Float(t, math.Abs(Area(outer.Path())), 400)

	test.T(t, outer.ChildCount(), 1)
	hole, err := outer.Child(0)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, hole.IsHole())
	test.T(t, hole.Parent(), outer)
	test.Float(t, math.Abs(Area(hole.Path())), 100)

	// Flattening yields both rings.
	test.T(t, len(tree.Paths()), 2)
}

func TestPolyTreeSiblings(t *testing.T) {
	c := NewClipper()
	if err := c.AddPaths(Paths{square(0, 0, 10), square(20, 0, 10)}, Subject, false); err != nil {
		t.Fatal(err)
	}
	var tree PolyTree
	if err := c.ExecuteTree(Union, NonZero, &tree, nil); err != nil {
		t.Fatal(err)
	}
	test.T(t, tree.ChildCount(), 2)
	for i := 0; i < tree.ChildCount(); i++ {
		child, err := tree.Child(i)
		if err != nil {
			t.Fatal(err)
		}
		test.That(t, !child.IsHole())
		test.T(t, child.ChildCount(), 0)
	}
}

func TestPolyTreeChildRange(t *testing.T) {
	var tree PolyTree
	_, err := tree.Child(0)
	test.That(t, errors.Is(err, ErrOutOfRange))
	_, err = tree.Child(-1)
	test.That(t, errors.Is(err, ErrOutOfRange))
}

func TestPolyTreeClear(t *testing.T) {
	var pp PolyPath
	pp.AddChild(square(0, 0, 4))
	test.T(t, pp.ChildCount(), 1)
	pp.Clear()
	test.T(t, pp.ChildCount(), 0)
}
