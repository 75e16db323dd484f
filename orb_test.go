package clipper

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestOrbRingConversion(t *testing.T) {
	ring := orb.Ring{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}

	path := FromOrbRing(ring, 10)
	test.T(t, len(path), 4)
	test.T(t, path[2], Point{20, 20})

	back := ToOrbRing(path, 10)
	test.T(t, len(back), 5)
	test.T(t, back[0], back[4])
	test.Float(t, back[1][0], 2)
}

func TestOrbLineStringConversion(t *testing.T) {
	ls := orb.LineString{{0.1, 0.2}, {3.4, 5.6}}
	path := FromOrbLineString(ls, 10)
	test.T(t, path, Path{{1, 2}, {34, 56}})

	back := ToOrbLineString(path, 10)
	test.Float(t, back[1][0], 3.4)
	test.Float(t, back[1][1], 5.6)
}

func TestClipOrbPolygons(t *testing.T) {
	subj := orb.Polygon{{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	clip := orb.Polygon{{{2, 2}, {6, 2}, {6, 6}, {2, 6}, {2, 2}}}

	scale := 100.0
	c := NewClipper()
	if err := c.AddPaths(FromOrbPolygon(subj, scale), Subject, false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPaths(FromOrbPolygon(clip, scale), Clip, false); err != nil {
		t.Fatal(err)
	}
	var solution Paths
	if err := c.Execute(Union, NonZero, &solution, nil); err != nil {
		t.Fatal(err)
	}
	test.Float(t, math.Abs(AreaCombined(solution))/(scale*scale), 28)

	out := ToOrbPolygon(solution, scale)
	test.T(t, len(out), 1)
	test.T(t, out[0][0], out[0][len(out[0])-1])
}

func TestOrbMultiPolygonTree(t *testing.T) {
	subj := orb.MultiPolygon{
		{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}},
		{{{20, 0}, {30, 0}, {30, 10}, {20, 10}, {20, 0}}},
	}
	clip := orb.Polygon{{{3, 3}, {7, 3}, {7, 7}, {3, 7}, {3, 3}}}

	scale := 10.0
	c := NewClipper()
	if err := c.AddPaths(FromOrbMultiPolygon(subj, scale), Subject, false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPaths(FromOrbPolygon(clip, scale), Clip, false); err != nil {
		t.Fatal(err)
	}
	var tree PolyTree
	if err := c.ExecuteTree(Difference, NonZero, &tree, nil); err != nil {
		t.Fatal(err)
	}

	mp := ToOrbMultiPolygon(&tree, scale)
	test.T(t, len(mp), 2)

	holes := 0
	for _, p := range mp {
		holes += len(p) - 1
	}
	test.T(t, holes, 1)
}
