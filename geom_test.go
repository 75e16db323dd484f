package clipper

import (
	"errors"
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/tdewolff/test"
)

func TestGeomPolygonConversion(t *testing.T) {
	poly := geom.Polygon{{
		{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 1.5, Y: 1.5}, {X: 0, Y: 1.5},
	}}

	paths, closed, err := GeomToPaths(poly, 10)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, closed)
	test.T(t, len(paths), 1)
	test.T(t, paths[0][1], Point{15, 0})

	back := PathsToPolygon(paths, 10)
	test.T(t, len(back), 1)
	test.Float(t, back[0][2].X, 1.5)
	test.Float(t, back[0][2].Y, 1.5)
}

func TestGeomLineStringConversion(t *testing.T) {
	ls := geom.LineString{{X: -0.5, Y: 0.5}, {X: 2.5, Y: 0.5}}
	paths, closed, err := GeomToPaths(ls, 10)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, !closed)
	test.T(t, paths[0], Path{{-5, 5}, {25, 5}})

	mls := PathsToMultiLineString(paths, 10)
	test.T(t, len(mls), 1)
	test.Float(t, mls[0][1].X, 2.5)
}

func TestGeomUnsupported(t *testing.T) {
	_, _, err := GeomToPaths(geom.Point{X: 1, Y: 2}, 1)
	var uerr UnsupportedGeometryError
	test.That(t, errors.As(err, &uerr))
}

func TestClipGeomPolygons(t *testing.T) {
	subj := geom.Polygon{{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}}
	clip := geom.Polygon{{
		{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5},
	}}

	c := NewClipper()
	scale := 100.0
	if err := c.AddGeom(subj, Subject, scale); err != nil {
		t.Fatal(err)
	}
	if err := c.AddGeom(clip, Clip, scale); err != nil {
		t.Fatal(err)
	}
	var solution Paths
	if err := c.Execute(Intersection, NonZero, &solution, nil); err != nil {
		t.Fatal(err)
	}
	test.T(t, len(solution), 1)
	test.Float(t, math.Abs(Area(solution[0]))/(scale*scale), 0.25)
}
