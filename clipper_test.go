package clipper

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func init() {
	rand.Seed(time.Now().UTC().UnixNano())
}

func RandomPoly(maxWidth, maxHeight, vertCnt int) Path {
	result := make(Path, vertCnt)
	for i := 0; i < vertCnt; i++ {
		result[i] = Point{CInt(rand.Intn(maxWidth)), CInt(rand.Intn(maxHeight))}
	}
	return result
}

func AreaCombined(paths Paths) float64 {
	var a float64
	for _, p := range paths {
		a += Area(p)
	}
	return a
}

func TestRandom(t *testing.T) {
	scale := int(1e0)

	for i := 0; i < 250; i++ {
		subj, clip := make(Paths, 0), make(Paths, 0)

		// Generate random subject and clip polygons ...
		subj = append(subj, RandomPoly(640*scale, 480*scale, 50))
		clip = append(clip, RandomPoly(640*scale, 480*scale, 50))

		c := NewClipper()
		fr := EvenOdd

		clipTypes := map[string]ClipType{"intersection": Intersection, "union": Union, "xor": Xor}
		areas := make(map[string]float64)
		// Load the polygons into Clipper and execute the boolean clip op ...
		if err := c.AddPaths(subj, Subject, false); err != nil {
			t.Fatal(err)
		}
		if err := c.AddPaths(clip, Clip, false); err != nil {
			t.Fatal(err)
		}

		for clipType, ct := range clipTypes {
			var solution Paths
			if err := c.Execute(ct, fr, &solution, nil); err != nil {
				t.Fatal(err)
			}
			areas[clipType] = AreaCombined(solution)
		}

		if different(areas["union"], areas["intersection"]+areas["xor"]) {
			t.Logf("%v\t%10.1f%10.1f\tFail", i, areas["union"],
				areas["intersection"]+areas["xor"])
			t.FailNow()
		}
	}
}

func different(a, b float64) bool {
	if math.Abs(a-b)/b > 0.01 {
		return true
	} else {
		return false
	}
}

func square(left, top, size CInt) Path {
	return Path{
		{left, top},
		{left + size, top},
		{left + size, top + size},
		{left, top + size},
	}
}

func executeOn(t *testing.T, ct ClipType, fr FillRule, subj, clip Paths) Paths {
	t.Helper()
	c := NewClipper()
	if err := c.AddPaths(subj, Subject, false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPaths(clip, Clip, false); err != nil {
		t.Fatal(err)
	}
	var solution Paths
	if err := c.Execute(ct, fr, &solution, nil); err != nil {
		t.Fatal(err)
	}
	return solution
}

func TestTwoSquares(t *testing.T) {
	subj := Paths{square(0, 0, 10)}
	clip := Paths{square(5, 5, 10)}

	union := executeOn(t, Union, NonZero, subj, clip)
	test.T(t, len(union), 1)
	test.Float(t, math.Abs(AreaCombined(union)), 175)

	inter := executeOn(t, Intersection, NonZero, subj, clip)
	test.T(t, len(inter), 1)
	test.Float(t, math.Abs(AreaCombined(inter)), 25)

	diff := executeOn(t, Difference, NonZero, subj, clip)
	test.T(t, len(diff), 1)
	test.Float(t, math.Abs(AreaCombined(diff)), 75)

	xor := executeOn(t, Xor, NonZero, subj, clip)
	test.T(t, len(xor), 2)
	test.Float(t, math.Abs(AreaCombined(xor)), 150)
}

func TestDisjointSquares(t *testing.T) {
	subj := Paths{square(0, 0, 10)}
	clip := Paths{square(20, 20, 10)}

	inter := executeOn(t, Intersection, NonZero, subj, clip)
	test.T(t, len(inter), 0)

	union := executeOn(t, Union, NonZero, subj, clip)
	test.T(t, len(union), 2)
	test.Float(t, math.Abs(AreaCombined(union)), 200)
}

func TestSelfXor(t *testing.T) {
	a := Paths{square(0, 0, 10)}
	for _, fr := range []FillRule{EvenOdd, NonZero, Positive, Negative} {
		xor := executeOn(t, Xor, fr, a, a)
		test.T(t, len(xor), 0)
	}
}

func TestSelfUnion(t *testing.T) {
	a := Paths{square(0, 0, 10)}
	union := executeOn(t, Union, NonZero, a, a)
	test.T(t, len(union), 1)
	test.Float(t, math.Abs(AreaCombined(union)), 100)
	// Emitted closed polygons always carry at least three vertices.
	for _, p := range union {
		test.That(t, len(p) >= 3)
	}
}

func TestFillRules(t *testing.T) {
	// Two nested same-winding squares. NonZero fills the outer square
	// solid; EvenOdd leaves the inner square as a hole.
	subj := Paths{square(0, 0, 20), square(5, 5, 10)}

	nz := executeOn(t, Union, NonZero, subj, nil)
	test.Float(t, math.Abs(AreaCombined(nz)), 400)

	eo := executeOn(t, Union, EvenOdd, subj, nil)
	test.T(t, len(eo), 2)
	test.Float(t, math.Abs(AreaCombined(eo)), 300)
}

func TestOpenPathClip(t *testing.T) {
	c := NewClipper()
	if err := c.AddPath(Path{{-5, 5}, {25, 5}}, Subject, true); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPath(Path{{0, 0}, {20, 0}, {20, 10}, {0, 10}}, Clip, false); err != nil {
		t.Fatal(err)
	}
	var closed, open Paths
	if err := c.Execute(Intersection, NonZero, &closed, &open); err != nil {
		t.Fatal(err)
	}
	test.T(t, len(closed), 0)
	test.T(t, len(open), 1)
	test.T(t, len(open[0]), 2)

	lo, hi := open[0][0], open[0][1]
	if lo.X > hi.X {
		lo, hi = hi, lo
	}
	test.T(t, lo, Point{0, 5})
	test.T(t, hi, Point{20, 5})
}

func TestOpenClipPathRejected(t *testing.T) {
	c := NewClipper()
	err := c.AddPath(Path{{0, 0}, {10, 0}}, Clip, true)
	test.That(t, errors.Is(err, ErrOpenClipPath))
}

func TestCoordinateRange(t *testing.T) {
	c := NewClipper()
	err := c.AddPath(Path{{0, 0}, {rangeLimit + 1, 0}, {0, 10}}, Subject, false)
	test.That(t, errors.Is(err, ErrOutOfRange))
}

func TestDegenerateInputs(t *testing.T) {
	c := NewClipper()
	// Paths that collapse to nothing are silently ignored.
	if err := c.AddPath(Path{}, Subject, false); err != nil {
		t.Fatal(err)
	}
	if err := c.AddPath(Path{{3, 3}, {3, 3}, {3, 3}}, Subject, false); err != nil {
		t.Fatal(err)
	}
	var solution Paths
	if err := c.Execute(Union, EvenOdd, &solution, nil); err != nil {
		t.Fatal(err)
	}
	test.T(t, len(solution), 0)
}

func TestGetBounds(t *testing.T) {
	c := NewClipper()
	if err := c.AddPath(Path{{-10, 2}, {40, 2}, {40, 30}, {-10, 30}}, Subject, false); err != nil {
		t.Fatal(err)
	}
	b := c.GetBounds()
	test.T(t, b, Rect{Left: -10, Top: 2, Right: 40, Bottom: 30})
}

func TestClearReuse(t *testing.T) {
	c := NewClipper()
	if err := c.AddPath(square(0, 0, 10), Subject, false); err != nil {
		t.Fatal(err)
	}
	c.Clear()
	if err := c.AddPath(square(0, 0, 4), Subject, false); err != nil {
		t.Fatal(err)
	}
	var solution Paths
	if err := c.Execute(Union, EvenOdd, &solution, nil); err != nil {
		t.Fatal(err)
	}
	test.T(t, len(solution), 1)
	test.Float(t, math.Abs(AreaCombined(solution)), 16)
}
