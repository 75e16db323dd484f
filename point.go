package clipper

import (
	"fmt"
	"strings"
)

// Point is a position on the integer grid. The Y axis is inverted:
// y values increase downward, so "above" means a smaller y.
type Point struct {
	X, Y CInt
}

func (p Point) String() string {
	return fmt.Sprintf("{%v, %v}", p.X, p.Y)
}

// Path is an open or closed sequence of points. Closed paths need not
// repeat their first point.
type Path []Point

func (p Path) String() string {
	pts := make([]string, len(p))
	for i, pt := range p {
		pts[i] = pt.String()
	}
	return "[" + strings.Join(pts, ", ") + "]"
}

// Paths is a collection of paths.
type Paths []Path

func (p Paths) String() string {
	paths := make([]string, len(p))
	for i, path := range p {
		paths[i] = path.String()
	}
	return strings.Join(paths, "\n")
}

// Rect is an axis-aligned bounding rectangle. Top is the smaller y.
type Rect struct {
	Left, Top, Right, Bottom CInt
}

// round converts to the nearest integer, halves away from zero.
func round(v float64) CInt {
	if v < 0 {
		return CInt(v - 0.5)
	}
	return CInt(v + 0.5)
}

// Area returns the signed area of a closed path. With the inverted Y
// axis, paths wound clockwise on a conventional display have positive
// area.
func Area(path Path) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	var a float64
	j := n - 1
	for i := 0; i < n; i++ {
		a += float64(path[j].X+path[i].X) * float64(path[j].Y-path[i].Y)
		j = i
	}
	return a / 2
}

// Orientation reports whether a closed path has non-negative signed
// area; a zero-area path reports true.
func Orientation(path Path) bool {
	return Area(path) >= 0
}

// PointInPolygon classifies pt against a closed path: 1 when inside,
// 0 when outside and -1 when on the boundary. It uses the even-odd
// crossing rule.
func PointInPolygon(pt Point, path Path) int {
	n := len(path)
	if n < 3 {
		return 0
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := path[i], path[j]
		if a.Y == pt.Y && (a.X == pt.X || (b.Y == pt.Y &&
			(a.X > pt.X) == (b.X < pt.X))) {
			return -1
		}
		if (a.Y < pt.Y) != (b.Y < pt.Y) {
			if a.X >= pt.X {
				if b.X > pt.X {
					inside = !inside
				} else {
					d := float64(a.X-pt.X)*float64(b.Y-pt.Y) -
						float64(b.X-pt.X)*float64(a.Y-pt.Y)
					if d == 0 {
						return -1
					}
					if (d > 0) == (b.Y > a.Y) {
						inside = !inside
					}
				}
			} else if b.X > pt.X {
				d := float64(a.X-pt.X)*float64(b.Y-pt.Y) -
					float64(b.X-pt.X)*float64(a.Y-pt.Y)
				if d == 0 {
					return -1
				}
				if (d > 0) == (b.Y > a.Y) {
					inside = !inside
				}
			}
		}
		j = i
	}
	if inside {
		return 1
	}
	return 0
}
