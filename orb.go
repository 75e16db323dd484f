package clipper

import "github.com/paulmach/orb"

// Conversions to and from github.com/paulmach/orb geometries. Orb rings
// repeat their first point at the end; the clipping engine leaves closed
// paths unclosed, so the duplicate is dropped on the way in and restored
// on the way out.

// FromOrbRing converts a ring to a closed path, scaling coordinates by
// scale.
func FromOrbRing(r orb.Ring, scale float64) Path {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	path := make(Path, n)
	for i := 0; i < n; i++ {
		path[i] = Point{round(r[i][0] * scale), round(r[i][1] * scale)}
	}
	return path
}

// FromOrbPolygon converts a polygon to closed paths, one per ring.
func FromOrbPolygon(p orb.Polygon, scale float64) Paths {
	out := make(Paths, len(p))
	for i, r := range p {
		out[i] = FromOrbRing(r, scale)
	}
	return out
}

// FromOrbMultiPolygon converts a multi-polygon to closed paths.
func FromOrbMultiPolygon(mp orb.MultiPolygon, scale float64) Paths {
	var out Paths
	for _, p := range mp {
		out = append(out, FromOrbPolygon(p, scale)...)
	}
	return out
}

// FromOrbLineString converts a line string to an open path.
func FromOrbLineString(ls orb.LineString, scale float64) Path {
	path := make(Path, len(ls))
	for i, pt := range ls {
		path[i] = Point{round(pt[0] * scale), round(pt[1] * scale)}
	}
	return path
}

// ToOrbRing converts a closed path back to a ring, dividing coordinates
// by scale and repeating the first point at the end.
func ToOrbRing(path Path, scale float64) orb.Ring {
	r := make(orb.Ring, 0, len(path)+1)
	for _, pt := range path {
		r = append(r, orb.Point{float64(pt.X) / scale, float64(pt.Y) / scale})
	}
	if len(r) > 0 {
		r = append(r, r[0])
	}
	return r
}

// ToOrbPolygon converts closed paths to a polygon, one ring per path.
func ToOrbPolygon(paths Paths, scale float64) orb.Polygon {
	out := make(orb.Polygon, len(paths))
	for i, path := range paths {
		out[i] = ToOrbRing(path, scale)
	}
	return out
}

// ToOrbLineString converts an open path back to a line string.
func ToOrbLineString(path Path, scale float64) orb.LineString {
	ls := make(orb.LineString, len(path))
	for i, pt := range path {
		ls[i] = orb.Point{float64(pt.X) / scale, float64(pt.Y) / scale}
	}
	return ls
}

// ToOrbMultiPolygon converts a clipping solution tree to a
// multi-polygon. Each outermost polygon becomes one orb polygon with
// its holes as interior rings.
func ToOrbMultiPolygon(tree *PolyTree, scale float64) orb.MultiPolygon {
	var out orb.MultiPolygon
	var walk func(pp *PolyPath)
	walk = func(pp *PolyPath) {
		poly := orb.Polygon{ToOrbRing(pp.Path(), scale)}
		for i := 0; i < pp.ChildCount(); i++ {
			hole, _ := pp.Child(i)
			poly = append(poly, ToOrbRing(hole.Path(), scale))
			for j := 0; j < hole.ChildCount(); j++ {
				nested, _ := hole.Child(j)
				walk(nested)
			}
		}
		out = append(out, poly)
	}
	for i := 0; i < tree.ChildCount(); i++ {
		top, _ := tree.Child(i)
		walk(top)
	}
	return out
}
