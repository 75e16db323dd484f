package clipper

import (
	"fmt"

	"github.com/ctessum/geom"
)

// Conversions between the integer paths used by the clipping engine and
// the float64 geometries of github.com/ctessum/geom. A scale factor
// chooses the grid resolution: coordinates are multiplied by scale and
// rounded on the way in, divided on the way out.

// UnsupportedGeometryError is returned when a geometry type cannot be
// converted to clipping paths.
type UnsupportedGeometryError struct {
	G geom.Geom
}

func (e UnsupportedGeometryError) Error() string {
	return fmt.Sprintf("clipper: unsupported geometry type %T", e.G)
}

// GeomToPaths converts g to paths on the integer grid, scaling
// coordinates by scale. Polygons and multi-polygons convert to closed
// paths, line strings to open paths. The second return value reports
// whether the paths are closed.
func GeomToPaths(g geom.Geom, scale float64) (Paths, bool, error) {
	switch g := g.(type) {
	case geom.Polygon:
		return polygonToPaths(g, scale), true, nil
	case geom.MultiPolygon:
		var out Paths
		for _, p := range g {
			out = append(out, polygonToPaths(p, scale)...)
		}
		return out, true, nil
	case geom.LineString:
		return Paths{pointsToPath(g, scale)}, false, nil
	case geom.MultiLineString:
		out := make(Paths, len(g))
		for i, ls := range g {
			out[i] = pointsToPath(ls, scale)
		}
		return out, false, nil
	default:
		return nil, false, UnsupportedGeometryError{g}
	}
}

func polygonToPaths(p geom.Polygon, scale float64) Paths {
	out := make(Paths, len(p))
	for i, ring := range p {
		out[i] = pointsToPath(ring, scale)
	}
	return out
}

func pointsToPath(pts []geom.Point, scale float64) Path {
	path := make(Path, len(pts))
	for i, pt := range pts {
		path[i] = Point{round(pt.X * scale), round(pt.Y * scale)}
	}
	return path
}

// PathsToPolygon converts closed paths back to a geom.Polygon, dividing
// coordinates by scale. Each path becomes one ring.
func PathsToPolygon(paths Paths, scale float64) geom.Polygon {
	out := make(geom.Polygon, len(paths))
	for i, path := range paths {
		out[i] = pathToPoints(path, scale)
	}
	return out
}

// PathsToMultiLineString converts open paths back to a
// geom.MultiLineString, dividing coordinates by scale.
func PathsToMultiLineString(paths Paths, scale float64) geom.MultiLineString {
	out := make(geom.MultiLineString, len(paths))
	for i, path := range paths {
		out[i] = geom.LineString(pathToPoints(path, scale))
	}
	return out
}

func pathToPoints(path Path, scale float64) []geom.Point {
	pts := make([]geom.Point, len(path))
	for i, pt := range path {
		pts[i] = geom.Point{X: float64(pt.X) / scale, Y: float64(pt.Y) / scale}
	}
	return pts
}

// AddGeom converts g with the given scale and adds the resulting paths
// under polyType.
func (c *Clipper) AddGeom(g geom.Geom, polyType PathType, scale float64) error {
	paths, closed, err := GeomToPaths(g, scale)
	if err != nil {
		return err
	}
	return c.AddPaths(paths, polyType, !closed)
}
