package clipper

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestArea(t *testing.T) {
	// Y grows downward, so this winding has negative area.
	ccw := Path{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	test.Float(t, Area(ccw), -100)
	test.That(t, !Orientation(ccw))

	cw := Path{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	test.Float(t, Area(cw), 100)
	test.That(t, Orientation(cw))

	test.Float(t, Area(Path{{0, 0}, {10, 0}}), 0)
}

func TestPointInPolygon(t *testing.T) {
	sq := square(0, 0, 10)
	test.T(t, PointInPolygon(Point{5, 5}, sq), 1)
	test.T(t, PointInPolygon(Point{15, 5}, sq), 0)
	test.T(t, PointInPolygon(Point{0, 5}, sq), -1)
	test.T(t, PointInPolygon(Point{10, 10}, sq), -1)
	test.T(t, PointInPolygon(Point{5, 5}, Path{{0, 0}, {10, 10}}), 0)
}

func TestRound(t *testing.T) {
	test.T(t, round(2.4), CInt(2))
	test.T(t, round(2.5), CInt(3))
	test.T(t, round(-2.5), CInt(-3))
	test.T(t, round(-2.4), CInt(-2))
}

func TestStringers(t *testing.T) {
	p := Path{{1, 2}, {3, 4}}
	test.T(t, p.String(), "[{1, 2}, {3, 4}]")
	test.T(t, Paths{p}.String(), "[{1, 2}, {3, 4}]")
}
