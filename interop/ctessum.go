package interop

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/gogpu/geo"
)

// ToCtessum converts p to a ctessum/geom Point.
func ToCtessum(p geo.Point) geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// FromCtessum converts a ctessum/geom Point to a geo.Point.
func FromCtessum(p geom.Point) geo.Point {
	return geo.Pt(p.X, p.Y)
}

// ToCtessumLineString converts s to a two-vertex ctessum/geom LineString.
func ToCtessumLineString(s geo.LineSegment) geom.LineString {
	return geom.LineString{ToCtessum(s.P1()), ToCtessum(s.P2())}
}

// FromCtessumLineString converts a two-vertex ctessum/geom LineString to a
// LineSegment. Any other vertex count yields ErrShape.
func FromCtessumLineString(l geom.LineString) (geo.LineSegment, error) {
	if len(l) != 2 {
		return geo.LineSegment{}, fmt.Errorf("%w: line string has %d vertices, want 2", ErrShape, len(l))
	}
	return geo.Seg(FromCtessum(l[0]), FromCtessum(l[1])), nil
}
