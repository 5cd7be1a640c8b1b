package interop

import (
	"fmt"

	"github.com/twpayne/go-geom"

	"github.com/gogpu/geo"
)

// ToGeomPoint converts p to a go-geom XY point.
func ToGeomPoint(p geo.Point) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.X, p.Y})
}

// FromGeomPoint converts a go-geom point to a geo.Point. Coordinates beyond
// X and Y (Z, M) are dropped. An empty point yields ErrShape.
func FromGeomPoint(p *geom.Point) (geo.Point, error) {
	if p == nil || p.Empty() {
		return geo.Point{}, fmt.Errorf("%w: empty point", ErrShape)
	}
	return FromCoord(p.Coords()), nil
}

// FromCoord converts the X and Y of a go-geom coordinate to a geo.Point.
func FromCoord(c geom.Coord) geo.Point {
	return geo.Pt(c.X(), c.Y())
}

// ToGeomLineString converts s to a two-vertex go-geom line string.
func ToGeomLineString(s geo.LineSegment) *geom.LineString {
	p1, p2 := s.P1(), s.P2()
	return geom.NewLineStringFlat(geom.XY, []float64{p1.X, p1.Y, p2.X, p2.Y})
}

// FromGeomLineString converts a two-vertex go-geom line string to a
// LineSegment. Any other vertex count yields ErrShape.
func FromGeomLineString(ls *geom.LineString) (geo.LineSegment, error) {
	if ls == nil {
		return geo.LineSegment{}, fmt.Errorf("%w: nil line string", ErrShape)
	}
	if n := ls.NumCoords(); n != 2 {
		return geo.LineSegment{}, fmt.Errorf("%w: line string has %d vertices, want 2", ErrShape, n)
	}
	return geo.Seg(FromCoord(ls.Coord(0)), FromCoord(ls.Coord(1))), nil
}
