package interop

import (
	"github.com/golang/geo/r2"

	"github.com/gogpu/geo"
)

// ToS2 converts p to a golang/geo r2.Point.
func ToS2(p geo.Point) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// FromS2 converts a golang/geo r2.Point to a geo.Point.
func FromS2(p r2.Point) geo.Point {
	return geo.Pt(p.X, p.Y)
}

// BoundS2 returns the smallest golang/geo rectangle containing s.
func BoundS2(s geo.LineSegment) r2.Rect {
	return r2.RectFromPoints(ToS2(s.P1()), ToS2(s.P2()))
}
