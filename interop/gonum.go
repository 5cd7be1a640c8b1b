package interop

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gogpu/geo"
)

// ToGonum converts p to a gonum r2.Vec.
func ToGonum(p geo.Point) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromGonum converts a gonum r2.Vec to a geo.Point.
func FromGonum(v r2.Vec) geo.Point {
	return geo.Pt(v.X, v.Y)
}

// SegmentToGonum returns the endpoints of s as a gonum r2.Box with Min at the
// first endpoint and Max at the second. The box is not canonicalized so the
// segment direction survives a round trip.
func SegmentToGonum(s geo.LineSegment) r2.Box {
	return r2.Box{Min: ToGonum(s.P1()), Max: ToGonum(s.P2())}
}

// SegmentFromGonum is the inverse of SegmentToGonum.
func SegmentFromGonum(b r2.Box) geo.LineSegment {
	return geo.Seg(FromGonum(b.Min), FromGonum(b.Max))
}
