package geo

import "fmt"

// LineSegment is an ordered pair of points.
//
// The endpoints are fixed at construction; a degenerate segment whose
// endpoints coincide is allowed.
type LineSegment struct {
	p1, p2 Point
}

// Seg creates a LineSegment from p1 to p2.
func Seg(p1, p2 Point) LineSegment {
	return LineSegment{p1: p1, p2: p2}
}

// P1 returns the first endpoint.
func (s LineSegment) P1() Point { return s.p1 }

// P2 returns the second endpoint.
func (s LineSegment) P2() Point { return s.p2 }

// IsClose reports whether the endpoints of s are close to those of o.
// Endpoints are compared in order, so a reversed copy of s is not close to s
// unless its endpoints coincide. The comparison inherits the asymmetry of
// Point.IsClose.
func (s LineSegment) IsClose(o LineSegment) bool {
	return s.p1.IsClose(o.p1) && s.p2.IsClose(o.p2)
}

// XIntercept returns the x-intercept of the infinite line through the
// segment's endpoints. See Point.XIntercept.
func (s LineSegment) XIntercept() float64 {
	return s.p1.XIntercept(s.p2)
}

// Reverse returns the segment with its endpoints swapped.
func (s LineSegment) Reverse() LineSegment {
	return LineSegment{p1: s.p2, p2: s.p1}
}

// Vector returns the displacement from the first endpoint to the second.
func (s LineSegment) Vector() Point {
	return s.p2.Sub(s.p1)
}

// Length returns the distance between the endpoints.
func (s LineSegment) Length() float64 {
	return s.p1.Distance(s.p2)
}

func (s LineSegment) String() string {
	return fmt.Sprintf("[%v -> %v]", s.p1, s.p2)
}
