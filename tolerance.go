package geo

import "math"

// Default tolerances for approximate comparisons.
const (
	// ATol is the absolute tolerance.
	ATol = 1e-8

	// RTol is the relative tolerance, applied to the magnitude of the
	// second operand.
	RTol = 1e-5
)

// IsClose reports whether a is approximately equal to b:
//
//	|a - b| <= ATol + RTol*|b|
//
// The test is not symmetric. Only |b| contributes to the relative term, so
// IsClose(a, b) may differ from IsClose(b, a) near the tolerance boundary.
// NaN is never close to anything.
func IsClose(a, b float64) bool {
	return math.Abs(a-b) <= ATol+RTol*math.Abs(b)
}

// Tolerance holds the bounds of an approximate comparison.
// The zero value compares exactly.
type Tolerance struct {
	Abs float64 // absolute term
	Rel float64 // multiplied by the magnitude of the second operand
}

// DefaultTolerance returns a Tolerance holding ATol and RTol.
// IsClose and the IsClose methods always use the constants; a Tolerance
// only affects the comparisons it is called on.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: ATol, Rel: RTol}
}

// Close reports whether |a - b| <= t.Abs + t.Rel*|b|.
// Like IsClose it is asymmetric in its operands.
func (t Tolerance) Close(a, b float64) bool {
	return math.Abs(a-b) <= t.Abs+t.Rel*math.Abs(b)
}

// PointsClose reports whether both coordinates of p are close to those of q.
func (t Tolerance) PointsClose(p, q Point) bool {
	return t.Close(p.X, q.X) && t.Close(p.Y, q.Y)
}

// SegmentsClose reports whether the endpoints of s are close to those of o,
// first to first and second to second.
func (t Tolerance) SegmentsClose(s, o LineSegment) bool {
	return t.PointsClose(s.p1, o.p1) && t.PointsClose(s.p2, o.p2)
}
