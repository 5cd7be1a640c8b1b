package geo

import (
	"fmt"
	"log/slog"
	"math"
)

// Point represents a 2D point or, equivalently, a vector from the origin.
//
// Points are values: every method returns a new Point and never modifies
// the receiver. Comparison with == is exact; use IsClose for approximate
// equality.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Angle returns the angle in radians from the positive x-axis to the point,
// i.e. the polar angle, in the range [-Pi, Pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
// Dividing by zero yields infinite or NaN components.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Rotate returns the point rotated by angle radians around the origin.
// Positive angles rotate counter-clockwise.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// IsClose reports whether p is approximately equal to q using the default
// tolerance. Each axis must satisfy |p - q| <= ATol + RTol*|q|.
//
// The relative term scales with q only, so p.IsClose(q) and q.IsClose(p)
// can disagree when the coordinates differ in magnitude.
func (p Point) IsClose(q Point) bool {
	return IsClose(p.X, q.X) && IsClose(p.Y, q.Y)
}

// XIntercept returns the x coordinate where the infinite line through p and
// q crosses the x-axis.
//
// A horizontal line has no intercept; the result is then +Inf regardless of
// the sign the division produced. Identical points give NaN.
func (p Point) XIntercept(q Point) float64 {
	i := p.X - p.Y*(q.X-p.X)/(q.Y-p.Y)
	if math.IsInf(i, 0) {
		// Both infinities collapse to one "no intercept" value.
		Logger().Debug("geo: horizontal line has no x-intercept",
			slog.Any("p", p), slog.Any("q", q))
		return math.Inf(1)
	}
	return i
}

// Magnitude returns the Euclidean length of the vector.
func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// MagnitudeSquared returns the squared length of the vector.
func (p Point) MagnitudeSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector is not guarded against and yields NaN components;
// see NormalizeChecked.
func (p Point) Normalize() Point {
	m := p.Magnitude()
	if m == 0 {
		Logger().Debug("geo: normalizing zero vector", slog.Any("p", p))
	}
	return p.Div(m)
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the negation of the vector.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsZero returns true if the point is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsNaN returns true if either coordinate is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// IsInf returns true if either coordinate is infinite.
func (p Point) IsInf() bool {
	return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0)
}

// String returns the point formatted as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// NormalizeChecked is like Normalize but returns ErrZeroMagnitude instead of
// NaN components when p is the zero vector.
func (p Point) NormalizeChecked() (Point, error) {
	m := p.Magnitude()
	if m == 0 {
		return Point{}, ErrZeroMagnitude
	}
	return p.Div(m), nil
}

// XInterceptChecked is like XIntercept but reports degenerate lines as
// errors: ErrHorizontalLine when the line never crosses the x-axis and
// ErrDegenerateLine when p and q do not define a line.
func (p Point) XInterceptChecked(q Point) (float64, error) {
	i := p.X - p.Y*(q.X-p.X)/(q.Y-p.Y)
	switch {
	case math.IsNaN(i):
		return 0, fmt.Errorf("%w: %v, %v", ErrDegenerateLine, p, q)
	case math.IsInf(i, 0):
		return 0, fmt.Errorf("%w: %v, %v", ErrHorizontalLine, p, q)
	}
	return i, nil
}
