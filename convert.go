package geo

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Bounds of a coordinate representable as fixed.Int26_6.
const (
	MaxFixed = float64(math.MaxInt32) / 64
	MinFixed = float64(math.MinInt32) / 64
)

// Fixed converts the point to 26.6 fixed-point coordinates, as used by
// golang.org/x/image/font. Coordinates are rounded to the nearest 1/64 and
// clamped to [MinFixed, MaxFixed]; NaN becomes 0. Use FixedChecked to detect
// coordinates that do not fit.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y)}
}

// FixedChecked is like Fixed but returns ErrFixedRange when a coordinate is
// NaN or rounds outside the fixed.Int26_6 range.
func (p Point) FixedChecked() (fixed.Point26_6, error) {
	if !fitsFixed(p.X) || !fitsFixed(p.Y) {
		return fixed.Point26_6{}, fmt.Errorf("%w: %v", ErrFixedRange, p)
	}
	return p.Fixed(), nil
}

// FromFixed converts a 26.6 fixed-point coordinate pair to a Point.
func FromFixed(fp fixed.Point26_6) Point {
	return Point{X: fixedToFloat(fp.X), Y: fixedToFloat(fp.Y)}
}

// Vec2 converts the point to an f64.Vec2.
func (p Point) Vec2() f64.Vec2 {
	return f64.Vec2{p.X, p.Y}
}

// FromVec2 converts an f64.Vec2 to a Point.
func FromVec2(v f64.Vec2) Point {
	return Point{X: v[0], Y: v[1]}
}

func fitsFixed(v float64) bool {
	r := math.Round(v * 64)
	return r >= math.MinInt32 && r <= math.MaxInt32
}

func floatToFixed(v float64) fixed.Int26_6 {
	r := math.Round(v * 64)
	switch {
	case math.IsNaN(r):
		return 0
	case r > math.MaxInt32:
		return math.MaxInt32
	case r < math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(r)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
