// Package geo provides 2D point and line segment primitives over float64.
//
// # Overview
//
// A [Point] is an (X, Y) pair that doubles as a location and as a vector
// from the origin. A [LineSegment] is an ordered pair of points. Both are
// small immutable values: every operation returns a new value and all
// functions are safe for concurrent use.
//
//	p := geo.Pt(1, 0)
//	q := p.Rotate(math.Pi / 2) // approximately (0, 1)
//	q.IsClose(geo.Pt(0, 1))    // true
//
// # Special values
//
// The plain operations never fail. Degenerate inputs follow IEEE-754:
// normalizing the zero vector yields NaN components and dividing by zero
// yields infinities. [Point.XIntercept] is the one exception to pure
// propagation: a horizontal line always reports +Inf, never -Inf.
// Callers that prefer errors can use [Point.NormalizeChecked] and
// [Point.XInterceptChecked].
//
// # Approximate equality
//
// IsClose follows the NumPy convention |a - b| <= ATol + RTol*|b|.
// The relative term uses the second operand only, so the comparison is not
// commutative: a.IsClose(b) and b.IsClose(a) can differ.
//
// # Interoperability
//
// [Point.Fixed] and [Point.Vec2] convert to golang.org/x/image types.
// Conversions for gonum, golang/geo, go-geom and ctessum/geom live in the
// interop sub-package.
package geo

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
