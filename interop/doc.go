// Package interop converts geo points and segments to and from the types of
// other Go geometry libraries.
//
// Conversions into geo never lose precision; all libraries covered here
// store float64 coordinates. Conversions out of variable-length types
// (go-geom flat coordinates, ctessum/geom line strings) return an error
// when the input does not describe a 2D point or a two-point segment.
package interop

import "errors"

// ErrShape is returned when a foreign geometry cannot be represented as a
// geo value, e.g. a line string with more than two vertices.
var ErrShape = errors.New("interop: geometry shape not representable")
