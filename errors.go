package geo

import "errors"

// Errors returned by the checked variants of Point operations.
// The unchecked operations never fail.
var (
	// ErrZeroMagnitude is returned when normalizing the zero vector.
	ErrZeroMagnitude = errors.New("geo: zero magnitude vector has no direction")

	// ErrHorizontalLine is returned when a line parallel to the x-axis
	// is asked for its x-intercept.
	ErrHorizontalLine = errors.New("geo: horizontal line has no x-intercept")

	// ErrDegenerateLine is returned when two points do not define a
	// unique x-intercept, e.g. identical points or a line lying on the x-axis.
	ErrDegenerateLine = errors.New("geo: points do not define a unique x-intercept")

	// ErrFixedRange is returned when a coordinate is NaN or does not fit
	// in 26.6 fixed point.
	ErrFixedRange = errors.New("geo: coordinate out of 26.6 fixed-point range")
)
