package subtle

import "errors"

var (
	// ErrInvalidRange is returned for an interval that is empty or too
	// small to permute.
	ErrInvalidRange = errors.New("invalid range")
	// ErrOutOfBounds is returned for a value outside the interval.
	ErrOutOfBounds = errors.New("value out of bounds")
	// ErrInfiniteCycle is returned when the cycle walk hits its limit.
	ErrInfiniteCycle = errors.New("infinite cycle walking prevented")
)
