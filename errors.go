package permuteseq

import (
	"errors"

	"github.com/vdparikh/permuteseq/subtle"
)

// Errors returned by this package. Test for them with errors.Is.
var (
	// ErrInvalidRange reports an interval with min > max or too few values.
	ErrInvalidRange = subtle.ErrInvalidRange
	// ErrOutOfBounds reports a value, or a sequence value, outside [min, max].
	ErrOutOfBounds = subtle.ErrOutOfBounds
	// ErrInfiniteCycle reports a cycle walk that did not converge.
	ErrInfiniteCycle = subtle.ErrInfiniteCycle
	// ErrSequenceExhausted is returned by MemorySequence.NextVal once a
	// non-cycling sequence has passed its bound.
	ErrSequenceExhausted = errors.New("sequence exhausted")
)
