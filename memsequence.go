package permuteseq

import (
	"context"
	"fmt"
	"math"
	"sync"
)

// SequenceOptions describe a MemorySequence the way a database sequence
// is declared.
type SequenceOptions struct {
	Min       int64
	Max       int64
	Start     int64
	Increment int64
	// Cycle restarts the sequence at the opposite bound once it runs past
	// the last value instead of failing with ErrSequenceExhausted.
	Cycle bool
}

// DefaultSequenceOptions is an ascending sequence 1, 2, 3, ... up to
// math.MaxInt64 without cycling.
func DefaultSequenceOptions() SequenceOptions {
	return SequenceOptions{
		Min:       1,
		Max:       math.MaxInt64,
		Start:     1,
		Increment: 1,
	}
}

// MemorySequence is an in-process Sequence. It is safe for concurrent use.
type MemorySequence struct {
	opts SequenceOptions

	mu      sync.Mutex
	last    int64
	started bool
}

// NewMemorySequence validates opts and returns a sequence whose first
// NextVal is opts.Start.
func NewMemorySequence(opts SequenceOptions) (*MemorySequence, error) {
	if opts.Increment == 0 {
		return nil, fmt.Errorf("increment must not be zero")
	}
	if opts.Min > opts.Max {
		return nil, fmt.Errorf("minimum %d is greater than maximum %d: %w", opts.Min, opts.Max, ErrInvalidRange)
	}
	if opts.Start < opts.Min || opts.Start > opts.Max {
		return nil, fmt.Errorf("start value %d is outside of range [%d,%d]: %w",
			opts.Start, opts.Min, opts.Max, ErrOutOfBounds)
	}
	return &MemorySequence{opts: opts}, nil
}

// Bounds implements Sequence.
func (s *MemorySequence) Bounds(context.Context) (int64, int64, error) {
	return s.opts.Min, s.opts.Max, nil
}

// NextVal implements Sequence.
func (s *MemorySequence) NextVal(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.started = true
		s.last = s.opts.Start
		return s.last, nil
	}

	next, ok := s.advance(s.last)
	if !ok {
		if !s.opts.Cycle {
			return 0, fmt.Errorf("reached limit of sequence after %d: %w", s.last, ErrSequenceExhausted)
		}
		if s.opts.Increment > 0 {
			next = s.opts.Min
		} else {
			next = s.opts.Max
		}
	}
	s.last = next
	return next, nil
}

// advance returns cur+Increment, or false when that would leave
// [Min, Max]. The checks avoid computing an overflowing sum.
func (s *MemorySequence) advance(cur int64) (int64, bool) {
	inc, min, max := s.opts.Increment, s.opts.Min, s.opts.Max
	if inc > 0 {
		if (max >= 0 && cur > max-inc) || (max < 0 && cur+inc > max) {
			return 0, false
		}
	} else {
		if (min < 0 && cur < min-inc) || (min >= 0 && cur+inc < min) {
			return 0, false
		}
	}
	return cur + inc, true
}

// Verify that MemorySequence implements Sequence
var _ Sequence = (*MemorySequence)(nil)
