package permuteseq

import (
	"context"
	"fmt"
)

// Sequence is a source of successive clear values, such as a database
// sequence. Bounds must not change between calls that share a key.
type Sequence interface {
	// Bounds returns the minimum and maximum values of the sequence.
	Bounds(ctx context.Context) (min, max int64, err error)

	// NextVal advances the sequence and returns the new value.
	NextVal(ctx context.Context) (int64, error)
}

// PermuteNextval advances seq and returns the encrypted form of its new
// value. The result is unique for as long as the sequence does not
// repeat values.
func PermuteNextval(ctx context.Context, seq Sequence, key uint64) (int64, error) {
	min, max, err := seq.Bounds(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence bounds: %w", err)
	}
	if err := CheckRange(min, max); err != nil {
		return 0, fmt.Errorf("sequence too short to encrypt: %w", err)
	}

	next, err := seq.NextVal(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence: %w", err)
	}
	if next < min || next > max {
		return 0, fmt.Errorf("nextval %d of the sequence is outside the interval [%d,%d]: %w",
			next, min, max, ErrOutOfBounds)
	}

	c, err := NewRangeCipher(min, max, key)
	if err != nil {
		return 0, err
	}
	return c.Encrypt(next)
}

// ReversePermute returns the sequence value that PermuteNextval turned
// into value. It requires one more value in the sequence range than
// PermuteNextval does.
func ReversePermute(ctx context.Context, seq Sequence, value int64, key uint64) (int64, error) {
	min, max, err := seq.Bounds(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read sequence bounds: %w", err)
	}
	if err := checkReverseRange(min, max); err != nil {
		return 0, fmt.Errorf("sequence too short to decrypt: %w", err)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("value %d out of sequence bounds [%d,%d]: %w", value, min, max, ErrOutOfBounds)
	}

	c, err := NewRangeCipher(min, max, key)
	if err != nil {
		return 0, err
	}
	return c.Decrypt(value)
}
