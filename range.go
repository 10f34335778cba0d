package permuteseq

import (
	"fmt"

	"github.com/vdparikh/permuteseq/subtle"
)

const (
	// minEncryptDiff is the smallest max-min accepted for encryption:
	// at least 4 values.
	minEncryptDiff = 3
	// minReverseDiff is the smallest max-min accepted by ReversePermute.
	minReverseDiff = 4
)

// CheckRange reports whether [min, max] is large enough to permute, that
// is, whether it holds at least 4 values. It never overflows, even for the
// full int64 range.
func CheckRange(min, max int64) error {
	if min > max {
		return fmt.Errorf("minimum %d is greater than maximum %d: %w", min, max, ErrInvalidRange)
	}
	if !(subtle.Interval{Min: min, Max: max}).AtLeast(minEncryptDiff) {
		return fmt.Errorf("range [%d,%d] too short to encrypt, the difference between minimum and maximum values should be at least %d: %w",
			min, max, minEncryptDiff, ErrInvalidRange)
	}
	return nil
}

// checkReverseRange is the precondition of ReversePermute, one value
// stricter than CheckRange.
func checkReverseRange(min, max int64) error {
	if min > max {
		return fmt.Errorf("minimum %d is greater than maximum %d: %w", min, max, ErrInvalidRange)
	}
	if !(subtle.Interval{Min: min, Max: max}).AtLeast(minReverseDiff) {
		return fmt.Errorf("range [%d,%d] too short to decrypt, the difference between minimum and maximum values should be at least %d: %w",
			min, max, minReverseDiff, ErrInvalidRange)
	}
	return nil
}

// EncryptElement permutes value inside [min, max] without keeping a
// RangeCipher around.
func EncryptElement(value, min, max int64, key uint64) (int64, error) {
	c, err := NewRangeCipher(min, max, key)
	if err != nil {
		return 0, err
	}
	return c.Encrypt(value)
}

// DecryptElement reverses EncryptElement.
func DecryptElement(value, min, max int64, key uint64) (int64, error) {
	c, err := NewRangeCipher(min, max, key)
	if err != nil {
		return 0, err
	}
	return c.Decrypt(value)
}
