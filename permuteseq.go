// Package permuteseq implements a format-preserving pseudo-random
// permutation over an arbitrary interval [min, max] of 64-bit integers.
//
// A key and a value in the interval produce another value in the same
// interval. The mapping is a bijection and is reversed with the same key,
// which makes it suitable for turning a monotonic counter (a database
// sequence, an auto-increment ID) into identifiers that look random yet
// never collide.
//
// The permutation is a 9-round Feistel network whose block size adapts
// to the interval, combined with cycle walking to land back inside the
// interval. It is meant for obfuscation, not for protecting secrets
// against a determined attacker.
//
// Example usage:
//
//	c, err := permuteseq.NewRangeCipher(-10000, 15000, 123456789012345)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id, err := c.Encrypt(42)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// id is some value in [-10000, 15000]
//
//	orig, err := c.Decrypt(id)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// orig == 42
package permuteseq

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vdparikh/permuteseq/subtle"
)

// RangeCipher permutes the values of a fixed interval under a fixed key.
// It is immutable and safe for concurrent use.
type RangeCipher struct {
	iv     subtle.Interval
	key    uint64
	cipher subtle.Cipher
	logger *zap.Logger
}

// NewRangeCipher creates a RangeCipher over [min, max] with DefaultOptions.
// The interval must hold at least 4 values.
func NewRangeCipher(min, max int64, key uint64) (*RangeCipher, error) {
	return NewRangeCipherWithOptions(min, max, key, DefaultOptions())
}

// NewRangeCipherWithOptions is NewRangeCipher with explicit options.
// Zero-valued option fields take their default.
func NewRangeCipherWithOptions(min, max int64, key uint64, opts Options) (*RangeCipher, error) {
	if err := CheckRange(min, max); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	return &RangeCipher{
		iv:  subtle.Interval{Min: min, Max: max},
		key: key,
		cipher: subtle.Cipher{
			Hash:    opts.Hash,
			WalkMax: opts.WalkMax,
		},
		logger: opts.Logger,
	}, nil
}

// Min returns the lower bound of the interval.
func (c *RangeCipher) Min() int64 { return c.iv.Min }

// Max returns the upper bound of the interval.
func (c *RangeCipher) Max() int64 { return c.iv.Max }

// Encrypt returns the image of value under the permutation.
func (c *RangeCipher) Encrypt(value int64) (int64, error) {
	return c.permute(value, subtle.Encrypt)
}

// Decrypt returns the value whose image is encrypted.
func (c *RangeCipher) Decrypt(encrypted int64) (int64, error) {
	return c.permute(encrypted, subtle.Decrypt)
}

func (c *RangeCipher) permute(value int64, dir subtle.Direction) (int64, error) {
	if !c.iv.Contains(value) {
		return 0, fmt.Errorf("invalid value: %d is outside of range [%d,%d]: %w",
			value, c.iv.Min, c.iv.Max, ErrOutOfBounds)
	}

	result, walks, err := c.cipher.Permute(c.iv, value, c.key, dir)
	if err != nil {
		if errors.Is(err, ErrInfiniteCycle) {
			c.logger.Error("cycle walk did not converge",
				zap.Stringer("direction", dir),
				zap.Int64("value", value),
				zap.Int64("min", c.iv.Min),
				zap.Int64("max", c.iv.Max),
				zap.Error(err))
		}
		return 0, fmt.Errorf("failed to %s: %w", dir, err)
	}

	if walks > 0 {
		c.logger.Debug("cycle walk",
			zap.Stringer("direction", dir),
			zap.Int("walks", walks),
			zap.Int64("min", c.iv.Min),
			zap.Int64("max", c.iv.Max))
	}
	return result, nil
}

// Verify that RangeCipher implements Permutation
var _ Permutation = (*RangeCipher)(nil)
