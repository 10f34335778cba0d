package tinkperm

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/tink/go/keyset"

	"github.com/vdparikh/permuteseq"
)

func newPermutation(t *testing.T, min, max int64) permuteseq.Permutation {
	t.Helper()
	if err := Register(); err != nil {
		t.Fatalf("Failed to register KeyManager: %v", err)
	}
	handle, err := keyset.NewHandle(KeyTemplate())
	if err != nil {
		t.Fatalf("Failed to create keyset handle: %v", err)
	}
	perm, err := New(handle, min, max)
	if err != nil {
		t.Fatalf("Failed to create permutation: %v", err)
	}
	return perm
}

// TestBijectivity verifies that encryption is a bijection for a freshly generated key
func TestBijectivity(t *testing.T) {
	testCases := []struct {
		min, max int64
	}{
		{0, 3},
		{1, 10},
		{-512, 511},
		{1000, 4999},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("[%d,%d]", tc.min, tc.max), func(t *testing.T) {
			perm := newPermutation(t, tc.min, tc.max)
			seen := make(map[int64]int64)

			for v := tc.min; v <= tc.max; v++ {
				enc, err := perm.Encrypt(v)
				if err != nil {
					t.Fatalf("Failed to encrypt %d: %v", v, err)
				}
				if enc < tc.min || enc > tc.max {
					t.Errorf("%d encrypted to %d, outside [%d,%d]", v, enc, tc.min, tc.max)
				}
				if prev, exists := seen[enc]; exists {
					t.Errorf("NOT BIJECTIVE: %d and %d both encrypt to %d", prev, v, enc)
				}
				seen[enc] = v

				dec, err := perm.Decrypt(enc)
				if err != nil {
					t.Fatalf("Failed to decrypt %d: %v", enc, err)
				}
				if dec != v {
					t.Errorf("NOT INVERTIBLE: %d -> %d -> %d", v, enc, dec)
				}
			}

			if int64(len(seen)) != tc.max-tc.min+1 {
				t.Errorf("Expected %d distinct outputs, got %d", tc.max-tc.min+1, len(seen))
			}
		})
	}
}

// TestFactoryMatchesRawKey verifies that a keyset wrapping a raw key selects the
// same permutation as the stateless element functions
func TestFactoryMatchesRawKey(t *testing.T) {
	const key = uint64(123456789012345)
	handle, err := NewKeysetHandleFromUint64(key)
	if err != nil {
		t.Fatalf("NewKeysetHandleFromUint64 failed: %v", err)
	}

	perm, err := New(handle, -10000, 15000)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, v := range []int64{-10000, -1, 0, 1, 14999, 15000} {
		got, err := perm.Encrypt(v)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		want, err := permuteseq.EncryptElement(v, -10000, 15000, key)
		if err != nil {
			t.Fatalf("EncryptElement failed: %v", err)
		}
		if got != want {
			t.Errorf("Encrypt(%d) = %d, EncryptElement = %d", v, got, want)
		}
	}
}

// TestFactoryErrors verifies argument validation in New
func TestFactoryErrors(t *testing.T) {
	if _, err := New(nil, 0, 10); err == nil {
		t.Error("New accepted a nil handle")
	}

	handle, err := NewKeysetHandleFromUint64(1)
	if err != nil {
		t.Fatalf("NewKeysetHandleFromUint64 failed: %v", err)
	}

	if _, err := New(handle, 0, 2); !errors.Is(err, permuteseq.ErrInvalidRange) {
		t.Errorf("Expected ErrInvalidRange for [0,2], got %v", err)
	}

	perm, err := New(handle, math.MinInt64, math.MaxInt64)
	if err != nil {
		t.Fatalf("New rejected the full int64 range: %v", err)
	}
	if perm.Min() != math.MinInt64 || perm.Max() != math.MaxInt64 {
		t.Errorf("Unexpected bounds [%d,%d]", perm.Min(), perm.Max())
	}

	if _, err := perm.Decrypt(0); err != nil {
		t.Errorf("Decrypt failed on full range: %v", err)
	}

	small, err := New(handle, 0, 100)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := small.Encrypt(101); !errors.Is(err, permuteseq.ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

// TestKeySensitivity verifies that different keys produce different outputs
func TestKeySensitivity(t *testing.T) {
	const numKeys = 100
	outputs := make(map[int64]bool)

	for i := 0; i < numKeys; i++ {
		perm := newPermutation(t, 0, 1<<40)
		enc, err := perm.Encrypt(1 << 20)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		outputs[enc] = true
	}

	if len(outputs) < numKeys-5 {
		t.Errorf("Only %d distinct outputs for %d keys", len(outputs), numKeys)
	} else {
		t.Logf("✓ %d keys produced %d distinct outputs", numKeys, len(outputs))
	}
}

// TestRegisterIdempotent verifies Register can be called repeatedly
func TestRegisterIdempotent(t *testing.T) {
	for i := 0; i < 3; i++ {
		if err := Register(); err != nil {
			t.Fatalf("Register call %d failed: %v", i, err)
		}
	}
}
