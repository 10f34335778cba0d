// Package tinkperm provides Tink integration for range permutations.
// This file contains the factory function for creating permutations from
// Tink keyset handles.
package tinkperm

import (
	"fmt"

	"github.com/google/tink/go/keyset"

	"github.com/vdparikh/permuteseq"
)

// New creates the permutation of [min, max] selected by the primary key
// of handle. The KeyManager is registered on first use.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkperm.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	perm, err := tinkperm.New(handle, 1, 1<<40)
//	if err != nil {
//	    return err
//	}
//	id, err := perm.Encrypt(42)
func New(handle *keyset.Handle, min, max int64) (permuteseq.Permutation, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}
	if err := Register(); err != nil {
		return nil, fmt.Errorf("failed to register key manager: %w", err)
	}

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}

	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}

	rangeKey, ok := primary.Primitive.(*RangeKey)
	if !ok {
		return nil, fmt.Errorf("primary key %d is not a range permutation key", primary.KeyID)
	}

	perm, err := rangeKey.Bind(min, max)
	if err != nil {
		return nil, fmt.Errorf("failed to create range cipher: %w", err)
	}
	return perm, nil
}
