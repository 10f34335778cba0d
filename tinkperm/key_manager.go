// Package tinkperm provides Tink integration for range permutations.
// This file contains the KeyManager implementation that registers the
// cipher with Tink's registry.
package tinkperm

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"

	"github.com/vdparikh/permuteseq"
)

const (
	// KeyTypeURL is the type URL for range permutation keys in Tink's registry.
	KeyTypeURL = "type.googleapis.com/google.crypto.tink.PermuteSeqKey"
)

// RangeKey is the primitive the KeyManager produces: a cipher key that is
// not yet bound to an interval.
type RangeKey struct {
	key uint64
}

// Bind returns the permutation of [min, max] selected by this key.
func (k *RangeKey) Bind(min, max int64) (permuteseq.Permutation, error) {
	return permuteseq.NewRangeCipher(min, max, k.key)
}

// KeyManager implements registry.KeyManager for range permutation keys.
type KeyManager struct {
	typeURL string
}

// NewKeyManager creates a new range permutation key manager.
func NewKeyManager() *KeyManager {
	return &KeyManager{
		typeURL: KeyTypeURL,
	}
}

// Primitive creates a *RangeKey from the given serialized key material.
func (km *KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	key, err := DeriveKey(serializedKey)
	if err != nil {
		return nil, err
	}
	return &RangeKey{key: key}, nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *KeyManager) TypeURL() string {
	return km.typeURL
}

// NewKey generates a new key according to the given key template. The
// returned message is the KeyData itself; there is no dedicated key proto.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	keyData, err := km.NewKeyData(serializedKeyTemplate)
	if err != nil {
		return nil, err
	}
	return keyData, nil
}

// NewKeyData creates a new KeyData from the given key template. The
// template value holds the key size as a single byte.
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tinkpb.KeyData, error) {
	keySize := RawKeySize
	if len(serializedKeyTemplate) > 0 {
		keySize = int(serializedKeyTemplate[0])
		if !validKeySize(keySize) {
			return nil, fmt.Errorf("invalid key size in template: %d bytes (must be 8, 16, 24, or 32)", keySize)
		}
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}

	return &tinkpb.KeyData{
		TypeUrl:         km.typeURL,
		Value:           key,
		KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
	}, nil
}

// Verify that KeyManager implements registry.KeyManager
var _ registry.KeyManager = (*KeyManager)(nil)

// KeyTemplate creates a key template for 64-bit range permutation keys.
//
//	handle, err := keyset.NewHandle(tinkperm.KeyTemplate())
func KeyTemplate() *tinkpb.KeyTemplate {
	return KeyTemplateRaw64()
}

// KeyTemplateRaw64 generates 8-byte keys used verbatim.
func KeyTemplateRaw64() *tinkpb.KeyTemplate {
	return &tinkpb.KeyTemplate{
		TypeUrl:          KeyTypeURL,
		Value:            []byte{RawKeySize},
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}
}

// KeyTemplateDerived256 generates 32-byte keys reduced to 64 bits with
// HKDF-SHA256. Use it when keysets must share a key size with other
// primitives.
func KeyTemplateDerived256() *tinkpb.KeyTemplate {
	return &tinkpb.KeyTemplate{
		TypeUrl:          KeyTypeURL,
		Value:            []byte{32},
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}
}

// NewKeysetHandleFromKey creates a keyset handle from raw key material,
// for example a key held in an HSM. The key must be 8, 16, 24 or 32 bytes.
//
// Note: This creates an unencrypted keyset. In production, consider encrypting
// the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if !validKeySize(len(key)) {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be 8, 16, 24, or 32)", len(key))
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	// Zero is not a usable key ID.
	keyID := binary.BigEndian.Uint32(keyIDBytes) | 1

	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key: []*tinkpb.Keyset_Key{{
			KeyData: &tinkpb.KeyData{
				TypeUrl:         KeyTypeURL,
				Value:           key,
				KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
			},
			KeyId:            keyID,
			Status:           tinkpb.KeyStatusType_ENABLED,
			OutputPrefixType: tinkpb.OutputPrefixType_RAW,
		}},
	}

	return insecurecleartextkeyset.Read(&keyset.MemReaderWriter{Keyset: ks})
}

// NewKeysetHandleFromUint64 wraps a plain 64-bit cipher key, such as one
// already used with permuteseq.EncryptElement, in a keyset handle.
func NewKeysetHandleFromUint64(key uint64) (*keyset.Handle, error) {
	var buf [RawKeySize]byte
	binary.BigEndian.PutUint64(buf[:], key)
	return NewKeysetHandleFromKey(buf[:])
}
