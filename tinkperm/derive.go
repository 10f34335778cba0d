package tinkperm

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// RawKeySize is the size of key material used verbatim as the 64-bit
	// cipher key.
	RawKeySize = 8

	hkdfInfo = "permuteseq range key"
)

// DeriveKey turns key material into the 64-bit cipher key. 8-byte
// material is read big-endian as-is; 16, 24 and 32-byte material (for
// example keys exported from an HSM) is reduced with HKDF-SHA256.
func DeriveKey(material []byte) (uint64, error) {
	switch len(material) {
	case RawKeySize:
		return binary.BigEndian.Uint64(material), nil
	case 16, 24, 32:
		kdf := hkdf.New(sha256.New, material, nil, []byte(hkdfInfo))
		var out [8]byte
		if _, err := io.ReadFull(kdf, out[:]); err != nil {
			return 0, fmt.Errorf("failed to derive key: %w", err)
		}
		return binary.BigEndian.Uint64(out[:]), nil
	default:
		return 0, fmt.Errorf("invalid key size: %d bytes (must be 8, 16, 24, or 32)", len(material))
	}
}

func validKeySize(n int) bool {
	return n == RawKeySize || n == 16 || n == 24 || n == 32
}
