package subtle

import "math/bits"

// Hash32 maps a 32-bit word to a well mixed 32-bit word. It must be
// deterministic: the same input always yields the same output.
type Hash32 func(uint32) uint32

// jenkinsInit is the lookup3 initial state for a single 4-byte word.
const jenkinsInit = 0x9e3779b9 + 4 + 3923095

// JenkinsHash32 is Bob Jenkins' lookup3 hash of a single 32-bit word,
// the same function PostgreSQL exposes as hash_uint32.
func JenkinsHash32(k uint32) uint32 {
	a, b, c := uint32(jenkinsInit), uint32(jenkinsInit), uint32(jenkinsInit)
	a += k

	c ^= b
	c -= bits.RotateLeft32(b, 14)
	a ^= c
	a -= bits.RotateLeft32(c, 11)
	b ^= a
	b -= bits.RotateLeft32(a, 25)
	c ^= b
	c -= bits.RotateLeft32(b, 16)
	a ^= c
	a -= bits.RotateLeft32(c, 4)
	b ^= a
	b -= bits.RotateLeft32(a, 14)
	c ^= b
	c -= bits.RotateLeft32(b, 24)

	return c
}

// ScrambleKey hashes the low and high halves of key independently and
// recombines them. Weak keys, with only a few low bits set, end up
// spread over all 64 bits.
func ScrambleKey(key uint64, hash Hash32) uint64 {
	lo := hash(uint32(key))
	hi := hash(uint32(key >> 32))
	return uint64(lo) | uint64(hi)<<32
}
