// Package subtle provides the low-level range permutation primitive.
// It works with raw 64-bit keys and performs no validation beyond what the
// algorithm itself needs; most users want the parent package instead.
package subtle

import "fmt"

const (
	// Rounds is the number of Feistel rounds. It must be odd and at least 3.
	Rounds = 9

	// DefaultWalkMax bounds the cycle walk. Hitting it means the chain of
	// out-of-range results loops, which only a broken hash can cause.
	DefaultWalkMax = 1000000
)

// Direction selects encryption or decryption.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Cipher is a cycle-walking cipher built on a balanced Feistel network
// whose block size follows the interval being permuted.
//
// Thread safety: a Cipher holds no mutable state and may be shared by
// any number of goroutines.
type Cipher struct {
	// Hash is the round function and key scrambler.
	Hash Hash32
	// WalkMax bounds the cycle walk: a value whose image needs WalkMax
	// or more extra Feistel passes fails with ErrInfiniteCycle.
	WalkMax int
}

// DefaultCipher returns a Cipher using JenkinsHash32 and DefaultWalkMax.
func DefaultCipher() Cipher {
	return Cipher{Hash: JenkinsHash32, WalkMax: DefaultWalkMax}
}

// Permute maps value, which must lie in iv, to its image (or preimage,
// when dir is Decrypt) under the permutation selected by key. It also
// returns how many extra passes the cycle walk needed.
func (c Cipher) Permute(iv Interval, value int64, key uint64, dir Direction) (int64, int, error) {
	hash := c.Hash
	if hash == nil {
		hash = JenkinsHash32
	}

	last := iv.Last()
	hsz := HalfSize(last)
	mask := uint64(1)<<hsz - 1

	sk := ScrambleKey(key, hash)

	off := iv.offset(value)
	l := uint32(off >> hsz)
	r := uint32(off & mask)

	var result uint64
	for walks := 0; ; walks++ {
		l, r = feistel(l, r, sk, hsz, uint32(mask), dir, hash)
		result = uint64(r)<<hsz | uint64(l)

		// Swap once more so the next pass starts from the halves of result.
		l, r = r, l

		if walks >= c.WalkMax {
			return 0, walks, fmt.Errorf("value %d (%d loops): %w", value, c.WalkMax, ErrInfiniteCycle)
		}
		if result <= last {
			return iv.at(result), walks, nil
		}
	}
}

// feistel runs the Rounds rounds of the network on (l, r). Decryption
// walks the subkeys in reverse order, which undoes encryption because the
// round count is odd and the output halves are swapped by the caller.
func feistel(l, r uint32, sk uint64, hsz uint, mask uint32, dir Direction, hash Hash32) (uint32, uint32) {
	for i := 0; i < Rounds; i++ {
		j := i
		if dir == Decrypt {
			j = Rounds - 1 - i
		}
		l, r = r, (l^hash(r)^hash(subkey(sk, hsz, j)))&mask
	}
	return l, r
}

// subkey is a sliding window over the scrambled key, moving by hsz bits
// per round and wrapping around the 64-bit key.
func subkey(sk uint64, hsz uint, round int) uint32 {
	k := uint32(sk >> ((hsz * uint(round)) & 0x3f))
	return k + uint32(round)
}
