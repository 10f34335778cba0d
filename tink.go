package permuteseq

// Permutation is a Tink-style primitive for a keyed permutation of a
// fixed interval. Like tink.DeterministicAEAD it is deterministic: the
// same value and key always yield the same result. tinkperm.New builds
// one from a keyset handle.
type Permutation interface {
	// Min returns the lower bound of the interval.
	Min() int64

	// Max returns the upper bound of the interval.
	Max() int64

	// Encrypt maps value, which must lie in [Min(), Max()], to another
	// value of the interval.
	Encrypt(value int64) (int64, error)

	// Decrypt is the inverse of Encrypt.
	Decrypt(encrypted int64) (int64, error)
}
