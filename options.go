package permuteseq

import (
	"go.uber.org/zap"

	"github.com/vdparikh/permuteseq/subtle"
)

// Options tune a RangeCipher. They never change which permutation a key
// selects, except for Hash: ciphertexts produced with one hash can only be
// decrypted with the same hash.
type Options struct {
	// WalkMax bounds the cycle walk. Zero means subtle.DefaultWalkMax.
	WalkMax int
	// Hash is the round function. Nil means subtle.JenkinsHash32.
	Hash subtle.Hash32
	// Logger receives cycle-walk diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the options used by NewRangeCipher.
func DefaultOptions() Options {
	return Options{
		WalkMax: subtle.DefaultWalkMax,
		Hash:    subtle.JenkinsHash32,
		Logger:  zap.NewNop(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.WalkMax <= 0 {
		o.WalkMax = def.WalkMax
	}
	if o.Hash == nil {
		o.Hash = def.Hash
	}
	if o.Logger == nil {
		o.Logger = def.Logger
	}
	return o
}
