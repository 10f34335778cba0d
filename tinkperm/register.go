package tinkperm

import (
	"sync"

	"github.com/google/tink/go/core/registry"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register adds the KeyManager to Tink's registry. It is safe to call
// more than once and from several goroutines; only the first call
// registers.
func Register() error {
	registerOnce.Do(func() {
		// Someone else may have registered a manager for our type URL.
		if _, err := registry.GetKeyManager(KeyTypeURL); err == nil {
			return
		}
		registerErr = registry.RegisterKeyManager(NewKeyManager())
	})
	return registerErr
}
