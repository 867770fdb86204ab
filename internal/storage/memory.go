// In-memory adapter for tests and ephemeral stores.
package storage

import (
	"fmt"
	"sync"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

// MemoryAdapter keeps values in a map. Values are copied on both Save and
// Load so callers never alias stored bytes.
type MemoryAdapter struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ Adapter = (*MemoryAdapter)(nil)

// NewMemoryAdapter returns an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{blobs: make(map[string][]byte)}
}

// Load returns a copy of the value stored for key.
func (a *MemoryAdapter) Load(key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	value, ok := a.blobs[key]
	if !ok {
		return nil, fmt.Errorf("load %q: %w", key, types.ErrKeyAbsent)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

// Save stores a copy of value under key.
func (a *MemoryAdapter) Save(key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	a.blobs[key] = cp
	return nil
}

// Remove deletes the key. Removing an absent key succeeds.
func (a *MemoryAdapter) Remove(key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.blobs, key)
	return nil
}

// Close is a no-op.
func (a *MemoryAdapter) Close() error { return nil }
