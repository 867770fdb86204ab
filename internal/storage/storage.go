// Package storage implements the persistence adapter: a durable key/value
// byte store with Load, Save, and Remove. It is the sole I/O boundary of the
// record store. There are no transactions and no atomicity across keys; each
// collection lives under its own key and a crash between two saves can leave
// keys inconsistent. That is accepted, not engineered around.
// See docs/ARCHITECTURE.md § System Components (Persistence Adapter).
package storage

import (
	"fmt"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Adapter is a durable key/value byte store.
//
// Load returns types.ErrKeyAbsent (via errors.Is) when the key has never
// been written; any other failure is a *types.PersistenceError. Save
// overwrites the entire value for the key: idempotent, last-writer-wins, no
// partial writes. Remove deletes the key; removing an absent key succeeds.
type Adapter interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Remove(key string) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Open constructs the adapter selected by config. The config must validate.
func Open(config types.Config) (Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Backend {
	case types.BackendFile:
		return NewFileAdapter(config.DataDir)
	case types.BackendSQLite:
		return NewSQLiteAdapter(config.DataDir)
	case types.BackendMemory:
		return NewMemoryAdapter(), nil
	default:
		return nil, fmt.Errorf("open storage: %w", types.ErrBackendUnknown)
	}
}

// loadErr wraps a load failure in the taxonomy type.
func loadErr(key string, err error) error {
	return &types.PersistenceError{Op: "load", Key: key, Err: err}
}

// saveErr wraps a save failure in the taxonomy type.
func saveErr(key string, err error) error {
	return &types.PersistenceError{Op: "save", Key: key, Err: err}
}

// removeErr wraps a remove failure in the taxonomy type.
func removeErr(key string, err error) error {
	return &types.PersistenceError{Op: "remove", Key: key, Err: err}
}
