// Document is the single-value counterpart of Collection, used for the
// settings blob.
package store

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/driftwood-labs/shoebox/internal/storage"
)

// Document holds one value persisted as a single JSON object under its own
// key. An absent or corrupt value falls back to the provided default; a
// failed write is logged and swallowed, like a collection flush.
type Document[T any] struct {
	mu      sync.Mutex
	key     string
	adapter storage.Adapter
	log     *zap.Logger
	value   T
}

// OpenDocument hydrates the document, falling back to fallback when the key
// is absent or the stored value cannot be decoded.
func OpenDocument[T any](adapter storage.Adapter, key string, fallback T, log *zap.Logger) *Document[T] {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Document[T]{
		key:     key,
		adapter: adapter,
		log:     log.With(zap.String("document", key)),
		value:   fallback,
	}

	raw, err := adapter.Load(key)
	if err != nil {
		return d
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		d.log.Warn("document fell back to defaults", zap.Error(err))
		return d
	}
	d.value = value
	return d
}

// Get returns the current value.
func (d *Document[T]) Get() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value
}

// Put replaces the value and flushes it.
func (d *Document[T]) Put(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = value

	raw, err := json.Marshal(value)
	if err != nil {
		d.log.Warn("document flush failed; continuing with in-memory state", zap.Error(err))
		return
	}
	if err := d.adapter.Save(d.key, raw); err != nil {
		d.log.Warn("document flush failed; continuing with in-memory state", zap.Error(err))
	}
}
