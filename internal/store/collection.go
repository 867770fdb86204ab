// Package store implements the in-memory record store and its mutation
// protocol. A Collection is hydrated once from the persistence adapter at
// startup and mirrored back by an explicit flush at the end of every
// mutation; between flushes the in-memory state is the source of truth for
// the session. A failed flush is logged and swallowed, never rolled back.
// See docs/ARCHITECTURE.md § Mutation Protocol.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/driftwood-labs/shoebox/internal/storage"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Observer receives the outcome of store operations. Implementations must be
// safe for concurrent use.
type Observer interface {
	Observe(operation string, success bool)
}

// nopObserver discards every observation.
type nopObserver struct{}

func (nopObserver) Observe(string, bool) {}

// Options configures a Collection.
type Options[T types.Record[T]] struct {
	// Key is the storage key the collection persists under. Required.
	Key string

	// Seed builds the default dataset used when the key is absent or its
	// value cannot be decoded.
	Seed func() []T

	// Prepare normalizes a record before validation: trimming, defaults
	// for blank enum fields, zeroing unparsable numerics. Optional.
	Prepare func(T)

	// Validate rejects bad input with a *types.ValidationError. Optional.
	Validate func(T) error

	Clock    Clock
	Logger   *zap.Logger
	Observer Observer
}

// Collection holds every record of one entity type in memory, keyed by ID
// for lookup. Insertion order is preserved but carries no meaning; display
// order comes from the query pipeline. All mutations are serialized by an
// internal mutex.
type Collection[T types.Record[T]] struct {
	mu       sync.Mutex
	key      string
	adapter  storage.Adapter
	log      *zap.Logger
	clock    Clock
	observer Observer
	prepare  func(T)
	validate func(T) error
	onDelete []func(T)

	records []T
	index   map[string]int
}

// Open hydrates a collection from the adapter. An absent key or an
// undecodable value falls back to the seed dataset; hydration never fails
// for those reasons, only for misconfiguration.
func Open[T types.Record[T]](adapter storage.Adapter, opts Options[T]) (*Collection[T], error) {
	if opts.Key == "" {
		return nil, fmt.Errorf("open collection: key must not be empty")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}

	c := &Collection[T]{
		key:      opts.Key,
		adapter:  adapter,
		log:      opts.Logger.With(zap.String("collection", opts.Key)),
		clock:    opts.Clock,
		observer: opts.Observer,
		prepare:  opts.Prepare,
		validate: opts.Validate,
	}
	if seeded := c.hydrate(opts.Seed); seeded {
		// Write the seed back so later opens hydrate from storage.
		c.mu.Lock()
		c.flushLocked()
		c.mu.Unlock()
	}
	return c, nil
}

// hydrate loads records from the adapter, falling back to the seed dataset
// when the key is absent, the store is unreadable, or the value is corrupt.
// It reports whether the fallback was taken.
func (c *Collection[T]) hydrate(seed func() []T) bool {
	fallback := func(reason string, err error) {
		if seed != nil {
			c.records = seed()
		}
		c.rebuildIndex()
		if err != nil {
			c.log.Warn("hydration fell back to seed dataset",
				zap.String("reason", reason), zap.Error(err))
		}
	}

	value, err := c.adapter.Load(c.key)
	if err != nil {
		if errors.Is(err, types.ErrKeyAbsent) {
			fallback("key absent", nil)
			return true
		}
		fallback("storage unreadable", err)
		return true
	}

	var records []T
	if err := json.Unmarshal(value, &records); err != nil {
		fallback("corrupt value", err)
		return true
	}
	c.records = records
	c.rebuildIndex()
	return false
}

// rebuildIndex recomputes the id index, dropping records with blank or
// duplicate ids.
func (c *Collection[T]) rebuildIndex() {
	c.index = make(map[string]int, len(c.records))
	kept := c.records[:0]
	for _, record := range c.records {
		id := record.RecordMeta().ID
		if id == "" {
			c.log.Warn("dropped record with blank id")
			continue
		}
		if _, dup := c.index[id]; dup {
			c.log.Warn("dropped record with duplicate id", zap.String("id", id))
			continue
		}
		c.index[id] = len(kept)
		kept = append(kept, record)
	}
	c.records = kept
}

// OnDelete registers a cascade hook invoked with a copy of every removed
// record before the removal is flushed. Hooks keep foreign keys in other
// collections from dangling.
func (c *Collection[T]) OnDelete(hook func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDelete = append(c.onDelete, hook)
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Get returns a copy of the record with the given id, or ErrNotFound.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, types.ErrNotFound
	}
	return c.records[i].Clone(), nil
}

// ResolveID expands an exact id or a unique id prefix to a full record id.
// An exact match always wins; a prefix matching more than one record is a
// ValidationError, and no match at all is ErrNotFound.
func (c *Collection[T]) ResolveID(input string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if input == "" {
		return "", fmt.Errorf("resolve id %q: %w", input, types.ErrNotFound)
	}
	if _, ok := c.index[input]; ok {
		return input, nil
	}
	var match string
	for id := range c.index {
		if !strings.HasPrefix(id, input) {
			continue
		}
		if match != "" {
			return "", &types.ValidationError{Field: "id", Reason: "ambiguous id prefix " + input}
		}
		match = id
	}
	if match == "" {
		return "", fmt.Errorf("resolve id %q: %w", input, types.ErrNotFound)
	}
	return match, nil
}

// List returns copies of every record in collection order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	for i, record := range c.records {
		out[i] = record.Clone()
	}
	return out
}

// Create validates the record, assigns a fresh UUID v7 and both timestamps,
// appends it, and flushes. The caller's value is not retained; the stored
// copy is returned.
func (c *Collection[T]) Create(record T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T

	stored := record.Clone()
	if c.prepare != nil {
		c.prepare(stored)
	}
	if c.validate != nil {
		if err := c.validate(stored); err != nil {
			c.observer.Observe("create", false)
			return zero, err
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		c.observer.Observe("create", false)
		return zero, fmt.Errorf("generating record id: %w", err)
	}
	now := c.clock.Now()
	meta := stored.RecordMeta()
	meta.ID = id.String()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	c.index[meta.ID] = len(c.records)
	c.records = append(c.records, stored)
	c.flushLocked()
	c.observer.Observe("create", true)
	return stored.Clone(), nil
}

// Update applies mutate to a copy of the stored record, refreshes UpdatedAt,
// and replaces the stored record. ID and CreatedAt never change, whatever
// the mutator does. Returns ErrNotFound if no record has the id.
func (c *Collection[T]) Update(id string, mutate func(T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record, err := c.updateLocked(id, mutate)
	if err != nil {
		c.observer.Observe("update", false)
		return record, err
	}
	c.flushLocked()
	c.observer.Observe("update", true)
	return record, nil
}

// updateLocked performs the in-memory part of Update. Callers hold the lock
// and flush.
func (c *Collection[T]) updateLocked(id string, mutate func(T)) (T, error) {
	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, types.ErrNotFound
	}

	current := c.records[i]
	next := current.Clone()
	if mutate != nil {
		mutate(next)
	}
	if c.prepare != nil {
		c.prepare(next)
	}
	if c.validate != nil {
		if err := c.validate(next); err != nil {
			return zero, err
		}
	}

	meta := next.RecordMeta()
	meta.ID = current.RecordMeta().ID
	meta.CreatedAt = current.RecordMeta().CreatedAt
	meta.UpdatedAt = c.clock.Now()

	c.records[i] = next
	return next.Clone(), nil
}

// Delete removes the record with the given id, running cascade hooks with a
// copy of the removed record first. Returns ErrNotFound if no record has
// the id.
func (c *Collection[T]) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.deleteLocked(id); err != nil {
		c.observer.Observe("delete", false)
		return err
	}
	c.flushLocked()
	c.observer.Observe("delete", true)
	return nil
}

// deleteLocked performs the in-memory part of Delete. Callers hold the lock
// and flush.
func (c *Collection[T]) deleteLocked(id string) error {
	i, ok := c.index[id]
	if !ok {
		return types.ErrNotFound
	}

	removed := c.records[i].Clone()
	for _, hook := range c.onDelete {
		hook(removed)
	}

	c.records = append(c.records[:i], c.records[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.records); j++ {
		c.index[c.records[j].RecordMeta().ID] = j
	}
	return nil
}

// BulkUpdate applies mutate to each id. Invalid ids and rejected mutations
// are skipped, not fatal; the batch continues and the skipped ids are
// returned alongside the updated records. One flush covers the whole batch.
func (c *Collection[T]) BulkUpdate(ids []string, mutate func(T)) ([]T, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var updated []T
	var skipped []string
	for _, id := range ids {
		record, err := c.updateLocked(id, mutate)
		if err != nil {
			skipped = append(skipped, id)
			continue
		}
		updated = append(updated, record)
	}
	if len(updated) > 0 {
		c.flushLocked()
	}
	c.observer.Observe("bulk_update", len(skipped) == 0)
	return updated, skipped
}

// BulkDelete removes each id, skipping ids that no longer exist and
// returning them. One flush covers the whole batch.
func (c *Collection[T]) BulkDelete(ids []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var skipped []string
	removed := 0
	for _, id := range ids {
		if err := c.deleteLocked(id); err != nil {
			skipped = append(skipped, id)
			continue
		}
		removed++
	}
	if removed > 0 {
		c.flushLocked()
	}
	c.observer.Observe("bulk_delete", len(skipped) == 0)
	return skipped
}

// Flush serializes the collection and writes it to the adapter. Exposed for
// shutdown paths and tests; mutations flush on their own.
func (c *Collection[T]) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushErrLocked()
}

// flushLocked is the mutation-path flush: a failure is logged and counted
// but never surfaced, so the in-memory change stands for the session.
func (c *Collection[T]) flushLocked() {
	if err := c.flushErrLocked(); err != nil {
		c.observer.Observe("flush", false)
		c.log.Warn("flush failed; continuing with in-memory state", zap.Error(err))
		return
	}
	c.observer.Observe("flush", true)
}

func (c *Collection[T]) flushErrLocked() error {
	value, err := json.Marshal(c.records)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", c.key, err)
	}
	return c.adapter.Save(c.key, value)
}
