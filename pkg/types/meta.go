// Record metadata shared by every entity type.
// See docs/ARCHITECTURE.md § System Components (Record Store).
package types

import "time"

// Meta carries the system-assigned identity and timestamps of a record.
// Entity types embed Meta; the store owns every field in it.
type Meta struct {
	// ID is a UUID v7, generated on creation, stable for the record's
	// lifetime and never reused.
	ID string `json:"id"`

	// CreatedAt is the creation timestamp. Never changes after creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation. Invariant:
	// UpdatedAt >= CreatedAt.
	UpdatedAt time.Time `json:"updated_at"`
}

// Record is implemented by every entity the store can hold. RecordMeta
// exposes the metadata for the store to assign; Clone returns a deep copy so
// callers never share memory with the collection's source of truth.
type Record[T any] interface {
	RecordMeta() *Meta
	Clone() T
}
