// Error taxonomy for store, adapter, and collaborator failures.
// See docs/ARCHITECTURE.md § System Components.
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound reports that no record with the requested ID exists.
	ErrNotFound = errors.New("record not found")

	// ErrKeyAbsent reports that a storage key has never been written.
	// It is an expected condition, not a failure; callers fall back to
	// their default dataset.
	ErrKeyAbsent = errors.New("storage key absent")

	// ErrInvalidQuery reports an unknown sort or filter key.
	ErrInvalidQuery = errors.New("invalid query")
)

// ValidationError reports rejected mutation input. The operation is aborted
// with no partial commit; other records are unaffected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failed adapter operation. On read the store
// falls back to defaults and keeps starting; on write the store logs and
// continues with in-memory state.
type PersistenceError struct {
	Op  string // "load", "save", or "remove"
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// CollaboratorError reports a failed or unusable reply from an external
// collaborator such as the summarization service. It is always recoverable:
// the host surface shows it and no mutation derived from the reply is
// applied.
type CollaboratorError struct {
	Reason string
	Err    error
}

func (e *CollaboratorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
