// Clock abstraction so tests control record timestamps.
package store

import "time"

// Clock supplies the current instant for record timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock. Timestamps are always UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
