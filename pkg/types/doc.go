// Package types defines the record metadata, reference entities, query value
// object, configuration, and standard error types for the Shoebox record
// store.
// See docs/ARCHITECTURE.md § System Components.
package types
