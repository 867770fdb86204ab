// Configuration for opening a shoebox.
package types

import "errors"

// Config holds backend selection and parameters for opening storage.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDataDirEmpty   = errors.New("data dir must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendSQLite: true,
	BackendMemory: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. The memory backend needs no DataDir;
// the durable backends require one.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend != BackendMemory && c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
