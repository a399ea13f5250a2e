// Package backend selects the persistence implementation once at startup.
// There is no per-call detection anywhere else: the factory hands out one
// store.Store and the rest of the process uses it for its whole lifetime,
// so a process that starts on the memory fallback stays on it.
package backend

import (
	"walletalert/internal/store"
)

// BackendType names a store implementation.
type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer.
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is known.
func (bt BackendType) IsValid() bool {
	switch bt {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a backend.
type Config struct {
	Type BackendType

	// SQLite specific
	SQLiteDBPath string
}

// CleanupFunc releases a backend's resources.
type CleanupFunc func() error

// Result carries the selected store and its cleanup.
type Result struct {
	Store   store.Store
	Type    BackendType
	Cleanup CleanupFunc
}
