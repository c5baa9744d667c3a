// Package storage provides the single key-value slot the roster snapshot is
// kept in. Backends store opaque bytes; encoding belongs to the caller.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Slot reads and overwrites one named value.
type Slot interface {
	// Load returns the stored value. found is false when nothing has been
	// saved yet.
	Load() (data []byte, found bool, err error)
	// Save replaces the stored value.
	Save(data []byte) error
	// Key returns the slot name.
	Key() string
	Close() error
}

// Backend names a slot implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Backends lists the supported backends.
var Backends = []Backend{BackendFile, BackendSQLite, BackendMemory}

// ErrUnknownBackend is returned by Open and ParseBackend for unsupported names.
var ErrUnknownBackend = errors.New("unknown storage backend")

// ParseBackend validates a backend name.
func ParseBackend(name string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Backends {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// Open returns the slot named key for backend. location is a directory for the
// file backend and a database path for the sqlite backend; the memory backend
// ignores it.
func Open(backend Backend, location, key string) (Slot, error) {
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("slot key required")
	}
	switch backend {
	case BackendFile:
		return OpenFile(location, key)
	case BackendSQLite:
		return OpenSQLite(location, key)
	case BackendMemory:
		return NewMemory(key), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(backend))
	}
}
