// Package history persists the list of files the user has watched, keyed by
// the filename with its progress marker removed.
package history

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/vlctrack/vlctrack/constant"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/rename"
	"github.com/vlctrack/vlctrack/where"
)

// Store is an ordered, identity-deduplicated viewing history.
type Store interface {
	// Load returns all entries in insertion order.
	Load() ([]Entry, error)
	// Upsert overwrites the entry with the same identity as path or appends a new one.
	// Watched entries always store the [WATCHED] timestamp.
	Upsert(path, timestamp string, watched bool, length int) error
	// Delete removes the entry whose File equals path. With removeFile the media
	// file is deleted first and a failure leaves the history untouched.
	Delete(path string, removeFile bool) error
	// Clear removes every entry.
	Clear() error
	Close() error
}

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Backends lists the accepted values of history.backend.
var Backends = []string{BackendJSON, BackendSQLite}

// Open returns the store for backend at path. An empty path selects the default location.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(lo.Ternary(path == "", where.History(), path)), nil
	case BackendSQLite:
		return NewSQLiteStore(lo.Ternary(path == "", where.Database(), path))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func timestampFor(timestamp string, watched bool) string {
	if watched {
		return constant.WatchedMarker
	}
	return timestamp
}

// removeMedia deletes the file behind an entry. A file that is already gone is not an error.
func removeMedia(path string) error {
	err := filesystem.API().Remove(rename.LocalPath(path))
	if err == nil || os.IsNotExist(err) {
		return nil
	}

	return &DeletionError{File: path, Err: err}
}
