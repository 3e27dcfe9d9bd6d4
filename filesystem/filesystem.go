// Package filesystem provides the swappable filesystem backend used for
// history files, media renames and the now-playing snapshot.
//
// Production code runs on the OS filesystem; tests switch to an in-memory
// afero backend so renames and deletions never touch real media.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Use installs an arbitrary afero filesystem, e.g. a read-only wrapper in tests.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
