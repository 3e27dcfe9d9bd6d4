package history

import (
	"errors"
	"fmt"
)

var (
	// ErrDeletionFailed is wrapped by every DeletionError.
	ErrDeletionFailed = errors.New("deletion failed")
	// ErrUnknownBackend is returned by Open for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown history backend")
)

// DeletionError is returned when the media file behind a history entry could
// not be removed. The history is left unchanged.
type DeletionError struct {
	File string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("could not delete %s: %v", e.File, e.Err)
}

func (e *DeletionError) Unwrap() []error {
	return []error{ErrDeletionFailed, e.Err}
}
