// Package progress decides whether a viewing session counts as watched and
// formats playback positions for history entries and filenames.
package progress

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// TailSeconds is how close to the end a position must be to count as watched.
	TailSeconds = 90
	// WatchedRatio is the fraction of the length past which a file counts as watched.
	WatchedRatio = 0.95
)

// ErrBadTimestamp is returned by ParseTimestamp for malformed input.
var ErrBadTimestamp = errors.New("malformed timestamp")

// IsWatched reports whether stopping at position of a file with the given
// length means the file was watched. Unknown lengths are never watched.
func IsWatched(position, length int) bool {
	if length <= 0 {
		return false
	}

	return length-position <= TailSeconds || float64(position)/float64(length) > WatchedRatio
}

// Timestamp renders seconds as M:SS, e.g. 70 -> "1:10".
func Timestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FilenameMarker renders seconds as MM-SS for use inside a filename marker.
// Colons are avoided because they are not valid in Windows filenames.
func FilenameMarker(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d-%02d", seconds/60, seconds%60)
}

// ParseTimestamp is the inverse of Timestamp.
func ParseTimestamp(s string) (int, error) {
	minutes, secs, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	sec, err := strconv.Atoi(secs)
	if err != nil || sec < 0 || sec > 59 || len(secs) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimestamp, s)
	}

	return m*60 + sec, nil
}
