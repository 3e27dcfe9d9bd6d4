// Package player polls VLC's remote-control (rc/telnet) interface for the
// file being played, the playback position and the media length.
//
// A poll never fails with an error: every outcome is folded into a Result so
// that a periodic driver can treat "not running" and "not reachable" as
// ordinary states instead of failures.
package player

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vlctrack/vlctrack/progress"
	"github.com/vlctrack/vlctrack/rename"
)

// State is the playback state reported by the player.
type State string

const (
	Playing State = "playing"
	Paused  State = "paused"
	Stopped State = "stopped"
)

// Tracked reports whether a status in this state can be used for progress tracking.
func (s State) Tracked() bool {
	return s == Playing || s == Paused
}

// Title is the capitalized label used in now-playing lines.
func (s State) Title() string {
	if s == Paused {
		return "Paused"
	}
	return "Playing"
}

// Status is one snapshot of what the player is doing.
type Status struct {
	// File as reported by the player, a local path or a file:// URI.
	File     string `json:"file"`
	Position int    `json:"position"`
	// Length is 0 when unknown.
	Length int   `json:"length"`
	State  State `json:"state"`
}

// Name is the filename of File, decoded when File is a URI.
func (s Status) Name() string {
	return filepath.Base(rename.LocalPath(s.File))
}

// String renders the now-playing line, e.g. "Playing: Foo.mp4 - 0:10".
func (s Status) String() string {
	return fmt.Sprintf("%s: %s - %s", s.State.Title(), s.Name(), progress.Timestamp(s.Position))
}

// Outcome classifies a poll.
type Outcome int

const (
	// Loaded means media is playing or paused and Result.Status is set.
	Loaded Outcome = iota
	// Absent means the player process is not running.
	Absent
	// Unavailable means the player could not be queried or had nothing usable to report.
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case Absent:
		return "absent"
	default:
		return "unavailable"
	}
}

// Result is the immutable outcome of a single poll.
type Result struct {
	Outcome Outcome
	Status  Status
	// Err explains an Unavailable outcome.
	Err error
}

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrBadReply      = errors.New("unexpected reply")
	// ErrNothingPlaying is reported when the player runs but has no media playing or paused.
	ErrNothingPlaying = errors.New("nothing playing")
)

func loaded(s Status) Result {
	return Result{Outcome: Loaded, Status: s}
}

func unavailable(err error) Result {
	return Result{Outcome: Unavailable, Err: err}
}
