package history

import (
	"path/filepath"

	"github.com/vlctrack/vlctrack/progress"
	"github.com/vlctrack/vlctrack/rename"
)

// Entry is one file in the viewing history.
type Entry struct {
	// File is the absolute path of the file as it currently exists on disk.
	File string `json:"file" jsonschema:"description=Absolute path of the media file"`
	// Timestamp is either [WATCHED] or the M:SS position playback stopped at.
	Timestamp string `json:"timestamp" jsonschema:"description=[WATCHED] or the M:SS stop position"`
	Watched   bool   `json:"watched"`
	// Length is the media length in seconds, 0 if unknown.
	Length int `json:"length" jsonschema:"minimum=0"`
}

// Level groups entries by how far they were watched.
type Level int

const (
	UnderHalf Level = iota
	OverHalf
	Watched
)

func (l Level) String() string {
	switch l {
	case Watched:
		return "watched"
	case OverHalf:
		return "over half"
	default:
		return "under half"
	}
}

// Identity is the key entries are deduplicated on.
func (e Entry) Identity() string {
	return rename.BaseIdentity(e.File)
}

// Name is the filename shown to users.
func (e Entry) Name() string {
	return filepath.Base(rename.LocalPath(e.File))
}

// Position returns the stop position in seconds, or the length for watched entries.
func (e Entry) Position() int {
	if e.Watched {
		return e.Length
	}

	pos, err := progress.ParseTimestamp(e.Timestamp)
	if err != nil {
		return 0
	}
	return pos
}

// Level classifies the entry. Without a known length nothing is over half.
func (e Entry) Level() Level {
	if e.Watched {
		return Watched
	}

	if e.Length > 0 && e.Position() > e.Length/2 {
		return OverHalf
	}

	return UnderHalf
}

func (e Entry) String() string {
	return e.Name() + " - " + e.Timestamp
}
