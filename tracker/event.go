package tracker

import (
	"time"

	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/player"
)

// EventType identifies what changed.
type EventType int

const (
	// EventNowPlaying is sent for every poll that found media loaded.
	EventNowPlaying EventType = iota
	// EventStopped is sent when a tracked session ends.
	EventStopped
	// EventHistoryChanged is sent after any history mutation.
	EventHistoryChanged
)

func (t EventType) String() string {
	switch t {
	case EventNowPlaying:
		return "now_playing"
	case EventStopped:
		return "stopped"
	default:
		return "history_changed"
	}
}

// MarshalText encodes the type by name in JSON event streams.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is a tracker state change.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	// Status is the current status for EventNowPlaying and the last one seen for EventStopped.
	Status player.Status `json:"status"`
	// Entry is what was written to history when a stopped session was recorded.
	Entry mo.Option[history.Entry] `json:"entry"`
}
