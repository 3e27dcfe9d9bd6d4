package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/player"
)

// Truecolor palette of the TUI and the boxed CLI messages.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")

	Pink   = lipgloss.Color("#f5c2e7")
	Mauve  = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Peach  = lipgloss.Color("#fab387")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")
)

var (
	AccentColor = Mauve
	ErrorColor  = Red
	HiRed       = Red
	FaintColor  = Overlay
)

// LevelColor is the colour of a history entry: green once watched, yellow
// past the halfway point, pink otherwise.
func LevelColor(level history.Level) lipgloss.Color {
	switch level {
	case history.Watched:
		return Green
	case history.OverHalf:
		return Yellow
	default:
		return Pink
	}
}

// StateColor is the colour of a playback state in the now playing view.
func StateColor(state player.State) lipgloss.Color {
	if state == player.Paused {
		return Peach
	}
	return Green
}
