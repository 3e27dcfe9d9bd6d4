package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/progress"
	"github.com/vlctrack/vlctrack/style"
)

// listItem implements list.Item for a history entry.
type listItem struct {
	entry history.Entry
}

func levelIcon(level history.Level) string {
	if level == history.Watched {
		return icon.Get(icon.Watched)
	}
	return icon.Get(icon.Progress)
}

func (t *listItem) Title() string {
	level := t.entry.Level()
	return lipgloss.NewStyle().Foreground(style.LevelColor(level)).Render(t.entry.Name())
}

func (t *listItem) Description() string {
	level := t.entry.Level()
	description := fmt.Sprintf("%s %s", levelIcon(level), t.entry.Timestamp)

	if t.entry.Length > 0 {
		description += style.Faint(fmt.Sprintf(" / %s", progress.Timestamp(t.entry.Length)))
	}

	if size, ok := fileSize(t.entry.File); ok {
		description += style.Faint(" • " + humanSize(size))
	}

	return description
}

func (t *listItem) FilterValue() string {
	return t.entry.Name()
}

func humanSize(size uint64) string {
	return humanize.IBytes(size)
}
