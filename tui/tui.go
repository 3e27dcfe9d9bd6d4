// Package tui is the interactive terminal front end: a now-playing tab fed by
// tracker events and a history tab with delete-with-file-removal.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/tracker"
)

// Backend is the part of *tracker.Tracker the TUI drives.
type Backend interface {
	Current(ctx context.Context) (mo.Option[player.Status], error)
	History(ctx context.Context) ([]history.Entry, error)
	Delete(ctx context.Context, path string, removeFile bool) error
	Events() <-chan tracker.Event
}

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// History opens the history tab first.
	History bool
	// Address is shown while waiting for the player.
	Address string
}

// Run executes the Bubble Tea program until the user quits or ctx is cancelled.
func Run(ctx context.Context, backend Backend, options *Options) error {
	bubble := newBubble(ctx, backend, options)

	if options.History {
		bubble.setState(historyState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
