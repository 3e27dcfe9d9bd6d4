package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/internal/ui"
	"github.com/vlctrack/vlctrack/open"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/tracker"
)

type (
	eventMsg         tracker.Event
	eventsClosedMsg  struct{}
	currentMsg       mo.Option[player.Status]
	historyLoadedMsg []history.Entry
	historyErrorMsg  struct{ err error }
	deletedMsg       history.Entry
	deleteFailedMsg  struct{ err error }
)

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.loadCurrent(), b.loadHistory(), b.waitForEvent())
}

func (b *statefulBubble) loadCurrent() tea.Cmd {
	return func() tea.Msg {
		current, err := b.backend.Current(b.ctx)
		if err != nil {
			return nil
		}
		return currentMsg(current)
	}
}

func (b *statefulBubble) loadHistory() tea.Cmd {
	return func() tea.Msg {
		entries, err := b.backend.History(b.ctx)
		if err != nil {
			return historyErrorMsg{err: err}
		}
		return historyLoadedMsg(entries)
	}
}

func (b *statefulBubble) waitForEvent() tea.Cmd {
	events := b.backend.Events()
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func (b *statefulBubble) deleteEntry(entry history.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := b.backend.Delete(b.ctx, entry.File, true); err != nil {
			return deleteFailedMsg{err: err}
		}
		return deletedMsg(entry)
	}
}

func (b *statefulBubble) openEntry(entry history.Entry) tea.Cmd {
	return func() tea.Msg {
		if err := open.Media(entry.File); err != nil {
			return ui.NotifyFailure(err)()
		}
		return ui.Notify(fmt.Sprintf("Opened %s", entry.Name()))()
	}
}
