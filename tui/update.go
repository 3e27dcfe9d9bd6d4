package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/internal/ui"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/tracker"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, tea.Batch(append(cmds, cmd)...)
	case currentMsg:
		b.current = mo.Option[player.Status](msg)
		return b, tea.Batch(cmds...)
	case eventMsg:
		return b, tea.Batch(append(cmds, b.handleEvent(tracker.Event(msg)), b.waitForEvent())...)
	case eventsClosedMsg:
		b.current = mo.None[player.Status]()
		return b, tea.Batch(cmds...)
	case historyLoadedMsg:
		return b, tea.Batch(append(cmds, b.setEntries(msg))...)
	case historyErrorMsg:
		b.raiseError(msg.err)
		return b, tea.Batch(cmds...)
	case deletedMsg:
		entry := history.Entry(msg)
		return b, tea.Batch(append(cmds, ui.Notify(fmt.Sprintf("Deleted %s", entry.Name())))...)
	case deleteFailedMsg:
		return b, tea.Batch(append(cmds, ui.NotifyFailure(msg.err))...)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch b.state {
	case nowPlayingState:
		cmd = b.updateNowPlaying(msg)
	case historyState:
		cmd = b.updateHistory(msg)
	case confirmState:
		cmd = b.updateConfirm(msg)
	case errorState:
		cmd = b.updateError(msg)
	}

	return b, tea.Batch(append(cmds, cmd)...)
}

func (b *statefulBubble) handleEvent(event tracker.Event) tea.Cmd {
	switch event.Type {
	case tracker.EventNowPlaying:
		b.current = mo.Some(event.Status)
	case tracker.EventStopped:
		b.current = mo.None[player.Status]()
		if entry, ok := event.Entry.Get(); ok {
			return ui.Notify(fmt.Sprintf("Saved %s", entry))
		}
	case tracker.EventHistoryChanged:
		return b.loadHistory()
	}

	return nil
}

func (b *statefulBubble) updateNowPlaying(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.quit):
			return tea.Quit
		case key.Matches(msg, b.keymap.nextTab):
			b.nextTab()
		}
	}

	return nil
}

func (b *statefulBubble) updateHistory(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && b.historyC.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, b.keymap.quit):
			return tea.Quit
		case key.Matches(msg, b.keymap.nextTab):
			b.nextTab()
			return nil
		case key.Matches(msg, b.keymap.remove):
			if entry, ok := b.selectedEntry().Get(); ok {
				b.pending = mo.Some(entry)
				b.setState(confirmState)
			}
			return nil
		case key.Matches(msg, b.keymap.open):
			if entry, ok := b.selectedEntry().Get(); ok {
				return b.openEntry(entry)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateConfirm(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, b.keymap.yes):
		entry, _ := b.pending.Get()
		b.pending = mo.None[history.Entry]()
		b.previousState()
		return b.deleteEntry(entry)
	case key.Matches(keyMsg, b.keymap.no):
		b.pending = mo.None[history.Entry]()
		b.previousState()
	}

	return nil
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.quit):
			return tea.Quit
		case key.Matches(msg, b.keymap.back):
			b.previousState()
			return b.loadHistory()
		}
	}

	return nil
}
