// Package ui renders short-lived status notifications under the TUI views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vlctrack/vlctrack/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 4 * time.Second

// Model holds the notification currently shown.
type Model struct {
	notification string
	failure      bool
	notifiedAt   time.Time
}

// NotificationMsg shows a message. Failures are rendered in the error color.
type NotificationMsg struct {
	Text    string
	Failure bool
}

// ClearNotificationMsg resets the notification once its lifetime has passed.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a tea.Cmd that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: text}
	}
}

// NotifyFailure returns a tea.Cmd that shows err.
func NotifyFailure(err error) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: err.Error(), Failure: true}
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update processes notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = msg.Text
		m.failure = msg.Failure
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification restarted the timer
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Text returns the notification currently shown, if any.
func (m *Model) Text() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	render := style.Fg(style.FaintColor)
	if m.failure {
		render = style.Fg(style.ErrorColor)
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + render(m.notification)

	return strings.Join(lines, "\n")
}
