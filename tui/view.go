package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/vlctrack/vlctrack/color"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/icon"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/progress"
	"github.com/vlctrack/vlctrack/style"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(style.Subtext).Padding(0, 1)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case nowPlayingState:
		output = b.viewNowPlaying()
	case historyState:
		output = b.viewHistory()
	case confirmState:
		output = b.viewConfirm()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewTabs() string {
	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if tab == b.state {
			rendered[i] = activeTabStyle.Render(tab.title())
		} else {
			rendered[i] = inactiveTabStyle.Render(tab.title())
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (b *statefulBubble) truncate(s string) string {
	if b.width <= 0 {
		return s
	}
	return truncate.StringWithTail(s, uint(b.width), "…")
}

func (b *statefulBubble) viewNowPlaying() string {
	lines := []string{b.viewTabs(), ""}

	status, ok := b.current.Get()
	if !ok {
		waiting := "Waiting for VLC"
		if b.options.Address != "" {
			waiting += " on " + b.options.Address
		}
		lines = append(lines, b.spinnerC.View()+" "+style.Faint(waiting))
		return b.renderLines(true, lines)
	}

	stateIcon := icon.Get(icon.Playing)
	if status.State == player.Paused {
		stateIcon = icon.Get(icon.Paused)
	}

	lines = append(lines,
		b.truncate(fmt.Sprintf("%s %s", stateIcon, style.Fg(style.StateColor(status.State))(status.String()))),
		"",
		style.Faint(b.truncate(status.File)),
	)

	if status.Length > 0 {
		percent := float64(status.Position) / float64(status.Length) * 100
		line := fmt.Sprintf("%s / %s (%.0f%%)", progress.Timestamp(status.Position), progress.Timestamp(status.Length), percent)
		if progress.IsWatched(status.Position, status.Length) {
			line += " " + style.Fg(style.LevelColor(history.Watched))("watched")
		}
		lines = append(lines, "", line)
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewHistory() string {
	return paddingStyle.Render(b.viewTabs()) + "\n" + listExtraPaddingStyle.Render(b.historyC.View()) + "\n" + paddingStyle.Render(b.helpC.View(b.keymap))
}

func (b *statefulBubble) viewConfirm() string {
	entry, _ := b.pending.Get()

	lines := []string{
		style.ErrorTitle("Delete"),
		"",
		"Do you want to delete this file?",
		b.truncate(style.Fg(color.Purple)(entry.Name())),
	}

	if size, ok := fileSize(entry.File); ok {
		lines = append(lines, style.Faint(humanSize(size)))
	}

	lines = append(lines, "", style.Faint("The file is removed from disk together with its history entry."))

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
