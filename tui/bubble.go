package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/internal/ui"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/rename"
	"github.com/vlctrack/vlctrack/style"
	"github.com/vlctrack/vlctrack/util"
)

// statefulBubble holds the whole TUI state.
type statefulBubble struct {
	ctx     context.Context
	backend Backend
	options *Options

	state     state
	lastState state

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	historyC list.Model
	helpC    help.Model

	current mo.Option[player.Status]
	// pending is the entry awaiting delete confirmation
	pending   mo.Option[history.Entry]
	lastError error

	width, height int
	notifier      *ui.Model
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.setState(errorState)
}

// setState switches the view and keymap. The previous tab is remembered so
// confirmations and errors can return to it.
func (b *statefulBubble) setState(s state) {
	if lo.Contains(tabs, b.state) {
		b.lastState = b.state
	}
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) previousState() {
	b.setState(b.lastState)
}

func (b *statefulBubble) nextTab() {
	_, i, _ := lo.FindIndexOf(tabs, func(s state) bool { return s == b.state })
	b.setState(tabs[(i+1)%len(tabs)])
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	// room for the tab bar
	listWidth := width - xx
	listHeight := height - yy - 2

	b.historyC.SetSize(listWidth, util.Max(listHeight, 0))
	b.historyC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) setEntries(entries []history.Entry) tea.Cmd {
	// newest first
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[len(entries)-1-i] = &listItem{entry: entry}
	}

	return b.historyC.SetItems(items)
}

func (b *statefulBubble) selectedEntry() mo.Option[history.Entry] {
	item, ok := b.historyC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[history.Entry]()
	}
	return mo.Some(item.entry)
}

func fileSize(path string) (uint64, bool) {
	info, err := filesystem.API().Stat(rename.LocalPath(path))
	if err != nil || info.IsDir() {
		return 0, false
	}
	return uint64(info.Size()), true
}

func newBubble(ctx context.Context, backend Backend, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		ctx:      ctx,
		backend:  backend,
		options:  options,
		keymap:   keymap,
		current:  mo.None[player.Status](),
		pending:  mo.None[history.Entry](),
		notifier: &ui.Model{},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.historyC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.historyC.KeyMap = keymap.forList()
	bubble.historyC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.historyC.AdditionalFullHelpKeys = func() []key.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.historyC.SetShowTitle(false)
	bubble.historyC.SetShowHelp(false)
	bubble.historyC.SetStatusBarItemName("entry", "entries")
	bubble.historyC.Styles.NoItems = paddingStyle

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(nowPlayingState)

	return &bubble
}
