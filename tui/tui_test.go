package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/internal/ui"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/tracker"
)

type fakeBackend struct {
	entries   []history.Entry
	deleted   []string
	deleteErr error
	events    chan tracker.Event
}

func (f *fakeBackend) Current(context.Context) (mo.Option[player.Status], error) {
	return mo.None[player.Status](), nil
}

func (f *fakeBackend) History(context.Context) ([]history.Entry, error) {
	return f.entries, nil
}

func (f *fakeBackend) Delete(_ context.Context, path string, _ bool) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, path)
	return nil
}

func (f *fakeBackend) Events() <-chan tracker.Event {
	return f.events
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestBubble(t *testing.T) {
	Convey("Given a bubble with some history", t, func() {
		backend := &fakeBackend{
			entries: []history.Entry{
				{File: "/m/[WATCHED] Foo.mp4", Timestamp: "[WATCHED]", Watched: true},
				{File: "/m/[00-10] Bar.mp4", Timestamp: "0:10", Length: 1000},
			},
			events: make(chan tracker.Event, 1),
		}
		b := newBubble(context.Background(), backend, &Options{Address: "localhost:4212"})
		b.resize(80, 24)
		b.Update(historyLoadedMsg(backend.entries))

		Convey("It starts on the now playing tab, waiting for VLC", func() {
			So(b.state, ShouldEqual, nowPlayingState)
			So(b.View(), ShouldContainSubstring, "Waiting for VLC on localhost:4212")
		})

		Convey("Tab switches to history, newest first", func() {
			b.Update(keyPress("tab"))
			So(b.state, ShouldEqual, historyState)

			entry, ok := b.selectedEntry().Get()
			So(ok, ShouldBeTrue)
			So(entry.File, ShouldEqual, "/m/[00-10] Bar.mp4")
		})

		Convey("A now playing event updates the view", func() {
			b.Update(eventMsg(tracker.Event{
				Type:   tracker.EventNowPlaying,
				Status: player.Status{File: "/m/Baz.mkv", Position: 70, Length: 600, State: player.Paused},
			}))
			So(b.View(), ShouldContainSubstring, "Paused: Baz.mkv - 1:10")

			Convey("And a stop event clears it", func() {
				b.Update(eventMsg(tracker.Event{Type: tracker.EventStopped}))
				So(b.current.IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Deleting asks for confirmation first", func() {
			b.Update(keyPress("tab"))
			b.Update(keyPress("d"))
			So(b.state, ShouldEqual, confirmState)
			So(b.View(), ShouldContainSubstring, "[00-10] Bar.mp4")

			Convey("n cancels", func() {
				_, cmd := b.Update(keyPress("n"))
				So(b.state, ShouldEqual, historyState)
				So(b.pending.IsAbsent(), ShouldBeTrue)
				if cmd != nil {
					cmd()
				}
				So(backend.deleted, ShouldBeEmpty)
			})

			Convey("y deletes the file through the backend", func() {
				b.Update(keyPress("y"))
				So(b.state, ShouldEqual, historyState)

				msg := b.deleteEntry(history.Entry{File: "/m/[00-10] Bar.mp4"})()
				So(backend.deleted, ShouldResemble, []string{"/m/[00-10] Bar.mp4"})
				So(msg, ShouldHaveSameTypeAs, deletedMsg{})
			})

			Convey("a failed deletion is shown as a notification", func() {
				backend.deleteErr = &history.DeletionError{File: "/m/[00-10] Bar.mp4", Err: errors.New("permission denied")}
				msg := b.deleteEntry(history.Entry{File: "/m/[00-10] Bar.mp4"})()

				_, cmd := b.Update(msg)
				So(cmd, ShouldNotBeNil)

				b.Update(ui.NotifyFailure(backend.deleteErr)())
				So(b.notifier.Text(), ShouldContainSubstring, "permission denied")
			})
		})

		Convey("A history error is shown and can be dismissed", func() {
			b.Update(keyPress("tab"))
			b.Update(historyErrorMsg{err: errors.New("disk on fire")})
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "disk on fire")

			b.Update(keyPress("esc"))
			So(b.state, ShouldEqual, historyState)
		})
	})
}
