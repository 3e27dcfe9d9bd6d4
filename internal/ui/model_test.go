package ui

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("Without a notification the view is unchanged", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A notification is appended to the last line", func() {
			cmd := m.Update(Notify("Deleted Foo.mp4")())
			So(cmd, ShouldNotBeNil)
			So(m.Text(), ShouldEqual, "Deleted Foo.mp4")

			lines := strings.Split(m.View("a\nb"), "\n")
			So(lines[0], ShouldEqual, "a")
			So(lines[1], ShouldContainSubstring, "Deleted Foo.mp4")
		})

		Convey("A stale clear does not hide a newer notification", func() {
			m.Update(Notify("first")())
			stale := ClearNotificationMsg{}
			m.Update(NotifyFailure(errors.New("second"))())
			m.Update(stale)
			So(m.Text(), ShouldEqual, "second")

			m.Update(ClearNotificationMsg{at: m.notifiedAt})
			So(m.Text(), ShouldEqual, "")
		})
	})
}
