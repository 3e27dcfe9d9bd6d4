package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vlctrack/vlctrack/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "entry", "entries"), ShouldEqual, "1 entry")
		So(Quantify(0, "entry", "entries"), ShouldEqual, "0 entries")
		So(Quantify(2, "entry", "entries"), ShouldEqual, "2 entries")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("playing"), ShouldEqual, "Playing")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/logs/old", 0o755), ShouldBeNil)
		So(fs.WriteFile("/logs/old/a.log", []byte("x"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/logs/b.log", []byte("x"), 0o644), ShouldBeNil)

		Convey("A file is removed", func() {
			So(Delete("/logs/b.log"), ShouldBeNil)
			exists, _ := fs.Exists("/logs/b.log")
			So(exists, ShouldBeFalse)
		})

		Convey("A directory is removed recursively", func() {
			So(Delete("/logs"), ShouldBeNil)
			exists, _ := fs.Exists("/logs/old/a.log")
			So(exists, ShouldBeFalse)
		})

		Convey("A missing path is an error", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})

		Reset(filesystem.SetOsFs)
	})
}
