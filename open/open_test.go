package open

import (
	"os"
	"os/exec"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/key"
)

func TestMedia(t *testing.T) {
	Convey("Given a fake launcher", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.PlayerOpenWith, "vlc")

		var gotInput, gotApp string
		Launcher = func(input, app string) (*exec.Cmd, bool) {
			gotInput, gotApp = input, app
			return exec.Command(os.Args[0], "-test.run=^$"), true
		}

		Convey("When the file exists", func() {
			So(filesystem.API().WriteFile("/media/[00-10] Foo.mp4", []byte("x"), 0o644), ShouldBeNil)

			Convey("Then it is launched with the configured application", func() {
				So(Media("file:///media/%5B00-10%5D%20Foo.mp4"), ShouldBeNil)
				So(gotInput, ShouldEqual, "/media/[00-10] Foo.mp4")
				So(gotApp, ShouldEqual, "vlc")
			})
		})

		Convey("When the file is gone", func() {
			Convey("Then nothing is launched", func() {
				So(Media("/media/Gone.mp4"), ShouldNotBeNil)
				So(gotInput, ShouldBeEmpty)
			})
		})

		Reset(func() {
			Launcher = command
			viper.Reset()
			filesystem.SetOsFs()
		})
	})
}
