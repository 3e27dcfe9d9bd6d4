package log

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/cfg")

		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)

			Convey("Then WithFields still returns a usable entry", func() {
				So(func() { WithFields(logrus.Fields{"a": 1}).Info("ignored") }, ShouldNotPanic)
			})
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)

			Infof("poll %s", "ok")

			files, err := filesystem.API().ReadDir(filepath.Join("/cfg", "logs"))
			So(err, ShouldBeNil)
			So(len(files), ShouldEqual, 1)

			data, err := filesystem.API().ReadFile(filepath.Join("/cfg", "logs", files[0].Name()))
			So(err, ShouldBeNil)
			So(strings.Contains(string(data), "poll ok"), ShouldBeTrue)
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
			filesystem.SetOsFs()
		})
	})
}
