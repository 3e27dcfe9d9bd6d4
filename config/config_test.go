package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/key"
	"github.com/vlctrack/vlctrack/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an empty config directory", t, func() {
		filesystem.SetMemMapFs()
		t.Setenv(where.EnvConfigPath, "/cfg")

		Convey("Setup succeeds without a config file", func() {
			So(Setup(), ShouldBeNil)

			Convey("And every default is populated", func() {
				for name := range Default {
					So(viper.IsSet(name), ShouldBeTrue)
				}
				So(viper.GetInt(key.PlayerPort), ShouldEqual, 4212)
				So(viper.GetString(key.HistoryBackend), ShouldEqual, "json")
			})
		})

		Convey("A config file overrides defaults", func() {
			So(filesystem.API().WriteFile("/cfg/vlctrack.toml", []byte("[player]\nport = 9999\n"), 0o644), ShouldBeNil)
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.PlayerPort), ShouldEqual, 9999)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("VLCTRACK_PLAYER_HOST", "10.0.0.2")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.PlayerHost), ShouldEqual, "10.0.0.2")
		})

		Reset(func() {
			viper.Reset()
			filesystem.SetOsFs()
		})
	})

	Convey("EnvKeyReplacer converts dots to underscores", t, func() {
		So(EnvKeyReplacer.Replace("tracker.unavailable_grace"), ShouldEqual, "tracker_unavailable_grace")
	})
}

func TestField(t *testing.T) {
	Convey("Given registered fields", t, func() {
		backend := Default[key.HistoryBackend]

		Convey("Env is prefixed with the app name", func() {
			So(backend.Env(), ShouldEqual, "VLCTRACK_HISTORY_BACKEND")
		})

		Convey("Options restrict values", func() {
			So(backend.Validate("sqlite"), ShouldBeNil)
			So(backend.Validate("yaml"), ShouldNotBeNil)

			port := Default[key.PlayerPort]
			So(port.Validate(1), ShouldBeNil)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given fields of every kind", t, func() {
		port := Default[key.PlayerPort]
		interval := Default[key.TrackerInterval]
		rename := Default[key.RenameEnabled]
		host := Default[key.PlayerHost]

		Convey("Integers are parsed", func() {
			v, err := port.Parse([]string{"4213"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 4213)

			_, err = port.Parse([]string{"forty"})
			So(err, ShouldNotBeNil)
		})

		Convey("Millisecond fields take plain numbers or durations", func() {
			v, err := interval.Parse([]string{"500"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 500)

			v, err = interval.Parse([]string{"1.5s"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1500)

			_, err = interval.Parse([]string{"0"})
			So(err, ShouldNotBeNil)

			_, err = interval.Parse([]string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans and strings are parsed", func() {
			v, err := rename.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = host.Parse([]string{" 10.0.0.2 "})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "10.0.0.2")
		})

		Convey("A missing value is an error", func() {
			_, err := host.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}
