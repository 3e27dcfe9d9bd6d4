package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/key"
	"github.com/zalando/go-keyring"
)

func TestPassword(t *testing.T) {
	Convey("Given a mock keyring", t, func() {
		keyring.MockInit()
		viper.Set(key.PlayerPassword, "")

		Convey("With nothing stored the password is empty", func() {
			So(Password(), ShouldEqual, "")
		})

		Convey("A stored password is used", func() {
			So(SetPassword("hunter2"), ShouldBeNil)
			So(Password(), ShouldEqual, "hunter2")

			Convey("Unless the config sets one", func() {
				viper.Set(key.PlayerPassword, "fromconfig")
				So(Password(), ShouldEqual, "fromconfig")
			})

			Convey("Deleting it twice is fine", func() {
				So(DeletePassword(), ShouldBeNil)
				So(DeletePassword(), ShouldBeNil)
				So(Password(), ShouldEqual, "")
			})
		})

		Reset(func() {
			viper.Set(key.PlayerPassword, "")
		})
	})
}
