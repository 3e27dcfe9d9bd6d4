package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vlctrack/vlctrack/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Watched

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("Every icon has every variant", func() {
			for i, def := range icons {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(def.Get(), ShouldNotBeEmpty)
					So(Get(i), ShouldEqual, def.Get())
				}
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			result := Get(target)
			So(result, ShouldBeEmpty)
		})
	})
}
