package nowplaying

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vlctrack/vlctrack/filesystem"
	"github.com/vlctrack/vlctrack/player"
)

func TestCache(t *testing.T) {
	Convey("Given a snapshot cache on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		cache := New("/cache/now_playing.json")

		Convey("When nothing was published", func() {
			snapshot, fresh, err := cache.Get()
			So(err, ShouldBeNil)
			So(fresh, ShouldBeFalse)
			So(snapshot.Current().IsAbsent(), ShouldBeTrue)

			Convey("Then a reader at another path sees nothing fresh either", func() {
				_, fresh, err := New("/cache/never_written.json").Get()
				So(err, ShouldBeNil)
				So(fresh, ShouldBeFalse)
			})
		})

		Convey("When a status is published", func() {
			status := player.Status{File: "/m/Foo.mp4", Position: 10, Length: 1000, State: player.Playing}
			cache.Publish(mo.Some(status))

			Convey("Then another reader sees it", func() {
				snapshot, fresh, err := New("/cache/now_playing.json").Get()
				So(err, ShouldBeNil)
				So(fresh, ShouldBeTrue)
				So(snapshot.Current(), ShouldResemble, mo.Some(status))
				So(snapshot.PublishedAt.IsZero(), ShouldBeFalse)
			})

			Convey("Then publishing nothing clears it", func() {
				cache.Publish(mo.None[player.Status]())
				snapshot, fresh, err := cache.Get()
				So(err, ShouldBeNil)
				So(fresh, ShouldBeTrue)
				So(snapshot.Current().IsAbsent(), ShouldBeTrue)
			})
		})

		Reset(filesystem.SetOsFs)
	})
}
