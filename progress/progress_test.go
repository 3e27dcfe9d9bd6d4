package progress

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsWatched(t *testing.T) {
	Convey("Given a position and a length", t, func() {
		Convey("Exactly ninety seconds before the end is watched", func() {
			So(IsWatched(4510, 4600), ShouldBeTrue)
		})

		Convey("Past ninety-five percent is watched", func() {
			So(IsWatched(4509, 4700), ShouldBeTrue)
		})

		Convey("Ten percent into a short file is not watched", func() {
			So(IsWatched(100, 1000), ShouldBeFalse)
		})

		Convey("Just outside the tail window is not watched", func() {
			So(IsWatched(4509, 4600), ShouldBeTrue) // 98% of the length
			So(IsWatched(3000, 4600), ShouldBeFalse)
		})

		Convey("An unknown length is never watched", func() {
			So(IsWatched(500, 0), ShouldBeFalse)
			So(IsWatched(500, -1), ShouldBeFalse)
		})

		Convey("Reaching the end is watched", func() {
			So(IsWatched(1000, 1000), ShouldBeTrue)
		})

		Convey("Short files are watched from the start of the tail window", func() {
			So(IsWatched(0, 60), ShouldBeTrue)
		})
	})
}

func TestTimestamp(t *testing.T) {
	Convey("Timestamp pads seconds only", t, func() {
		So(Timestamp(10), ShouldEqual, "0:10")
		So(Timestamp(70), ShouldEqual, "1:10")
		So(Timestamp(3725), ShouldEqual, "62:05")
		So(Timestamp(-5), ShouldEqual, "0:00")
	})

	Convey("FilenameMarker pads both fields", t, func() {
		So(FilenameMarker(10), ShouldEqual, "00-10")
		So(FilenameMarker(754), ShouldEqual, "12-34")
		So(FilenameMarker(6000), ShouldEqual, "100-00")
	})
}

func TestParseTimestamp(t *testing.T) {
	Convey("Given a rendered timestamp", t, func() {
		Convey("It parses back to the same number of seconds", func() {
			for _, s := range []int{0, 10, 59, 60, 3725} {
				got, err := ParseTimestamp(Timestamp(s))
				So(err, ShouldBeNil)
				So(got, ShouldEqual, s)
			}
		})

		Convey("Malformed input is rejected", func() {
			for _, s := range []string{"", "10", "a:10", "1:7", "1:60", "[WATCHED]"} {
				_, err := ParseTimestamp(s)
				So(errors.Is(err, ErrBadTimestamp), ShouldBeTrue)
			}
		})
	})
}
