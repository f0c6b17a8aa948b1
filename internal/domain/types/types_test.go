package types_test

import (
	"testing"

	types "github.com/okian/passnet/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSide(t *testing.T) {
	Convey("Given side names", t, func() {
		Convey("When parsing home", func() {
			s, err := types.ParseSide("home")

			Convey("Then it should be the home side", func() {
				So(err, ShouldBeNil)
				So(s, ShouldEqual, types.Home)
				So(s.Mirrored(), ShouldBeFalse)
				So(s.String(), ShouldEqual, "home")
			})
		})

		Convey("When parsing away with mixed case and spaces", func() {
			s, err := types.ParseSide(" Away ")

			Convey("Then it should be the mirrored away side", func() {
				So(err, ShouldBeNil)
				So(s, ShouldEqual, types.Away)
				So(s.Mirrored(), ShouldBeTrue)
				So(s.String(), ShouldEqual, "away")
			})
		})

		Convey("When parsing an unknown side", func() {
			_, err := types.ParseSide("left")

			Convey("Then it should fail", func() {
				So(err, ShouldEqual, types.ErrInvalidSide)
			})
		})
	})
}
