package colours_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/okian/passnet/internal/domain/colours"
	"github.com/smartystreets/goconvey/convey"
)

func TestTeamTable(t *testing.T) {
	convey.Convey("Given the built-in team table", t, func() {
		convey.Convey("Then known teams resolve", func() {
			c, ok := colours.Of("Netherlands")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(c, convey.ShouldEqual, "orange")
		})

		convey.Convey("And every entry is a valid colour", func() {
			for team, c := range colours.Teams() {
				_, err := colours.RGBA(c)
				convey.So(err, convey.ShouldBeNil)
				convey.So(team, convey.ShouldNotBeEmpty)
			}
		})

		convey.Convey("And mutating the returned copy does not change the table", func() {
			m := colours.Teams()
			m["Spain"] = "purple"
			c, _ := colours.Of("Spain")
			convey.So(c, convey.ShouldEqual, "red")
		})
	})
}

func TestRGBA(t *testing.T) {
	convey.Convey("Given colour strings", t, func() {
		convey.Convey("When resolving a name", func() {
			c, err := colours.RGBA("Navy")
			convey.So(err, convey.ShouldBeNil)
			convey.So(c, convey.ShouldResemble, color.RGBA{R: 0, G: 0, B: 0x80, A: 0xff})
		})

		convey.Convey("When resolving hex values", func() {
			c, err := colours.RGBA("#0E1117")
			convey.So(err, convey.ShouldBeNil)
			convey.So(c, convey.ShouldResemble, color.RGBA{R: 0x0e, G: 0x11, B: 0x17, A: 0xff})

			short, err := colours.RGBA("#f80")
			convey.So(err, convey.ShouldBeNil)
			convey.So(short, convey.ShouldResemble, color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff})
		})

		convey.Convey("When resolving garbage", func() {
			_, err := colours.RGBA("not-a-colour")
			convey.So(errors.Is(err, colours.ErrUnknownColour), convey.ShouldBeTrue)

			_, err = colours.RGBA("#12")
			convey.So(errors.Is(err, colours.ErrUnknownColour), convey.ShouldBeTrue)

			for _, bad := range []string{"#12345g", "#g12345", "#12g", "#+12345", "#1234567"} {
				_, err = colours.RGBA(bad)
				convey.So(errors.Is(err, colours.ErrUnknownColour), convey.ShouldBeTrue)
			}
		})
	})
}

func TestPalette(t *testing.T) {
	convey.Convey("Given a palette with overrides and a default", t, func() {
		p := colours.NewPalette(
			colours.WithOverrides(map[string]string{"Spain": "darkred", "Iceland": "blue"}),
			colours.WithDefault("gray"),
		)

		convey.Convey("Then overrides win over the table", func() {
			c, ok := p.Colour("Spain")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(c, convey.ShouldEqual, "darkred")
		})

		convey.Convey("And new teams can be added", func() {
			c, _ := p.Colour("Iceland")
			convey.So(c, convey.ShouldEqual, "blue")
		})

		convey.Convey("And unknown teams fall back to the default", func() {
			c, ok := p.Colour("Narnia")
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(c, convey.ShouldEqual, "gray")
		})

		convey.Convey("And the palette validates", func() {
			convey.So(p.Validate(), convey.ShouldBeNil)
		})
	})

	convey.Convey("Given a palette with an invalid override", t, func() {
		p := colours.NewPalette(colours.WithOverrides(map[string]string{"Spain": "reddish"}))

		convey.Convey("Then validation fails", func() {
			convey.So(errors.Is(p.Validate(), colours.ErrUnknownColour), convey.ShouldBeTrue)
		})
	})

	convey.Convey("Given a colour and an alpha", t, func() {
		c, err := colours.WithAlpha("red", 0.5)

		convey.Convey("Then the alpha channel is replaced", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(c, convey.ShouldResemble, color.NRGBA{R: 0xff, A: 0x80})
			convey.So(colours.Hex(c), convey.ShouldEqual, "#ff0000")
		})
	})
}
