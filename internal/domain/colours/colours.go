// Package colours holds the display colour of each team and resolves colour
// names to RGBA values.
package colours

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColour is returned when a colour is neither a known name nor a
// #rrggbb hex value.
var ErrUnknownColour = errors.New("unknown colour")

// DefaultColour is used for teams missing from the table.
const DefaultColour = "white"

// teamColours is read-only; use Of or Teams.
var teamColours = map[string]string{
	"Netherlands":    "orange",
	"Spain":          "red",
	"Portugal":       "darkred",
	"Denmark":        "red",
	"England":        "navy",
	"Ukraine":        "yellow",
	"Czech Republic": "red",
	"Austria":        "red",
	"Romania":        "yellow",
	"France":         "navy",
	"Albania":        "red",
	"Germany":        "black",
	"Switzerland":    "red",
	"Scotland":       "navy",
	"Croatia":        "red",
	"Belgium":        "red",
	"Italy":          "blue",
	"Poland":         "white",
	"Slovakia":       "blue",
	"Georgia":        "darkred",
	"Turkey":         "red",
	"Slovenia":       "green",
	"Serbia":         "red",
	"Hungary":        "red",
}

// Of returns the built-in colour of team.
func Of(team string) (string, bool) {
	c, ok := teamColours[team]
	return c, ok
}

// Teams returns a copy of the built-in table.
func Teams() map[string]string {
	out := make(map[string]string, len(teamColours))
	for k, v := range teamColours {
		out[k] = v
	}
	return out
}

// RGBA resolves a CSS colour name or a #rrggbb / #rgb hex string.
func RGBA(colour string) (color.RGBA, error) {
	c := strings.ToLower(strings.TrimSpace(colour))
	if strings.HasPrefix(c, "#") {
		return parseHex(c)
	}
	if rgba, ok := colornames.Map[c]; ok {
		return rgba, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, colour)
}

func parseHex(c string) (color.RGBA, error) {
	digits := c[1:]
	if len(digits) != 6 && len(digits) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, c)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, c)
	}
	if len(digits) == 3 {
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.RGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
