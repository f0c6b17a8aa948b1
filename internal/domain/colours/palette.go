package colours

import (
	"fmt"
	"image/color"
	"math"
)

// Option applies a configuration option to the Palette.
type Option func(*Palette)

// WithOverrides replaces or adds team colours on top of the built-in table.
func WithOverrides(overrides map[string]string) Option {
	return func(p *Palette) {
		for team, c := range overrides {
			if c != "" {
				p.teams[team] = c
			}
		}
	}
}

// WithDefault sets the colour used for teams missing from the table.
func WithDefault(c string) Option {
	return func(p *Palette) {
		if c != "" {
			p.fallback = c
		}
	}
}

// Palette is an immutable team -> colour lookup.
type Palette struct {
	teams    map[string]string
	fallback string
}

// NewPalette builds a palette from the built-in table and options.
func NewPalette(opts ...Option) *Palette {
	p := &Palette{
		teams:    Teams(),
		fallback: DefaultColour,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks that every colour of the palette resolves.
func (p *Palette) Validate() error {
	if _, err := RGBA(p.fallback); err != nil {
		return fmt.Errorf("default colour: %w", err)
	}
	for team, c := range p.teams {
		if _, err := RGBA(c); err != nil {
			return fmt.Errorf("team %s: %w", team, err)
		}
	}
	return nil
}

// Colour returns the colour of team. The boolean is false when the default
// colour was used.
func (p *Palette) Colour(team string) (string, bool) {
	if c, ok := p.teams[team]; ok {
		return c, true
	}
	return p.fallback, false
}

// WithAlpha resolves colour and replaces its alpha channel with a in [0, 1].
// The result is non-premultiplied.
func WithAlpha(colour string, a float64) (color.NRGBA, error) {
	rgba, err := RGBA(colour)
	if err != nil {
		return color.NRGBA{}, err
	}
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(math.Round(a * 0xff))}, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
