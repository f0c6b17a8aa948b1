package render

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithPitchColour sets the pitch background colour.
func WithPitchColour(c string) Option {
	return func(r *Renderer) {
		if c != "" {
			r.pitchColour = c
		}
	}
}

// WithLineColour sets the colour of the pitch markings.
func WithLineColour(c string) Option {
	return func(r *Renderer) {
		if c != "" {
			r.lineColour = c
		}
	}
}

// WithScale sets the number of pixels per pitch unit.
func WithScale(scale int) Option {
	return func(r *Renderer) {
		if scale > 0 {
			r.scale = scale
		}
	}
}
