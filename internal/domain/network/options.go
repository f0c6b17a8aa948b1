package network

// Option applies a configuration option to the Encoder.
type Option func(*Encoder)

// WithMinTransparency sets the alpha floor of the least frequent link.
// Values outside [0, 1) are ignored.
func WithMinTransparency(v float64) Option {
	return func(e *Encoder) {
		if v >= 0 && v < 1 {
			e.minTransparency = v
		}
	}
}
