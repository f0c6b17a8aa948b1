package render

import "errors"

// ErrInvalidColour is returned when a team or pitch colour cannot be resolved.
var ErrInvalidColour = errors.New("invalid colour")
