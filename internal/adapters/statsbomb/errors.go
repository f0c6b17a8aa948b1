package statsbomb

import "errors"

// Sentinel kinds for event source errors.
var (
	ErrNotFound = errors.New("resource not found")
	ErrUpstream = errors.New("upstream request failed")
	ErrDecode   = errors.New("decode failed")
)
