package network

import "errors"

// Sentinel kinds for network errors.
var (
	// ErrNoPasses marks a team without any qualifying pass-link. Scaling by
	// the maximum pass count is undefined in that case.
	ErrNoPasses = errors.New("no qualifying passes")
)
