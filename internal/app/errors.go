package service

import "errors"

// Sentinel errors returned by the Service.
var (
	ErrMatchNotFound = errors.New("match not found")
	ErrNotStarted    = errors.New("service not started")
	ErrBusy          = errors.New("too many renders in flight")
)
