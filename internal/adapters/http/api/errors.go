package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/passnet/internal/adapters/statsbomb"
	service "github.com/okian/passnet/internal/app"
	"github.com/okian/passnet/internal/domain/network"
	"github.com/okian/passnet/internal/domain/types"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrBadMatchID = errors.New("invalid match id")
)

// WrapKind annotates err with the operation and an error kind that callers
// can match with errors.Is.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// NewKind returns an error of the given kind for op.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// classify maps domain and adapter errors to an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrBadMatchID), errors.Is(err, types.ErrInvalidSide):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, service.ErrMatchNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, network.ErrNoPasses):
		return http.StatusUnprocessableEntity, "no_passes"
	case errors.Is(err, service.ErrBusy):
		return http.StatusServiceUnavailable, "busy"
	case errors.Is(err, service.ErrNotStarted):
		return http.StatusServiceUnavailable, "not_ready"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream_timeout"
	case errors.Is(err, statsbomb.ErrNotFound),
		errors.Is(err, statsbomb.ErrUpstream),
		errors.Is(err, statsbomb.ErrDecode):
		return http.StatusBadGateway, "upstream"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
