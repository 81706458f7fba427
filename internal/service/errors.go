package service

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/mmynk/topten/internal/lists"
)

// errInternal is all clients learn about storage and other unexpected failures.
var errInternal = errors.New("internal error")

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, lists.ErrUnauthenticated):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, lists.ErrUnauthorized), errors.Is(err, lists.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, lists.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, lists.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, lists.ErrLocked):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, lists.ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, errInternal)
	}
}
