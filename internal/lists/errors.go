package lists

import (
	"errors"
	"fmt"

	"github.com/mmynk/topten/internal/auth"
)

var (
	// ErrUnauthenticated means no caller identity could be resolved.
	ErrUnauthenticated = auth.ErrUnauthenticated
	// ErrUnauthorized means the owner secret was missing or wrong.
	ErrUnauthorized = errors.New("owner secret does not match")
	// ErrForbidden means the caller is not a member of the list.
	ErrForbidden = errors.New("not a member of this list")
	// ErrNotFound means the list, item or criterion does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a criterion with the same name already exists.
	ErrConflict = errors.New("already exists")
	// ErrLocked means the list does not accept new items.
	ErrLocked = errors.New("list is locked")
	// ErrInvalidArgument means the input failed validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage failure")
)

// StorageError wraps a backend failure. Its details are for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorage) true for any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
