package tempfile

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument indicates missing content or an argument of an
	// unusable type. It is returned before any I/O is attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidFormat indicates CSV rows whose shape cannot be formatted.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound indicates that a copy source does not exist.
	ErrNotFound = errors.New("not found")
)
