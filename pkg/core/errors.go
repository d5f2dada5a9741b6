package core

import "errors"

// Common errors.
var (
	// ErrUnsupportedBackend is returned when an operation needs a backend
	// whose feature check failed.
	ErrUnsupportedBackend = errors.New("storage backend not supported")

	// ErrNoActiveBackend is returned when no root has been established.
	ErrNoActiveBackend = errors.New("no directory selected")

	// ErrBackendActive is returned when activating a backend while another
	// one is still active. Disconnect first.
	ErrBackendActive = errors.New("a storage backend is already active")

	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("storage i/o error")

	// ErrInvalidPath is returned for logical paths with empty, "." or ".."
	// segments.
	ErrInvalidPath = errors.New("invalid logical path")

	// ErrTypeMismatch is returned when a path step names a file where a
	// directory is expected, or the other way around.
	ErrTypeMismatch = errors.New("entry has the wrong kind")
)
