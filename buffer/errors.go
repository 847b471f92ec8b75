package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrIndexOutOfRange is returned when reading at or beyond the
	// buffer's length, or at a negative index.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupported is returned for structural container operations
	// that indexed string access does not define.
	ErrUnsupported = errors.New("operation not supported on string buffer")

	// ErrUnsupportedChunk indicates a chunk that matches no known
	// variant. It marks a construction bug, never a user error, and is
	// raised by panic.
	ErrUnsupportedChunk = errors.New("unsupported chunk type")
)
