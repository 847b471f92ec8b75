package lua

import "errors"

// Errors for Lua value conversion.
var (
	// ErrNotConvertible is returned when a Lua value has no text or
	// character conversion.
	ErrNotConvertible = errors.New("lua value is not convertible")

	// ErrEmptyAssignment is returned when an empty string is assigned
	// to a character slot.
	ErrEmptyAssignment = errors.New("cannot assign empty string to character slot")
)
