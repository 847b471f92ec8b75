package value

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dshills/strand/buffer"
	"github.com/dshills/strand/char"
)

// ErrInvalidKey is returned when a container key is neither an integer
// nor a numeric string.
var ErrInvalidKey = errors.New("invalid string offset")

// keyIndex normalizes a container key to an element index.
func keyIndex(key any) (int, error) {
	switch k := key.(type) {
	case int:
		return k, nil
	case int64:
		return int(k), nil
	case string:
		n, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidKey, k)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidKey, key)
	}
}

// Item reads one element through the keyed-container interface. Keys
// are integers or numeric strings. An out-of-range read returns an
// empty string value rather than failing, matching the container
// contract of the enclosing runtime.
func (s *String) Item(key any) (*String, error) {
	idx, err := keyIndex(key)
	if err != nil {
		return nil, err
	}

	c, err := s.buf.Get(idx)
	if err != nil {
		if errors.Is(err, buffer.ErrIndexOutOfRange) {
			return New(), nil
		}
		return nil, err
	}
	return FromChar(c), nil
}

// SetItem writes one element through the keyed-container interface.
// Writes beyond the end extend the value; negative-index writes are
// discarded.
func (s *String) SetItem(key any, c char.Char) error {
	idx, err := keyIndex(key)
	if err != nil {
		return err
	}
	s.SetChar(idx, c)
	return nil
}

// SetItemValue writes an element taken from an arbitrary runtime value,
// converted through the supplied Converter.
func (s *String) SetItemValue(key any, v any, conv Converter) error {
	c, err := conv.ToChar(v)
	if err != nil {
		return err
	}
	return s.SetItem(key, c)
}

// Structural container operations. Indexed string access has no notion
// of key insertion or removal, only positional overwrite or end-append,
// so these are defined as unsupported.

// InsertItem is unsupported on string values.
func (s *String) InsertItem(key any, v *String) error {
	return buffer.ErrUnsupported
}

// RemoveItem is unsupported on string values.
func (s *String) RemoveItem(key any) error {
	return buffer.ErrUnsupported
}

// ItemAlias is unsupported on string values; element slots cannot be
// aliased.
func (s *String) ItemAlias(key any) (*String, error) {
	return nil, buffer.ErrUnsupported
}

// PushItem is unsupported on string values; use the append operations
// instead.
func (s *String) PushItem(v *String) error {
	return buffer.ErrUnsupported
}
