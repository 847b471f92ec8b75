package lua

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strand/char"
	"github.com/dshills/strand/value"
)

// Bridge implements value.Converter over Lua runtime values. It is the
// concrete form of the engine's dynamic-value conversion boundary:
// heterogeneous Lua content enters buffers only through it.
type Bridge struct{}

var _ value.Converter = Bridge{}

// ToText converts a Lua value to text. Numbers format the way the
// runtime prints them, booleans become "1" or "", nil becomes "".
func (Bridge) ToText(v any) (string, error) {
	switch lv := v.(type) {
	case lua.LString:
		return string(lv), nil
	case lua.LNumber:
		f := float64(lv)
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10), nil
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case lua.LBool:
		if lv {
			return "1", nil
		}
		return "", nil
	case *lua.LNilType:
		return "", nil
	case *lua.LUserData:
		if s, ok := lv.Value.(*value.String); ok {
			return s.String(), nil
		}
		return "", fmt.Errorf("%w: userdata %T", ErrNotConvertible, lv.Value)
	case nil:
		return "", nil
	case lua.LValue:
		return "", fmt.Errorf("%w: %s", ErrNotConvertible, lv.Type())
	default:
		return "", fmt.Errorf("%w: %T", ErrNotConvertible, v)
	}
}

// ToChar converts a Lua value to one hybrid character. Numbers are
// ordinals (byte range stays a raw byte); strings contribute their
// first character.
func (Bridge) ToChar(v any) (char.Char, error) {
	switch lv := v.(type) {
	case lua.LNumber:
		return char.FromInt(int64(lv)), nil
	case lua.LString:
		return firstChar(string(lv))
	case *lua.LUserData:
		if s, ok := lv.Value.(*value.String); ok {
			c, err := s.CharAt(0)
			if err != nil {
				return char.Char{}, ErrEmptyAssignment
			}
			return c, nil
		}
		return char.Char{}, fmt.Errorf("%w: userdata %T", ErrNotConvertible, lv.Value)
	default:
		return char.Char{}, fmt.Errorf("%w: %T", ErrNotConvertible, v)
	}
}

// firstChar extracts the first character of a literal. A byte that is
// not valid UTF-8 stays a raw byte.
func firstChar(s string) (char.Char, error) {
	if len(s) == 0 {
		return char.Char{}, ErrEmptyAssignment
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return char.FromByte(s[0]), nil
	}
	return char.FromRune(r), nil
}
