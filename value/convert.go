package value

import (
	"github.com/dshills/strand/char"
)

// Converter adapts the enclosing runtime's dynamic values at the
// engine boundary. The engine never inspects runtime values itself;
// heterogeneous content enters only through these two conversions.
type Converter interface {
	// ToText converts an arbitrary runtime value to text.
	ToText(v any) (string, error)

	// ToChar converts an arbitrary runtime value to one hybrid
	// character.
	ToChar(v any) (char.Char, error)
}

// AppendValue appends an arbitrary runtime value. Known engine types
// append directly; everything else is converted to text through the
// Converter.
func (s *String) AppendValue(v any, conv Converter) error {
	switch v := v.(type) {
	case *String:
		s.AppendString(v)
		return nil
	case string:
		s.AppendText(v)
		return nil
	case []byte:
		s.AppendBytes(v)
		return nil
	case char.Char:
		s.AppendChar(v)
		return nil
	}

	t, err := conv.ToText(v)
	if err != nil {
		return err
	}
	s.AppendText(t)
	return nil
}
