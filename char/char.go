// Package char provides the hybrid character model used by the string
// engine: one logical character that is either a raw 8-bit byte or a
// Unicode code point. Sequences may freely mix both kinds; conversion
// between the two representations is parameterized by a codec.
package char

// binaryThreshold marks the start of the byte sub-range that cannot be
// widened to text without an explicit decode step.
const binaryThreshold = 0x80

// Char is one logical character: a raw byte or a Unicode code point.
// Exactly one representation is active. The zero value is the byte 0.
type Char struct {
	v      rune
	isRune bool
}

// FromByte creates a Char holding a raw byte.
func FromByte(b byte) Char {
	return Char{v: rune(b)}
}

// FromRune creates a Char holding a Unicode code point.
func FromRune(r rune) Char {
	return Char{v: r, isRune: true}
}

// FromInt creates a Char from an arbitrary ordinal. Values in the byte
// range become raw bytes; larger values become code points. This mirrors
// byte-transparent string semantics where small ordinals are raw bytes.
func FromInt(v int64) Char {
	if v >= 0 && v <= 0xFF {
		return Char{v: rune(v)}
	}
	return Char{v: rune(v), isRune: true}
}

// IsByte reports whether the Char holds a raw byte.
func (c Char) IsByte() bool {
	return !c.isRune
}

// IsRune reports whether the Char holds a Unicode code point.
func (c Char) IsRune() bool {
	return c.isRune
}

// IsBinary reports whether the Char holds a byte that must never be
// reinterpreted as text. Bytes below the threshold are plain ASCII and
// may be safely widened; bytes at or above it require a decode step.
func (c Char) IsBinary() bool {
	return !c.isRune && c.v >= binaryThreshold
}

// Byte returns the Char as a raw byte. A code point is narrowed to its
// low 8 bits; this is lossy.
func (c Char) Byte() byte {
	return byte(c.v)
}

// Rune returns the Char as a code point. A raw byte is widened as
// Latin-1.
func (c Char) Rune() rune {
	if c.isRune {
		return c.v
	}
	return c.v & 0xFF
}
