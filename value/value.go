package value

import (
	"bytes"

	"github.com/rivo/uniseg"

	"github.com/dshills/strand/buffer"
	"github.com/dshills/strand/char"
	"github.com/dshills/strand/codec"
)

// String is the value-level wrapper around a hybrid string buffer.
// Assignment is a cheap share of the underlying buffer; any mutation
// funnels through a write barrier that breaks the share first, so
// logically independent values never observe each other's writes.
//
// Like the buffer package, String assumes single-threaded value
// semantics and is not safe for concurrent use.
type String struct {
	buf *buffer.Buffer
}

// New creates an empty string value.
func New() *String {
	return &String{buf: buffer.New()}
}

// FromText creates a string value from literal text.
func FromText(s string) *String {
	return &String{buf: buffer.FromText(s)}
}

// FromBytes creates a string value from raw bytes. The input is copied.
func FromBytes(p []byte) *String {
	return &String{buf: buffer.FromBytes(p)}
}

// FromTwo creates a string value from two literals as a two-chunk
// buffer, skipping the intermediate single-chunk state.
func FromTwo(a, b string) *String {
	buf := buffer.FromText(a)
	buf.AppendText(b)
	return &String{buf: buf}
}

// FromChar creates a one-character string value. A binary byte becomes
// a one-byte buffer; everything else becomes one-character text, since
// text is the preferred representation when safe.
func FromChar(c char.Char) *String {
	if c.IsBinary() {
		return FromBytes([]byte{c.Byte()})
	}
	return FromText(string(c.Rune()))
}

// Copy returns a new value sharing this value's buffer. O(1); no data
// is copied until one of the two is mutated.
func (s *String) Copy() *String {
	return &String{buf: s.buf.Share()}
}

// Release surrenders this value's ownership of the buffer.
func (s *String) Release() {
	s.buf.Release()
}

// Buffer exposes the underlying buffer. The returned buffer must be
// treated as read-only; use the String mutators for writes.
func (s *String) Buffer() *buffer.Buffer {
	return s.buf
}

// exclusive is the write barrier: every mutation goes through it.
func (s *String) exclusive() *buffer.Buffer {
	s.buf = s.buf.Exclusive()
	return s.buf
}

// Len returns the number of logical characters.
func (s *String) Len() int {
	return s.buf.Len()
}

// IsEmpty returns true if the value holds no content.
func (s *String) IsEmpty() bool {
	return s.buf.IsEmpty()
}

// Text returns the content flattened to text via the codec.
func (s *String) Text(cd codec.Codec) string {
	return s.buf.Text(cd)
}

// Bytes returns the content flattened to bytes via the codec.
func (s *String) Bytes(cd codec.Codec) []byte {
	return s.buf.Bytes(cd)
}

// Bool returns the value's truthiness (first-chunk rule; see
// buffer.Bool).
func (s *String) Bool() bool {
	return s.buf.Bool()
}

// String implements fmt.Stringer over the UTF-8 codec.
func (s *String) String() string {
	return s.buf.Text(codec.UTF8)
}

// Equal reports whether two values hold the same logical content,
// compared in byte form under the UTF-8 codec.
func (s *String) Equal(o *String) bool {
	if s.Len() != o.Len() {
		return false
	}
	return bytes.Equal(s.Bytes(codec.UTF8), o.Bytes(codec.UTF8))
}

// Width returns the monospace display width of the flattened text.
func (s *String) Width() int {
	return uniseg.StringWidth(s.String())
}

// CharAt returns the character at the given index.
func (s *String) CharAt(index int) (char.Char, error) {
	return s.buf.Get(index)
}

// SetChar writes one character at the given index, breaking any share
// first. Writes at or beyond the current length extend the value;
// negative-index writes are discarded (see buffer.Set).
func (s *String) SetChar(index int, c char.Char) {
	s.exclusive().Set(index, c)
}

// AppendText appends literal text.
func (s *String) AppendText(t string) {
	s.exclusive().AppendText(t)
}

// AppendBytes appends raw bytes.
func (s *String) AppendBytes(p []byte) {
	s.exclusive().AppendBytes(p)
}

// AppendChar appends one character.
func (s *String) AppendChar(c char.Char) {
	s.exclusive().AppendChar(c)
}

// AppendString appends another string value. The other value's buffer
// is shared, not copied, when it is list-backed.
func (s *String) AppendString(o *String) {
	s.exclusive().AppendBuffer(o.buf)
}

// Output streams the content to the sink in order without flattening.
func (s *String) Output(sink buffer.Sink, cd codec.Codec) error {
	return s.buf.Output(sink, cd)
}
