// Package codec defines the byte/text conversion boundary for the string
// engine. The engine itself is encoding-agnostic; every conversion
// between raw bytes and text is parameterized by a Codec. Stock codecs
// cover UTF-8, Latin-1, and ASCII; FromEncoding adapts any
// golang.org/x/text encoding.
package codec

import (
	"strings"
	"unicode/utf8"

	gdencoding "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Codec is a bidirectional byte/text converter. Decode and Encode are
// total: invalid or unrepresentable input maps to a replacement, never
// an error.
type Codec interface {
	// Decode interprets raw bytes as text.
	Decode(data []byte) string

	// Encode converts text to raw bytes.
	Encode(text string) []byte

	// DecodedLen returns an upper bound on the byte length of the text
	// produced by decoding n bytes. Used to pre-size batch buffers.
	DecodedLen(n int) int

	// EncodedLen returns an upper bound on the number of bytes produced
	// by encoding n bytes of text.
	EncodedLen(n int) int
}

// Stock codecs.
var (
	// UTF8 treats bytes as UTF-8. Invalid sequences decode to U+FFFD,
	// one replacement per offending byte.
	UTF8 Codec = utf8Codec{}

	// Latin1 maps bytes 0x00-0xFF to U+0000-U+00FF and back.
	Latin1 = FromEncoding(charmap.ISO8859_1)

	// ASCII maps 7-bit bytes; everything else becomes a replacement.
	ASCII = FromEncoding(gdencoding.ASCII)
)

type utf8Codec struct{}

func (utf8Codec) Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var sb strings.Builder
	sb.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			// One replacement per invalid byte.
			sb.WriteRune(utf8.RuneError)
			data = data[1:]
			continue
		}
		sb.WriteRune(r)
		data = data[size:]
	}
	return sb.String()
}

func (utf8Codec) Encode(text string) []byte {
	return []byte(text)
}

func (utf8Codec) DecodedLen(n int) int {
	// Worst case: every byte is invalid and becomes a 3-byte U+FFFD.
	return n * 3
}

func (utf8Codec) EncodedLen(n int) int {
	return n
}

// xtextCodec adapts a golang.org/x/text encoding.
type xtextCodec struct {
	enc encoding.Encoding
}

// FromEncoding wraps an x/text encoding as a Codec. Runes the encoding
// cannot represent are replaced rather than rejected.
func FromEncoding(enc encoding.Encoding) Codec {
	return &xtextCodec{enc: enc}
}

func (c *xtextCodec) Decode(data []byte) string {
	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		// Decoders with replacement semantics do not fail; treat a
		// failure as opaque Latin-1 style passthrough.
		return string(data)
	}
	return string(out)
}

func (c *xtextCodec) Encode(text string) []byte {
	out, err := encoding.ReplaceUnsupported(c.enc.NewEncoder()).Bytes([]byte(text))
	if err != nil {
		return []byte(text)
	}
	return out
}

func (c *xtextCodec) DecodedLen(n int) int {
	return n * utf8.UTFMax
}

func (c *xtextCodec) EncodedLen(n int) int {
	return n * utf8.UTFMax
}
