package buffer

import (
	"strings"

	"github.com/dshills/strand/char"
	"github.com/dshills/strand/codec"
)

// Text returns the buffer content flattened to a single text form, with
// raw-byte content decoded through the codec. The result is memoized
// per codec until the next mutation; calling Text twice without an
// intervening mutation returns equal results.
func (b *Buffer) Text(cd codec.Codec) string {
	if b.hasText && b.textCodec == cd {
		return b.text
	}

	var out string
	switch len(b.chunks) {
	case 0:
		out = ""
	case 1:
		out = chunkText(b.chunks[0], cd)
	default:
		var sb strings.Builder
		sb.Grow(b.Len())
		for _, c := range b.chunks {
			sb.WriteString(chunkText(c, cd))
		}
		out = sb.String()
	}

	b.text = out
	b.textCodec = cd
	b.hasText = true
	return out
}

func chunkText(c chunk, cd codec.Codec) string {
	switch c := c.(type) {
	case textChunk:
		return c.data
	case bytesChunk:
		return cd.Decode(c.data)
	case hybridChunk:
		return char.DecodeRuns(c.data, cd)
	case nestedChunk:
		return c.buf.Text(cd)
	default:
		panic(ErrUnsupportedChunk)
	}
}

// Bytes returns the buffer content flattened to a single byte form,
// with text content encoded through the codec.
func (b *Buffer) Bytes(cd codec.Codec) []byte {
	out := make([]byte, 0, cd.EncodedLen(b.Len()))
	for _, c := range b.chunks {
		out = appendChunkBytes(out, c, cd)
	}
	return out
}

func appendChunkBytes(out []byte, c chunk, cd codec.Codec) []byte {
	switch c := c.(type) {
	case textChunk:
		return append(out, cd.Encode(c.data)...)
	case bytesChunk:
		return append(out, c.data...)
	case hybridChunk:
		return append(out, char.EncodeRuns(c.data, cd)...)
	case nestedChunk:
		for _, nc := range c.buf.chunks {
			out = appendChunkBytes(out, nc, cd)
		}
		return out
	default:
		panic(ErrUnsupportedChunk)
	}
}

// Bool returns the buffer's truthiness. Only the first chunk is
// consulted: a string is false exactly when its natural prefix is empty
// or "0". This first-chunk-only rule is deliberate and must not be
// generalized to scanning the whole buffer.
func (b *Buffer) Bool() bool {
	if len(b.chunks) == 0 {
		return false
	}
	return chunkBool(b.chunks[0])
}

func chunkBool(c chunk) bool {
	switch c := c.(type) {
	case textChunk:
		return c.data != "" && c.data != "0"
	case bytesChunk:
		return !(len(c.data) == 0 || (len(c.data) == 1 && c.data[0] == '0'))
	case hybridChunk:
		if len(c.data) == 0 {
			return false
		}
		if len(c.data) == 1 {
			e := c.data[0]
			return !(e.IsByte() && e.Byte() == '0' || e.IsRune() && e.Rune() == '0')
		}
		return true
	case nestedChunk:
		return c.buf.Bool()
	default:
		panic(ErrUnsupportedChunk)
	}
}
