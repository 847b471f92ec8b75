package buffer

import (
	"unicode/utf8"

	"github.com/dshills/strand/char"
)

// chunk is one contiguous segment of buffer content. Exactly four
// variants exist: textChunk, bytesChunk, hybridChunk, nestedChunk.
// Chunks are never empty; the empty buffer holds no chunk at all.
type chunk interface {
	// count returns the number of logical elements in the chunk.
	count() int

	sealedChunk()
}

// textChunk holds immutable text. The element count is computed eagerly
// so count stays O(1).
type textChunk struct {
	data  string
	runes int
	ascii bool
}

func newTextChunk(s string) textChunk {
	n := utf8.RuneCountInString(s)
	return textChunk{data: s, runes: n, ascii: n == len(s)}
}

func (c textChunk) count() int   { return c.runes }
func (c textChunk) sealedChunk() {}

// runeAt returns the i-th code point. The caller guarantees i < runes.
func (c textChunk) runeAt(i int) rune {
	if c.ascii {
		return rune(c.data[i])
	}
	for _, r := range c.data {
		if i == 0 {
			return r
		}
		i--
	}
	return utf8.RuneError
}

// withRune returns a copy of the chunk with the i-th code point
// replaced. Text data is immutable, so replacement builds a new string.
func (c textChunk) withRune(i int, r rune) textChunk {
	out := make([]rune, 0, c.runes)
	for _, cr := range c.data {
		out = append(out, cr)
	}
	out[i] = r
	return newTextChunk(string(out))
}

// toHybrid promotes the text to a hybrid sequence of code points.
func (c textChunk) toHybrid() hybridChunk {
	out := make([]char.Char, 0, c.runes)
	for _, r := range c.data {
		out = append(out, char.FromRune(r))
	}
	return hybridChunk{data: out}
}

// bytesChunk holds raw bytes. The slice is owned by the chunk.
type bytesChunk struct {
	data []byte
}

func (c bytesChunk) count() int   { return len(c.data) }
func (c bytesChunk) sealedChunk() {}

// toHybrid promotes the bytes to a hybrid sequence of raw bytes.
func (c bytesChunk) toHybrid() hybridChunk {
	out := make([]char.Char, len(c.data))
	for i, b := range c.data {
		out[i] = char.FromByte(b)
	}
	return hybridChunk{data: out}
}

// hybridChunk holds a mixed run of raw bytes and code points. Used only
// where a localized write has mixed the two kinds.
type hybridChunk struct {
	data []char.Char
}

func (c hybridChunk) count() int   { return len(c.data) }
func (c hybridChunk) sealedChunk() {}

// nestedChunk holds a previously built, still-shared buffer.
type nestedChunk struct {
	buf *Buffer
}

func (c nestedChunk) count() int   { return c.buf.Len() }
func (c nestedChunk) sealedChunk() {}

// cloneChunk produces a copy safe to mutate independently. Text chunks
// are immutable and shared as-is. Nested buffers are shared by count,
// not flattened; COW stays shallow-safe through another level of
// sharing.
func cloneChunk(c chunk) chunk {
	switch c := c.(type) {
	case textChunk:
		return c
	case bytesChunk:
		return bytesChunk{data: append([]byte(nil), c.data...)}
	case hybridChunk:
		return hybridChunk{data: append([]char.Char(nil), c.data...)}
	case nestedChunk:
		return nestedChunk{buf: c.buf.Share()}
	default:
		panic(ErrUnsupportedChunk)
	}
}

// chunkMutable reports whether the chunk requires independent cloning
// when a share is broken. Plain text chunks never do.
func chunkMutable(c chunk) bool {
	switch c.(type) {
	case textChunk:
		return false
	case bytesChunk, hybridChunk, nestedChunk:
		return true
	default:
		panic(ErrUnsupportedChunk)
	}
}
