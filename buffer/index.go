package buffer

import (
	"strings"

	"github.com/dshills/strand/char"
)

// Get returns the element at the given index. Reading a negative index
// or at/beyond the buffer's length returns ErrIndexOutOfRange.
func (b *Buffer) Get(index int) (char.Char, error) {
	if index < 0 {
		return char.Char{}, ErrIndexOutOfRange
	}

	rem := index
	for _, c := range b.chunks {
		n := c.count()
		if rem < n {
			return chunkGet(c, rem)
		}
		rem -= n
	}
	return char.Char{}, ErrIndexOutOfRange
}

func chunkGet(c chunk, i int) (char.Char, error) {
	switch c := c.(type) {
	case textChunk:
		return char.FromRune(c.runeAt(i)), nil
	case bytesChunk:
		return char.FromByte(c.data[i]), nil
	case hybridChunk:
		return c.data[i], nil
	case nestedChunk:
		return c.buf.Get(i)
	default:
		panic(ErrUnsupportedChunk)
	}
}

// Set writes one element at the given index. Writing at the current
// length appends; writing beyond it first pads the gap with NUL
// characters; writing a byte inside a text chunk (or a code point
// inside a byte chunk) promotes that chunk to a hybrid chunk so only
// the touched run changes representation. A negative index write is
// silently discarded; this matches the runtime's discard-negative-write
// convention and is specified behavior, not an oversight.
//
// The caller must hold the buffer exclusively (see Exclusive); Set does
// not perform the copy-on-write check itself, except when recursing
// into a nested shared buffer.
func (b *Buffer) Set(index int, v char.Char) {
	if index < 0 {
		return
	}

	n := b.Len()
	if index >= n {
		if index > n {
			b.appendChunk(newTextChunk(strings.Repeat("\x00", index-n)))
		}
		b.AppendChar(v)
		return
	}

	b.invalidate()
	b.mutable = true
	if v.IsByte() {
		b.binary = true
	}

	rem := index
	for i, c := range b.chunks {
		cn := c.count()
		if rem < cn {
			b.chunks[i] = chunkSet(c, rem, v)
			return
		}
		rem -= cn
	}
}

// chunkSet writes an element into one chunk, promoting the chunk's
// representation when the write mixes kinds.
func chunkSet(c chunk, i int, v char.Char) chunk {
	switch c := c.(type) {
	case textChunk:
		if v.IsRune() {
			return c.withRune(i, v.Rune())
		}
		h := c.toHybrid()
		h.data[i] = v
		return h
	case bytesChunk:
		if v.IsByte() {
			c.data[i] = v.Byte()
			return c
		}
		h := c.toHybrid()
		h.data[i] = v
		return h
	case hybridChunk:
		c.data[i] = v
		return c
	case nestedChunk:
		// The nested buffer may still be shared; break the share before
		// writing so the mutation is never observable elsewhere.
		nb := c.buf.Exclusive()
		nb.Set(i, v)
		return nestedChunk{buf: nb}
	default:
		panic(ErrUnsupportedChunk)
	}
}
