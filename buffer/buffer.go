package buffer

import (
	"github.com/dshills/strand/char"
	"github.com/dshills/strand/codec"
)

// Buffer is a rope-like container for hybrid byte/text string content.
// Content is an ordered sequence of chunks; appends grow the chunk list
// rather than copying existing data, and whole buffers are shared
// between owners by reference count with copy-on-write semantics.
//
// A Buffer is not safe for concurrent use. The engine assumes
// single-threaded value semantics: share counts are plain integers and
// no operation takes a lock. Callers that move buffers across
// goroutines must provide their own synchronization.
type Buffer struct {
	chunks []chunk

	// shares is the number of owners treating this buffer as
	// read-only. Mutation requires shares == 1; see Exclusive.
	shares int

	// binary is set once any raw-byte content has been added. Sticky
	// for the buffer's lifetime.
	binary bool

	// mutable is set once any chunk requires independent cloning on a
	// share break. Sticky for the buffer's lifetime.
	mutable bool

	// Memoized derived data, cleared on every mutation.
	length    int
	hasLength bool
	text      string
	textCodec codec.Codec
	hasText   bool
}

// New creates an empty buffer with a single owner.
func New() *Buffer {
	return &Buffer{shares: 1}
}

// FromText creates a buffer holding one text chunk.
func FromText(s string) *Buffer {
	b := New()
	b.AppendText(s)
	return b
}

// FromBytes creates a buffer holding one raw-byte chunk. The input is
// copied.
func FromBytes(p []byte) *Buffer {
	b := New()
	b.AppendBytes(p)
	return b
}

// invalidate clears the memoized length and flattened text.
func (b *Buffer) invalidate() {
	b.hasLength = false
	b.hasText = false
	b.text = ""
	b.textCodec = nil
}

// appendChunk adds a chunk to the end of the buffer. Empty chunks are
// dropped. The backing list starts at capacity 2 and doubles when full;
// it never shrinks.
func (b *Buffer) appendChunk(c chunk) {
	if c == nil || c.count() == 0 {
		return
	}

	b.invalidate()
	if chunkMutable(c) {
		b.mutable = true
	}

	if b.chunks == nil {
		b.chunks = make([]chunk, 0, 2)
	} else if len(b.chunks) == cap(b.chunks) {
		next := make([]chunk, len(b.chunks), cap(b.chunks)*2)
		copy(next, b.chunks)
		b.chunks = next
	}
	b.chunks = append(b.chunks, c)
}

// AppendText appends text content. The string is held as an immutable
// text chunk; no copy is made.
func (b *Buffer) AppendText(s string) {
	if len(s) == 0 {
		return
	}
	b.appendChunk(newTextChunk(s))
}

// AppendBytes appends raw byte content. The input is copied in; the
// buffer never aliases caller-owned byte slices.
func (b *Buffer) AppendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	b.binary = true
	b.appendChunk(bytesChunk{data: append([]byte(nil), p...)})
}

// AppendChar appends one hybrid character. A raw byte becomes a
// one-byte chunk and marks the buffer binary; a code point becomes a
// one-character text chunk.
func (b *Buffer) AppendChar(c char.Char) {
	if c.IsByte() {
		b.binary = true
		b.appendChunk(bytesChunk{data: []byte{c.Byte()}})
		return
	}
	b.appendChunk(newTextChunk(string(c.Rune())))
}

// AppendBuffer appends the content of another buffer. A list-backed
// source is nested as a single shared chunk in O(1); a source holding
// one inline chunk has that chunk deep-copied in, so the destination
// never aliases mutable state it does not independently own. The
// source's binary/mutable flags propagate.
func (b *Buffer) AppendBuffer(src *Buffer) {
	if src == nil || len(src.chunks) == 0 {
		return
	}

	if src.binary {
		b.binary = true
	}
	if src.mutable {
		b.mutable = true
	}

	if len(src.chunks) == 1 {
		b.appendChunk(cloneChunk(src.chunks[0]))
		return
	}
	if src == b {
		// Appending a buffer to itself must not nest a cycle; nest a
		// structural snapshot instead.
		snap := &Buffer{shares: 1, binary: b.binary, mutable: b.mutable}
		snap.chunks = make([]chunk, len(b.chunks))
		for i, c := range b.chunks {
			snap.chunks[i] = cloneChunk(c)
		}
		b.appendChunk(nestedChunk{buf: snap})
		return
	}
	b.appendChunk(nestedChunk{buf: src.Share()})
}

// Len returns the total number of logical elements. The sum over all
// chunks is memoized between mutations.
func (b *Buffer) Len() int {
	if b.hasLength {
		return b.length
	}
	n := 0
	for _, c := range b.chunks {
		n += c.count()
	}
	b.length = n
	b.hasLength = true
	return n
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.chunks) == 0
}

// ContainsBinary reports whether any raw-byte content has ever been
// added to this buffer.
func (b *Buffer) ContainsBinary() bool {
	return b.binary
}

// chunkCount returns the number of chunks. Debug aid.
func (b *Buffer) chunkCount() int {
	return len(b.chunks)
}
