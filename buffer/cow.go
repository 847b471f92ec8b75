package buffer

// Share registers a new owner of this buffer and returns it. Sharing is
// O(1); no data is copied. A shared buffer must be treated as read-only
// until Exclusive is called.
func (b *Buffer) Share() *Buffer {
	b.shares++
	return b
}

// Shares returns the current owner count. Debug aid.
func (b *Buffer) Shares() int {
	return b.shares
}

// Exclusive returns a buffer the caller may mutate freely. If this
// buffer has a single owner it is returned unchanged. Otherwise the
// caller's share is surrendered and a structural clone is returned: the
// chunk list is copied, byte and hybrid chunks are duplicated
// element-wise, nested buffers are re-shared rather than flattened, and
// plain text chunks are shared as immutable content. After Exclusive,
// mutating the returned buffer is never observable through any other
// existing reference.
func (b *Buffer) Exclusive() *Buffer {
	if b.shares <= 1 {
		return b
	}

	b.shares--
	clone := &Buffer{
		shares:  1,
		binary:  b.binary,
		mutable: b.mutable,

		length:    b.length,
		hasLength: b.hasLength,
		text:      b.text,
		textCodec: b.textCodec,
		hasText:   b.hasText,
	}
	if len(b.chunks) > 0 {
		clone.chunks = make([]chunk, len(b.chunks), cap(b.chunks))
		for i, c := range b.chunks {
			clone.chunks[i] = cloneChunk(c)
		}
	}
	return clone
}

// Release surrenders one owner's share. When the last share is
// released, nested buffers are released in turn and the chunk list is
// dropped so the garbage collector can reclaim shared storage promptly.
func (b *Buffer) Release() {
	b.shares--
	if b.shares > 0 {
		return
	}
	for _, c := range b.chunks {
		if nc, ok := c.(nestedChunk); ok {
			nc.buf.Release()
		}
	}
	b.chunks = nil
	b.invalidate()
}
