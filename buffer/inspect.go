package buffer

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Inspect returns a JSON description of the buffer's physical
// structure: share count, sticky flags, and the kind and element count
// of every chunk, recursing into nested buffers. Debug aid for
// examining chunk boundaries and COW sharing; the logical content is
// not included.
func (b *Buffer) Inspect() string {
	out := "{}"
	out, _ = sjson.Set(out, "shares", b.shares)
	out, _ = sjson.Set(out, "binary", b.binary)
	out, _ = sjson.Set(out, "mutable", b.mutable)
	out, _ = sjson.Set(out, "length", b.Len())
	out, _ = sjson.SetRaw(out, "chunks", "[]")

	for i, c := range b.chunks {
		prefix := fmt.Sprintf("chunks.%d", i)
		out, _ = sjson.Set(out, prefix+".kind", chunkKindName(c))
		out, _ = sjson.Set(out, prefix+".count", c.count())
		if nc, ok := c.(nestedChunk); ok {
			out, _ = sjson.SetRaw(out, prefix+".buffer", nc.buf.Inspect())
		}
	}
	return out
}

func chunkKindName(c chunk) string {
	switch c.(type) {
	case textChunk:
		return "text"
	case bytesChunk:
		return "bytes"
	case hybridChunk:
		return "hybrid"
	case nestedChunk:
		return "nested"
	default:
		panic(ErrUnsupportedChunk)
	}
}
