// Package buffer implements the rope-like, copy-on-write chunk
// container at the heart of the hybrid string engine.
//
// A Buffer holds an ordered sequence of chunks. Each chunk is one of
// four variants:
//
//   - text: an immutable string of code points
//   - bytes: raw 8-bit data
//   - hybrid: a mixed run of bytes and code points, created only when a
//     localized write mixes the two kinds
//   - nested: another, still-shared Buffer appended in O(1)
//
// Appending grows the chunk list instead of copying existing content,
// so repeated concatenation is amortized O(1). Flattening to a single
// text or byte form is an O(n) walk performed on demand and memoized
// until the next mutation.
//
// Sharing and mutation:
//
// Buffers are shared between owners by reference count. Share registers
// a new read-only owner in O(1). Every mutating entry point must first
// call Exclusive, which either returns the same buffer (single owner)
// or surrenders the caller's share and returns a structural clone.
// After Exclusive, mutation is never observable through any other
// reference.
//
//	a := buffer.FromText("hello")
//	b := a.Share()          // b aliases a, no copy
//	b = b.Exclusive()       // break the share before writing
//	b.Set(0, char.FromByte(0x41))
//	// a is unchanged
//
// Indexed writes may locally change a chunk's representation: writing a
// raw byte into a text chunk promotes that chunk (and only that chunk)
// to a hybrid chunk. Most strings stay pure text or pure bytes for
// their whole life, so the cheap homogeneous representation is kept
// until a write actually requires mixing.
//
// Concurrency:
//
// The package assumes single-threaded value semantics. Share counts are
// plain integers, not atomics, and no operation takes a lock. This is a
// documented precondition of the engine, chosen to keep sharing and the
// write barrier cheap.
package buffer
