// Package value exposes the hybrid string buffer to the rest of a
// runtime with value semantics: copying a String is a cheap share of
// the underlying buffer, and every mutation passes through a write
// barrier that breaks the share first.
//
// The package also provides the engine's two boundary contracts with an
// enclosing dynamic-language runtime: the Converter interface for
// heterogeneous content, and the keyed-container access layer (Item,
// SetItem, and the deliberately unsupported structural operations).
package value
