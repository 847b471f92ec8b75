// Package lua binds the hybrid string value into an embedded gopher-lua
// runtime. It registers a strand.string userdata type with indexing,
// length, concatenation, and tostring metamethods layered on the value
// package, and provides Bridge, the concrete implementation of the
// engine's dynamic-value conversion boundary for Lua values.
//
// Indexing through the binding uses the engine's 0-based positions, not
// Lua's 1-based table convention: the binding is a direct view of a
// runtime string slot, not a Lua sequence.
package lua
