// Package binedit builds and inspects logical byte buffers that are
// physically fragmented across multiple independently-owned memory regions,
// and overlays typed field access on top of such a buffer without
// materializing it contiguously except on demand.
package binedit

import "errors"

// Buffer-range errors. Raised by the chunk and editor layers whenever an
// offset or size argument is inconsistent with the current bounds. These are
// programmer-error class failures: always synchronous, always fatal to the
// call in progress, never retried internally.
var (
	// ErrOffsetBeyondSize indicates an offset greater than the size it
	// addresses into.
	ErrOffsetBeyondSize = errors.New("offset must not be greater than size")

	// ErrRangeBeyondSize indicates that offset+size exceeds the bounds of
	// the chunk or editor being narrowed.
	ErrRangeBeyondSize = errors.New("offset plus size must not exceed total size")

	// ErrNilBlob indicates that a chunk was requested over absent backing
	// storage.
	ErrNilBlob = errors.New("backing storage must not be nil")

	// ErrUnknownStrategy indicates an unrecognized chunk creation strategy.
	ErrUnknownStrategy = errors.New("unknown chunk creation strategy")
)

// Container-range errors.
var (
	// ErrIndexOutOfRange indicates a container index at or beyond the
	// element count.
	ErrIndexOutOfRange = errors.New("index out of range")
)
