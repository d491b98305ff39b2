package binedit

import "fmt"

// Options configures an Editor.
type Options struct {
	// Strategy selects the chunk implementation used by EmplaceBack,
	// EmplaceFront, and the byte constructors.
	Strategy Strategy
}

// Editor is an ordered sequence of chunks whose concatenated bytes form one
// logical byte buffer. Structural edits (push, insert, sub-range extraction)
// rearrange chunk references; the bytes behind the chunks are never mutated.
//
// An Editor is cheap to copy structurally (the chunk references are shared)
// and expensive to coalesce (every byte is copied). It is not safe for
// concurrent structural mutation; concurrent read-only use of editors that
// share chunks is safe because chunk bytes are immutable.
type Editor struct {
	chunks  []Chunk
	factory Factory
}

// New returns an empty editor representing a zero-length buffer.
func New() *Editor {
	return &Editor{}
}

// NewWithOptions returns an empty editor configured with options.
func NewWithOptions(options Options) *Editor {
	return &Editor{factory: NewFactory(options.Strategy)}
}

// FromBytes builds a single-chunk editor over a defensive copy of p, so the
// caller's slice stays independent of the editor.
func FromBytes(p []byte) (*Editor, error) {
	if p == nil {
		return nil, fmt.Errorf("from bytes: %w", ErrNilBlob)
	}
	owned := make([]byte, len(p))
	copy(owned, p)
	return FromOwnedBytes(owned)
}

// FromOwnedBytes builds a single-chunk editor that adopts p as backing
// storage without copying. The caller hands over ownership and must not
// write through p afterwards.
func FromOwnedBytes(p []byte) (*Editor, error) {
	if p == nil {
		return nil, fmt.Errorf("from owned bytes: %w", ErrNilBlob)
	}
	e := New()
	if len(p) == 0 {
		return e, nil
	}
	if err := e.EmplaceBack(p); err != nil {
		return nil, err
	}
	return e, nil
}

// Copy returns a structural copy of the editor: a new chunk list sharing the
// same chunks and backing storage. Later splices on either editor do not
// affect the other.
func (e *Editor) Copy() *Editor {
	chunks := make([]Chunk, len(e.chunks))
	copy(chunks, e.chunks)
	return &Editor{chunks: chunks, factory: e.factory}
}

// Size returns the total byte length of the logical buffer. It is computed
// as the sum of chunk sizes on every call, O(number of chunks); it is
// deliberately never cached alongside the chunk list.
func (e *Editor) Size() int64 {
	var total int64
	for _, c := range e.chunks {
		total += c.Size()
	}
	return total
}

// ChunkCount returns the number of chunks currently in the sequence.
func (e *Editor) ChunkCount() int {
	return len(e.chunks)
}

// Tidy coalesces the chunk sequence into a single chunk over one fresh
// contiguous allocation, copying every chunk's bytes in sequence order.
// Cost is O(Size()) per invocation and the result is not cached: every call
// recopies from scratch, trading amortized cost for pointer validity and
// simplicity.
func (e *Editor) Tidy() {
	total := e.Size()
	if total == 0 {
		e.chunks = nil
		return
	}
	blob := make([]byte, total)
	pos := int64(0)
	for _, c := range e.chunks {
		pos += int64(copy(blob[pos:], c.Bytes()))
	}
	// Coalescing always lands in the in-memory kind, whatever kinds the
	// source chunks were; a fresh allocation at offset 0 cannot violate
	// the chunk invariants.
	merged := &memoryChunk{backing: blob, size: total}
	e.chunks = []Chunk{merged}
}

// Bytes coalesces the buffer and returns its contiguous bytes. Every call
// re-runs Tidy, so each call returns a freshly copied (byte-identical)
// result. The slice is read-only: it is the backing storage of the merged
// chunk and of any view later narrowed from it.
func (e *Editor) Bytes() []byte {
	e.Tidy()
	if len(e.chunks) == 0 {
		return []byte{}
	}
	return e.chunks[0].Bytes()
}

// PushBack splices other's chunk sequence onto the back of this editor,
// preserving relative order. The chunks are shared, not duplicated.
func (e *Editor) PushBack(other *Editor) {
	e.chunks = append(e.chunks, other.chunks...)
}

// PushFront splices other's chunk sequence onto the front of this editor,
// preserving relative order. The chunks are shared, not duplicated.
func (e *Editor) PushFront(other *Editor) {
	chunks := make([]Chunk, 0, len(other.chunks)+len(e.chunks))
	chunks = append(chunks, other.chunks...)
	chunks = append(chunks, e.chunks...)
	e.chunks = chunks
}

// EmplaceBack constructs a new chunk over blob via the factory and splices
// it onto the back. The editor adopts blob as backing storage; the caller
// must not write through it afterwards. An empty blob is a no-op, keeping
// zero-length fragments out of the sequence.
func (e *Editor) EmplaceBack(blob []byte) error {
	if blob != nil && len(blob) == 0 {
		return nil
	}
	c, err := e.factory.NewChunk(blob, int64(len(blob)), 0)
	if err != nil {
		return err
	}
	e.chunks = append(e.chunks, c)
	return nil
}

// EmplaceFront constructs a new chunk over blob via the factory and splices
// it onto the front. The editor adopts blob as backing storage; the caller
// must not write through it afterwards. An empty blob is a no-op.
func (e *Editor) EmplaceFront(blob []byte) error {
	if blob != nil && len(blob) == 0 {
		return nil
	}
	c, err := e.factory.NewChunk(blob, int64(len(blob)), 0)
	if err != nil {
		return err
	}
	chunks := make([]Chunk, 0, len(e.chunks)+1)
	chunks = append(chunks, c)
	chunks = append(chunks, e.chunks...)
	e.chunks = chunks
	return nil
}

// Clear drops every chunk reference; the size becomes 0. Backing storage
// shared with other editors stays alive through their references.
func (e *Editor) Clear() {
	e.chunks = nil
}
