package binedit

import "fmt"

// ChunkKind identifies a chunk implementation.
type ChunkKind int

const (
	// KindMemory indicates a chunk backed by an in-memory allocation.
	KindMemory ChunkKind = iota
)

// Chunk is an immutable, bounds-checked view over a contiguous byte range of
// some backing storage. Chunks are created once per allocation and then only
// narrowed (SubChunk) or shrunk (Shrink); the underlying bytes are never
// mutated through a chunk.
//
// Backing storage is shared by reference across every chunk derived from one
// allocation and is reclaimed only when the last referencing chunk is gone.
type Chunk interface {
	// SubChunk returns a new chunk viewing [offset, offset+size) of this
	// chunk's view, sharing the same backing storage. No bytes are copied.
	// Fails with ErrRangeBeyondSize if offset or size is negative or
	// offset+size exceeds Size().
	SubChunk(offset, size int64) (Chunk, error)

	// Size returns the current view length in bytes.
	Size() int64

	// Bytes returns the view's bytes. The slice aliases the shared backing
	// storage and must not be written through; it is valid as long as any
	// chunk referencing the same backing storage lives.
	Bytes() []byte

	// Kind returns the chunk implementation tag.
	Kind() ChunkKind

	// Clone returns a new chunk handle with the same backing-storage
	// reference and the same view bounds. The handle is independent: a
	// later Shrink of the clone does not affect the original.
	Clone() Chunk

	// Shrink reduces this chunk's own view length to size. The backing
	// storage is untouched. Fails with ErrRangeBeyondSize if size is
	// negative or exceeds the current view length.
	Shrink(size int64) error
}

// memoryChunk is the in-memory chunk kind: a view [offset, offset+size) into
// a shared backing allocation.
type memoryChunk struct {
	backing []byte
	offset  int64
	size    int64
}

// newMemoryChunk wraps a backing allocation as a chunk. The chunk takes the
// slice by reference; the caller must not write through it afterwards.
func newMemoryChunk(backing []byte, size, offset int64) (*memoryChunk, error) {
	if backing == nil {
		return nil, fmt.Errorf("new memory chunk: %w", ErrNilBlob)
	}
	if offset < 0 || size < 0 {
		return nil, fmt.Errorf("new memory chunk: %w (offset %d, size %d)", ErrRangeBeyondSize, offset, size)
	}
	if offset > size {
		return nil, fmt.Errorf("new memory chunk: %w (offset %d, size %d)", ErrOffsetBeyondSize, offset, size)
	}
	if offset+size > int64(len(backing)) {
		return nil, fmt.Errorf("new memory chunk: %w (offset %d, size %d, backing %d)", ErrRangeBeyondSize, offset, size, len(backing))
	}
	return &memoryChunk{backing: backing, offset: offset, size: size}, nil
}

func (c *memoryChunk) SubChunk(offset, size int64) (Chunk, error) {
	if offset < 0 || size < 0 || offset+size > c.size {
		return nil, fmt.Errorf("sub chunk: %w (offset %d, size %d, chunk size %d)", ErrRangeBeyondSize, offset, size, c.size)
	}
	return &memoryChunk{
		backing: c.backing,
		offset:  c.offset + offset,
		size:    size,
	}, nil
}

func (c *memoryChunk) Size() int64 {
	return c.size
}

func (c *memoryChunk) Bytes() []byte {
	return c.backing[c.offset : c.offset+c.size]
}

func (c *memoryChunk) Kind() ChunkKind {
	return KindMemory
}

func (c *memoryChunk) Clone() Chunk {
	clone := *c
	return &clone
}

func (c *memoryChunk) Shrink(size int64) error {
	if size < 0 || size > c.size {
		return fmt.Errorf("shrink: %w (size %d, chunk size %d)", ErrRangeBeyondSize, size, c.size)
	}
	c.size = size
	return nil
}
