package binedit

import "fmt"

// SubEditor returns a new editor over the byte range [offset, offset+size) of
// this editor. The result's chunks are zero-copy narrowings of the originals:
// no backing bytes are duplicated. The returned editor owns its own chunk
// references and is unaffected by later mutation of the source.
//
// Fails with ErrRangeBeyondSize if offset or size is negative or offset+size
// exceeds the total size.
func (e *Editor) SubEditor(offset, size int64) (*Editor, error) {
	total := e.Size()
	if offset < 0 || size < 0 || offset+size > total {
		return nil, fmt.Errorf("sub editor: %w (offset %d, size %d, total %d)", ErrRangeBeyondSize, offset, size, total)
	}

	out := &Editor{factory: e.factory}
	if size == 0 {
		return out, nil
	}

	currentOffset := int64(0)
	collected := int64(0)
	for _, c := range e.chunks {
		// Chunks entirely before the requested range are skipped.
		if currentOffset+c.Size() <= offset {
			currentOffset += c.Size()
			continue
		}

		need := size - collected
		if collected == 0 {
			// First overlapping chunk: narrow from the local offset.
			local := offset - currentOffset
			if need > c.Size()-local {
				need = c.Size() - local
			}
			sub, err := c.SubChunk(local, need)
			if err != nil {
				return nil, err
			}
			out.chunks = append(out.chunks, sub)
		} else {
			// Subsequent chunks start at 0; a shrunk clone narrows the
			// tail without touching the original handle.
			if need > c.Size() {
				need = c.Size()
			}
			clone := c.Clone()
			if err := clone.Shrink(need); err != nil {
				return nil, err
			}
			out.chunks = append(out.chunks, clone)
		}

		collected += need
		currentOffset += c.Size()
		if collected == size {
			break
		}
	}

	return out, nil
}

// Insert splices other's chunk sequence into this editor at the given byte
// offset. A chunk containing the offset strictly inside it is split into a
// head and tail sub-chunk around the insertion; an offset landing exactly on
// a chunk boundary splices without splitting; an offset equal to the total
// size appends. Only the first chunk containing or terminating at the offset
// is acted on.
//
// Fails with ErrOffsetBeyondSize if offset is negative or exceeds the total
// size.
func (e *Editor) Insert(offset int64, other *Editor) error {
	if offset < 0 || offset > e.Size() {
		return fmt.Errorf("insert: %w (offset %d, total %d)", ErrOffsetBeyondSize, offset, e.Size())
	}

	// Snapshot the incoming chunk list so that splicing an editor into
	// itself operates on the pre-splice sequence.
	incoming := make([]Chunk, len(other.chunks))
	copy(incoming, other.chunks)

	currentOffset := int64(0)
	for i, c := range e.chunks {
		if currentOffset+c.Size() <= offset {
			currentOffset += c.Size()
			continue
		}

		if currentOffset == offset {
			// Boundary splice, no split needed.
			chunks := make([]Chunk, 0, len(e.chunks)+len(incoming))
			chunks = append(chunks, e.chunks[:i]...)
			chunks = append(chunks, incoming...)
			chunks = append(chunks, e.chunks[i:]...)
			e.chunks = chunks
			return nil
		}

		// Offset falls strictly inside this chunk: replace it with
		// head, incoming chunks, tail. Both halves are non-empty, so no
		// zero-length fragment enters the sequence.
		local := offset - currentOffset
		head, err := c.SubChunk(0, local)
		if err != nil {
			return err
		}
		tail, err := c.SubChunk(local, c.Size()-local)
		if err != nil {
			return err
		}
		chunks := make([]Chunk, 0, len(e.chunks)+len(incoming)+1)
		chunks = append(chunks, e.chunks[:i]...)
		chunks = append(chunks, head)
		chunks = append(chunks, incoming...)
		chunks = append(chunks, tail)
		chunks = append(chunks, e.chunks[i+1:]...)
		e.chunks = chunks
		return nil
	}

	// Offset is at the end, past every chunk: append.
	e.chunks = append(e.chunks, incoming...)
	return nil
}
