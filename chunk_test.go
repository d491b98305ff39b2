package binedit

import (
	"bytes"
	"errors"
	"testing"
)

func mustChunk(t *testing.T, data []byte) Chunk {
	t.Helper()
	c, err := NewFactory(StrategyMemory).NewChunk(data, int64(len(data)), 0)
	if err != nil {
		t.Fatalf("NewChunk failed: %v", err)
	}
	return c
}

func TestChunkSize(t *testing.T) {
	c := mustChunk(t, []byte{1, 2, 3, 4, 5})
	if c.Size() != 5 {
		t.Errorf("Expected size 5, got %d", c.Size())
	}
	if c.Kind() != KindMemory {
		t.Errorf("Expected KindMemory, got %v", c.Kind())
	}
}

func TestSubChunk(t *testing.T) {
	c := mustChunk(t, []byte{0, 1, 2, 3, 4, 5, 6, 7})

	sub, err := c.SubChunk(2, 4)
	if err != nil {
		t.Fatalf("SubChunk failed: %v", err)
	}
	if sub.Size() != 4 {
		t.Errorf("Expected sub size 4, got %d", sub.Size())
	}
	if !bytes.Equal(sub.Bytes(), []byte{2, 3, 4, 5}) {
		t.Errorf("Expected [2 3 4 5], got %v", sub.Bytes())
	}

	// Zero-copy: the sub-chunk's view aliases the parent's backing storage.
	if &sub.Bytes()[0] != &c.Bytes()[2] {
		t.Error("Expected sub-chunk to alias parent backing storage")
	}

	// Narrowing a narrowing stays within the same storage.
	subsub, err := sub.SubChunk(1, 2)
	if err != nil {
		t.Fatalf("nested SubChunk failed: %v", err)
	}
	if !bytes.Equal(subsub.Bytes(), []byte{3, 4}) {
		t.Errorf("Expected [3 4], got %v", subsub.Bytes())
	}
}

func TestSubChunkOutOfRange(t *testing.T) {
	c := mustChunk(t, []byte{1, 2, 3})

	_, err := c.SubChunk(1, 3)
	if !errors.Is(err, ErrRangeBeyondSize) {
		t.Errorf("Expected ErrRangeBeyondSize, got %v", err)
	}

	// The full range is still valid.
	if _, err := c.SubChunk(0, 3); err != nil {
		t.Errorf("Full-range SubChunk failed: %v", err)
	}
	if _, err := c.SubChunk(3, 0); err != nil {
		t.Errorf("Empty SubChunk at end failed: %v", err)
	}
}

func TestSubChunkNegativeArguments(t *testing.T) {
	c := mustChunk(t, []byte{1, 2, 3})

	if _, err := c.SubChunk(-1, 2); !errors.Is(err, ErrRangeBeyondSize) {
		t.Errorf("Expected ErrRangeBeyondSize for negative offset, got %v", err)
	}
	if _, err := c.SubChunk(0, -2); !errors.Is(err, ErrRangeBeyondSize) {
		t.Errorf("Expected ErrRangeBeyondSize for negative size, got %v", err)
	}
}

func TestCloneAndShrink(t *testing.T) {
	c := mustChunk(t, []byte{9, 8, 7, 6, 5})

	clone := c.Clone()
	if err := clone.Shrink(2); err != nil {
		t.Fatalf("Shrink failed: %v", err)
	}

	// Shrinking the clone must not touch the original handle.
	if c.Size() != 5 {
		t.Errorf("Original size changed to %d", c.Size())
	}
	if clone.Size() != 2 {
		t.Errorf("Expected clone size 2, got %d", clone.Size())
	}
	if !bytes.Equal(clone.Bytes(), []byte{9, 8}) {
		t.Errorf("Expected [9 8], got %v", clone.Bytes())
	}

	// Both handles still share backing storage.
	if &clone.Bytes()[0] != &c.Bytes()[0] {
		t.Error("Expected clone to share backing storage")
	}
}

func TestShrinkBeyondSize(t *testing.T) {
	c := mustChunk(t, []byte{1, 2})
	if err := c.Shrink(3); !errors.Is(err, ErrRangeBeyondSize) {
		t.Errorf("Expected ErrRangeBeyondSize, got %v", err)
	}
	if err := c.Shrink(-1); !errors.Is(err, ErrRangeBeyondSize) {
		t.Errorf("Expected ErrRangeBeyondSize for negative size, got %v", err)
	}
	if c.Size() != 2 {
		t.Errorf("Rejected Shrink changed size to %d", c.Size())
	}
}
