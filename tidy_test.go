package binedit

import (
	"bytes"
	"testing"
)

func TestTidyMergesToSingleChunk(t *testing.T) {
	e := fragmented(t, seq(10), 2, 3, 5)
	if e.ChunkCount() != 3 {
		t.Fatalf("Expected 3 chunks before Tidy, got %d", e.ChunkCount())
	}

	e.Tidy()
	if e.ChunkCount() != 1 {
		t.Errorf("Expected 1 chunk after Tidy, got %d", e.ChunkCount())
	}
	if e.Size() != 10 {
		t.Errorf("Expected size 10 after Tidy, got %d", e.Size())
	}
	if !bytes.Equal(e.Bytes(), seq(10)) {
		t.Errorf("Expected %v, got %v", seq(10), e.Bytes())
	}
}

func TestTidyEmptyEditor(t *testing.T) {
	e := New()
	e.Tidy()
	if e.ChunkCount() != 0 {
		t.Errorf("Expected 0 chunks, got %d", e.ChunkCount())
	}
}

func TestBytesIsIdempotentOnContent(t *testing.T) {
	e := fragmented(t, seq(10), 5, 5)

	first := e.Bytes()
	second := e.Bytes()
	if !bytes.Equal(first, second) {
		t.Errorf("Expected identical content, got %v then %v", first, second)
	}

	// Each call recoalesces into a fresh allocation; there is no cached
	// merged form.
	if &first[0] == &second[0] {
		t.Error("Expected each Bytes call to return a fresh copy")
	}
}

func TestBytesLeavesSourceChunksIntact(t *testing.T) {
	e1 := mustEditor(t, []byte{0, 1, 2, 3, 4})
	e2 := New()
	e2.PushBack(e1)
	e2.PushBack(e1)

	// Coalescing e2 copies out of e1's chunk without touching it.
	if !bytes.Equal(e2.Bytes(), []byte{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}) {
		t.Errorf("Unexpected coalesced bytes %v", e2.Bytes())
	}
	if !bytes.Equal(e1.Bytes(), []byte{0, 1, 2, 3, 4}) {
		t.Errorf("Shared source editor changed: %v", e1.Bytes())
	}
}
