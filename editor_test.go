package binedit

import (
	"bytes"
	"errors"
	"testing"
)

func seq(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func mustEditor(t *testing.T, data []byte) *Editor {
	t.Helper()
	e, err := FromBytes(data)
	if err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	return e
}

func TestNewEditorIsEmpty(t *testing.T) {
	e := New()
	if e.Size() != 0 {
		t.Errorf("Expected size 0, got %d", e.Size())
	}
	if got := e.Bytes(); len(got) != 0 {
		t.Errorf("Expected empty bytes, got %v", got)
	}
}

func TestFromBytesSize(t *testing.T) {
	e := mustEditor(t, seq(10))
	if e.Size() != 10 {
		t.Errorf("Expected size 10, got %d", e.Size())
	}
	if !bytes.Equal(e.Bytes(), seq(10)) {
		t.Errorf("Expected %v, got %v", seq(10), e.Bytes())
	}
}

func TestFromBytesIsDefensiveCopy(t *testing.T) {
	data := seq(5)
	e := mustEditor(t, data)

	// Mutating the caller's slice must not reach the editor.
	data[0] = 200
	if e.Bytes()[0] != 0 {
		t.Errorf("Expected defensive copy, got %v", e.Bytes())
	}
}

func TestFromOwnedBytesAdoptsWithoutCopy(t *testing.T) {
	data := seq(5)
	e, err := FromOwnedBytes(data)
	if err != nil {
		t.Fatalf("FromOwnedBytes failed: %v", err)
	}
	if e.Size() != 5 {
		t.Errorf("Expected size 5, got %d", e.Size())
	}
	if e.ChunkCount() != 1 {
		t.Errorf("Expected 1 chunk, got %d", e.ChunkCount())
	}
}

func TestFromBytesNil(t *testing.T) {
	if _, err := FromBytes(nil); !errors.Is(err, ErrNilBlob) {
		t.Errorf("Expected ErrNilBlob, got %v", err)
	}
	if _, err := FromOwnedBytes(nil); !errors.Is(err, ErrNilBlob) {
		t.Errorf("Expected ErrNilBlob, got %v", err)
	}
}

func TestPushBack(t *testing.T) {
	e1 := mustEditor(t, []byte{0, 1, 2, 3, 4})
	e2 := mustEditor(t, []byte{5, 6, 7, 8, 9})

	e1.PushBack(e2)
	if e1.Size() != 10 {
		t.Errorf("Expected size 10, got %d", e1.Size())
	}
	if !bytes.Equal(e1.Bytes(), seq(10)) {
		t.Errorf("Expected %v, got %v", seq(10), e1.Bytes())
	}
}

func TestPushFront(t *testing.T) {
	e1 := mustEditor(t, []byte{5, 6, 7, 8, 9})
	e2 := mustEditor(t, []byte{0, 1, 2, 3, 4})

	e1.PushFront(e2)
	if e1.Size() != 10 {
		t.Errorf("Expected size 10, got %d", e1.Size())
	}
	if !bytes.Equal(e1.Bytes(), seq(10)) {
		t.Errorf("Expected %v, got %v", seq(10), e1.Bytes())
	}
}

func TestEmplace(t *testing.T) {
	e := New()
	if err := e.EmplaceBack([]byte{3, 4}); err != nil {
		t.Fatalf("EmplaceBack failed: %v", err)
	}
	if err := e.EmplaceFront([]byte{1, 2}); err != nil {
		t.Fatalf("EmplaceFront failed: %v", err)
	}
	if err := e.EmplaceBack([]byte{5}); err != nil {
		t.Fatalf("EmplaceBack failed: %v", err)
	}

	if e.Size() != 5 {
		t.Errorf("Expected size 5, got %d", e.Size())
	}
	if !bytes.Equal(e.Bytes(), []byte{1, 2, 3, 4, 5}) {
		t.Errorf("Expected [1 2 3 4 5], got %v", e.Bytes())
	}
}

func TestEmplaceEmptyBlobIsNoOp(t *testing.T) {
	e := mustEditor(t, []byte{1})
	if err := e.EmplaceBack([]byte{}); err != nil {
		t.Fatalf("EmplaceBack failed: %v", err)
	}
	if e.ChunkCount() != 1 {
		t.Errorf("Expected zero-length fragment to be skipped, got %d chunks", e.ChunkCount())
	}
}

func TestSizeIsSumOfSpliceInputs(t *testing.T) {
	// Size equals the sum of the byte ranges fed in, regardless of how
	// many chunks resulted.
	e := mustEditor(t, seq(7))
	e.PushBack(mustEditor(t, seq(3)))
	e.PushFront(mustEditor(t, seq(4)))
	if err := e.EmplaceBack(seq(6)); err != nil {
		t.Fatalf("EmplaceBack failed: %v", err)
	}
	if err := e.Insert(2, mustEditor(t, seq(5))); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if e.Size() != 7+3+4+6+5 {
		t.Errorf("Expected size %d, got %d", 7+3+4+6+5, e.Size())
	}
}

func TestClear(t *testing.T) {
	e := mustEditor(t, seq(10))
	e.Clear()
	if e.Size() != 0 {
		t.Errorf("Expected size 0 after Clear, got %d", e.Size())
	}
	if e.ChunkCount() != 0 {
		t.Errorf("Expected 0 chunks after Clear, got %d", e.ChunkCount())
	}
}

func TestCopyIsStructural(t *testing.T) {
	e := mustEditor(t, []byte{1, 2, 3})
	snapshot := e.Copy()

	// A later splice on the original must not show up in the copy.
	e.PushBack(mustEditor(t, []byte{4, 5}))
	if snapshot.Size() != 3 {
		t.Errorf("Expected copy size 3, got %d", snapshot.Size())
	}
	if !bytes.Equal(snapshot.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("Expected [1 2 3], got %v", snapshot.Bytes())
	}
}
