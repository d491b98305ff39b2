package binedit

import "fmt"

// Writer helpers wrap a scalar's native-order bytes into a one-chunk editor
// and splice it in through the editor's public operations. They add no
// machinery of their own on top of EmplaceBack, EmplaceFront, Insert, and
// SubEditor.

// WriteBack appends v's bytes to the back of e.
func WriteBack[T Word](e *Editor, v T) error {
	return e.EmplaceBack(encodeWord(v))
}

// WriteFront prepends v's bytes to the front of e.
func WriteFront[T Word](e *Editor, v T) error {
	return e.EmplaceFront(encodeWord(v))
}

// WriteAt inserts v's bytes at the given byte offset, shifting the bytes
// from offset onward back by Sizeof[T](). Fails with ErrOffsetBeyondSize if
// offset exceeds e's size.
func WriteAt[T Word](e *Editor, offset int64, v T) error {
	patch := &Editor{factory: e.factory}
	if err := patch.EmplaceBack(encodeWord(v)); err != nil {
		return err
	}
	return e.Insert(offset, patch)
}

// OverwriteAt replaces the Sizeof[T]() bytes at the given offset with v's
// bytes. Consistent with chunk immutability, no byte is mutated in place:
// the editor is rebuilt from a head sub-editor, a fresh value chunk, and a
// tail sub-editor. Fails with ErrRangeBeyondSize if offset+Sizeof[T]()
// exceeds e's size.
func OverwriteAt[T Word](e *Editor, offset int64, v T) error {
	size := Sizeof[T]()
	total := e.Size()
	if offset < 0 || offset+size > total {
		return fmt.Errorf("overwrite at: %w (offset %d, size %d, total %d)", ErrRangeBeyondSize, offset, size, total)
	}

	head, err := e.SubEditor(0, offset)
	if err != nil {
		return err
	}
	tail, err := e.SubEditor(offset+size, total-offset-size)
	if err != nil {
		return err
	}

	e.Clear()
	e.PushBack(head)
	if err := e.EmplaceBack(encodeWord(v)); err != nil {
		return err
	}
	e.PushBack(tail)
	return nil
}
