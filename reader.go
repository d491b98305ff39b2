package binedit

// Offset supplies the byte offset a Reader decodes at. It is either a
// literal value (At) or the resolved value of another integer-typed reader
// (Via), evaluated at access time.
type Offset interface {
	resolve() int64
}

// literalOffset is a fixed byte offset.
type literalOffset int64

func (o literalOffset) resolve() int64 {
	return int64(o)
}

// chainedOffset resolves another reader's value at access time.
type chainedOffset func() int64

func (o chainedOffset) resolve() int64 {
	return o()
}

// At returns a literal byte offset.
func At(offset int64) Offset {
	return literalOffset(offset)
}

// Via adapts an integer-typed reader into an offset source: the offset is
// whatever value r reads at access time. The dependency graph of chained
// readers must be acyclic, and all of a chain's readers must observe the
// same editor layout the chain was wired for.
func Via[T Integer](r *Reader[T]) Offset {
	return chainedOffset(func() int64 {
		return int64(r.Get())
	})
}

// Reader lazily decodes one typed value from an editor at a fixed or
// value-dependent offset. It observes the editor without owning it; the
// editor must outlive the reader. Readers are meant to be wired once, as
// pointer fields of an overlay struct whose declaration order encodes the
// data dependencies, and not re-bound or copied afterwards.
//
// Reader performs no bounds check: the caller guarantees that
// offset+Sizeof[T]() does not exceed the editor's size. A violation panics
// on the underlying slice access instead of returning an error; this
// unchecked contract is deliberate, matching the zero-overhead accessor the
// type exists to be.
type Reader[T Word] struct {
	editor *Editor
	offset Offset
}

// NewReader binds a reader to an editor and an offset source.
func NewReader[T Word](e *Editor, offset Offset) *Reader[T] {
	return &Reader[T]{editor: e, offset: offset}
}

// NewReaderAt binds a reader to an editor at a literal byte offset.
func NewReaderAt[T Word](e *Editor, offset int64) *Reader[T] {
	return NewReader[T](e, At(offset))
}

// Get resolves the offset, coalesces the editor to obtain a stable
// contiguous view, and decodes Sizeof[T]() bytes at the offset in native
// byte order. Every call recoalesces; see Editor.Bytes.
func (r *Reader[T]) Get() T {
	offset := r.offset.resolve()
	return decodeWord[T](r.editor.Bytes()[offset:])
}
