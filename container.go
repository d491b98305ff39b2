package binedit

import "fmt"

// Container is a bounded, homogeneous, random-access typed view over a
// sub-range of an editor. At construction it narrows the source editor to
// exactly count*Sizeof[T]() bytes, zero-copy; the view is fixed from then
// on, decoupled from later mutation of the source.
type Container[T Word] struct {
	editor *Editor
	count  int64
}

// NewContainer builds a container of count elements of T starting at the
// given byte offset of e. Fails with ErrRangeBeyondSize if count is negative
// or the element range exceeds e's size at construction time.
func NewContainer[T Word](e *Editor, offset, count int64) (*Container[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("new container: %w (count %d)", ErrRangeBeyondSize, count)
	}
	sub, err := e.SubEditor(offset, count*Sizeof[T]())
	if err != nil {
		return nil, err
	}
	return &Container[T]{editor: sub, count: count}, nil
}

// Len returns the element count.
func (c *Container[T]) Len() int64 {
	return c.count
}

// At returns element i. Fails with ErrIndexOutOfRange for i >= Len().
func (c *Container[T]) At(i int64) (T, error) {
	if i < 0 || i >= c.count {
		var zero T
		return zero, fmt.Errorf("at: %w (index %d, len %d)", ErrIndexOutOfRange, i, c.count)
	}
	return c.element(i), nil
}

// Index returns element i, identically to At. Fails with ErrIndexOutOfRange
// for i >= Len().
func (c *Container[T]) Index(i int64) (T, error) {
	if i < 0 || i >= c.count {
		var zero T
		return zero, fmt.Errorf("index: %w (index %d, len %d)", ErrIndexOutOfRange, i, c.count)
	}
	return c.element(i), nil
}

// element coalesces the private sub-editor and decodes element i. Callers
// have already checked i, or accepted the iterator's unchecked contract.
func (c *Container[T]) element(i int64) T {
	return decodeWord[T](c.editor.Bytes()[i*Sizeof[T]():])
}

// Begin returns an iterator positioned at the first element.
func (c *Container[T]) Begin() Iterator[T] {
	return Iterator[T]{container: c, index: 0}
}

// End returns an iterator positioned one past the last element. End itself
// must not be dereferenced.
func (c *Container[T]) End() Iterator[T] {
	return Iterator[T]{container: c, index: c.count}
}

// Iterator walks a Container by index. Iterators over the same container
// compare by index. Value performs no bounds check, mirroring the checked
// At/Index pair with an unchecked traversal primitive.
type Iterator[T Word] struct {
	container *Container[T]
	index     int64
}

// Value decodes the element under the iterator. No bounds check is
// performed; dereferencing End() panics on the underlying slice access.
func (it Iterator[T]) Value() T {
	return it.container.element(it.index)
}

// Next advances the iterator by one element.
func (it *Iterator[T]) Next() {
	it.index++
}

// Skip advances the iterator by an arbitrary step. Together with Next it
// preserves the reference traversal semantics: single-step pre-increment,
// N-step post-increment.
func (it *Iterator[T]) Skip(n int64) {
	it.index += n
}

// Index returns the iterator's current element index.
func (it Iterator[T]) Index() int64 {
	return it.index
}

// Equal reports whether both iterators are at the same index.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.index == other.index
}

// Before reports whether the iterator is at a lower index than other.
func (it Iterator[T]) Before(other Iterator[T]) bool {
	return it.index < other.index
}

// After reports whether the iterator is at a higher index than other.
func (it Iterator[T]) After(other Iterator[T]) bool {
	return it.index > other.index
}
