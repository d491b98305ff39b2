package binedit

import "unsafe"

// Word is the set of fixed-width scalar types that readers decode and writer
// helpers encode. All widths are compile-time constants.
type Word interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Word whose resolved value can supply a byte
// offset for another reader.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Sizeof returns the encoded width of T in bytes.
func Sizeof[T Word]() int64 {
	var v T
	return int64(unsafe.Sizeof(v))
}

// decodeWord reinterprets the first Sizeof[T]() bytes of p as a T in native
// byte order. The bytes are copied into an aligned value rather than aliased
// through a converted pointer. p must hold at least Sizeof[T]() bytes; a
// shorter slice panics.
func decodeWord[T Word](p []byte) T {
	var v T
	size := unsafe.Sizeof(v)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), p[:size])
	return v
}

// encodeWord returns v's native-order bytes in a fresh allocation. It is the
// exact inverse of decodeWord, so a written value reads back bit-identical.
func encodeWord[T Word](v T) []byte {
	size := unsafe.Sizeof(v)
	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
	return out
}
