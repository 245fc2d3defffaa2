package view

import (
	"fmt"
	"unsafe"
)

// AsBytes reinterprets s as its underlying bytes without copying.
func AsBytes[T Pod](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, length derived from len(s)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*SizeOf[T]())
}

// bytesOf reinterprets a single value as its bytes.
func bytesOf[T Pod](p *T) []byte {
	//nolint:gosec // unsafe.Slice over one value, length is its own size
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// Bytes reinterprets v as a byte view with one extra innermost dimension of
// size sizeof(T) and stride 1. No data is copied.
func Bytes[T Pod](v View[T]) View[byte] {
	n := len(v.size)

	size := make(Shape, n+1)
	copy(size, v.size)
	size[n] = SizeOf[T]()

	stride := make(Stride, n+1)
	copy(stride, v.stride)
	stride[n] = 1

	return View[byte]{
		data:   v.data,
		offset: v.offset,
		size:   size,
		stride: stride,
	}
}

// Cast removes the innermost byte dimension from v, producing a view of T.
// The innermost dimension must be exactly sizeof(T) bytes with stride 1.
func Cast[T Pod](v View[byte]) (View[T], error) {
	n := len(v.size)
	if n < 2 {
		return View[T]{}, fmt.Errorf("Cast: need at least 2 dimensions, got %d", n)
	}
	if v.size[n-1] != SizeOf[T]() || v.stride[n-1] != 1 {
		return View[T]{}, fmt.Errorf("Cast: innermost dimension has size %d and stride %d, want size %d and stride 1",
			v.size[n-1], v.stride[n-1], SizeOf[T]())
	}
	return newView[T](v.data, v.offset, v.size[:n-1], v.stride[:n-1])
}
