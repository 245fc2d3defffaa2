// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view

import (
	"github.com/born-ml/strided/internal/view"
)

// Shape represents the per-dimension element counts of a view.
// Example: Shape{2, 3} is two rows of three elements.
type Shape = view.Shape

// Stride represents the byte distance between consecutive elements along each dimension.
type Stride = view.Stride

// Pod is the constraint for trivially copyable element types.
type Pod = view.Pod

// View is a non-owning strided view over memory of T.
//
// View provides:
//   - Shape and layout information via Size(), Stride(), Dims()
//   - Sub-views via Index(), Slice(), Flip(), Transpose()
//   - Element access via At() and Set()
//   - Layout queries via IsContiguous() and ContiguousFrom()
//
// Example:
//
//	v, _ := view.New(data, view.Shape{3, 2}, view.Stride{16, 4})
//	x := v.At(2, 1)
type View[T Pod] = view.View[T]

// New creates a view over data with the given size and byte stride.
// Returns an error if any addressable element falls outside data.
func New[T Pod](data []T, size Shape, stride Stride) (View[T], error) {
	return view.New(data, size, stride)
}

// Contiguous creates a row-major view over data with the given size.
func Contiguous[T Pod](data []T, size Shape) (View[T], error) {
	return view.Contiguous(data, size)
}

// SizeOf returns the byte width of T.
func SizeOf[T Pod]() int {
	return view.SizeOf[T]()
}

// AsBytes reinterprets s as its underlying bytes without copying.
func AsBytes[T Pod](s []T) []byte {
	return view.AsBytes(s)
}

// Bytes reinterprets v as a byte view with an extra innermost dimension of sizeof(T).
func Bytes[T Pod](v View[T]) View[byte] {
	return view.Bytes(v)
}

// Cast removes the innermost byte dimension of v, producing a view of T.
func Cast[T Pod](v View[byte]) (View[T], error) {
	return view.Cast[T](v)
}
