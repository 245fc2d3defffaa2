// Package view provides non-owning strided views over memory of trivially
// copyable element types.
package view

import (
	"fmt"
)

// View is a non-owning view over strided memory.
//
// It records the backing bytes, the byte offset of the first element and a
// size and byte stride for every dimension. The constructors guarantee that
// every element the view can address lies inside the backing slice, and every
// method deriving a new view preserves that guarantee.
type View[T Pod] struct {
	data   []byte // Backing memory, shared with the caller
	offset int    // Byte offset of element [0, 0, ...]
	size   Shape  // Elements per dimension
	stride Stride // Byte distance per dimension
}

// New creates a view over data with the given size and byte stride.
// The first element is data[0]; use Flip to obtain negative strides.
func New[T Pod](data []T, size Shape, stride Stride) (View[T], error) {
	return newView[T](AsBytes(data), 0, size, stride)
}

// Contiguous creates a row-major view over data with the given size.
func Contiguous[T Pod](data []T, size Shape) (View[T], error) {
	if err := size.Validate(); err != nil {
		return View[T]{}, fmt.Errorf("view: %w", err)
	}
	return New(data, size, size.ContiguousStride(SizeOf[T]()))
}

func newView[T Pod](data []byte, offset int, size Shape, stride Stride) (View[T], error) {
	if len(size) == 0 {
		return View[T]{}, fmt.Errorf("view: zero-dimensional views are not supported")
	}
	if len(size) != len(stride) {
		return View[T]{}, fmt.Errorf("view: size %v and stride %v have different dimension counts", size, stride)
	}
	if err := size.Validate(); err != nil {
		return View[T]{}, fmt.Errorf("view: %w", err)
	}

	if size.NumElements() != 0 {
		lo, hi := offset, offset
		for i, n := range size {
			reach := (n - 1) * stride[i]
			if reach < 0 {
				lo += reach
			} else {
				hi += reach
			}
		}
		end := hi + SizeOf[T]()
		if lo < 0 || end > len(data) {
			return View[T]{}, fmt.Errorf("view: size %v with stride %v spans bytes [%d, %d), outside of %d available",
				size, stride, lo, end, len(data))
		}
	}

	return View[T]{
		data:   data,
		offset: offset,
		size:   size.Clone(),
		stride: stride.Clone(),
	}, nil
}

// Size returns the number of elements along each dimension.
func (v View[T]) Size() Shape {
	return v.size
}

// Stride returns the byte stride of each dimension.
func (v View[T]) Stride() Stride {
	return v.stride
}

// Dims returns the dimension count.
func (v View[T]) Dims() int {
	return len(v.size)
}

// ElemSize returns the byte width of one element.
func (v View[T]) ElemSize() int {
	return SizeOf[T]()
}

// Empty reports whether the view addresses no elements, either because a
// dimension has zero size or because v is the zero View.
func (v View[T]) Empty() bool {
	if len(v.size) == 0 {
		return true
	}
	for _, n := range v.size {
		if n == 0 {
			return true
		}
	}
	return false
}

// Data returns the backing memory.
// WARNING: Direct access to underlying memory. Use Offset and Stride to locate elements.
func (v View[T]) Data() []byte {
	return v.data
}

// Offset returns the byte offset of the first element inside Data.
func (v View[T]) Offset() int {
	return v.offset
}

// Index returns the (D-1)-dimensional view at position i of the outermost dimension.
// Panics if the view is one-dimensional or i is out of range.
func (v View[T]) Index(i int) View[T] {
	if len(v.size) < 2 {
		panic(fmt.Sprintf("view: cannot index a %d-dimensional view", len(v.size)))
	}
	if i < 0 || i >= v.size[0] {
		panic(fmt.Sprintf("view: index %d out of range for size %d", i, v.size[0]))
	}
	return View[T]{
		data:   v.data,
		offset: v.offset + i*v.stride[0],
		size:   v.size[1:],
		stride: v.stride[1:],
	}
}

// Slice returns the view restricted to [begin, end) along dim.
func (v View[T]) Slice(dim, begin, end int) View[T] {
	v.checkDim(dim)
	if begin < 0 || end < begin || end > v.size[dim] {
		panic(fmt.Sprintf("view: slice [%d:%d] out of range for size %d", begin, end, v.size[dim]))
	}
	size := v.size.Clone()
	size[dim] = end - begin
	return View[T]{
		data:   v.data,
		offset: v.offset + begin*v.stride[dim],
		size:   size,
		stride: v.stride.Clone(),
	}
}

// Flip returns the view with the order of elements along dim reversed.
func (v View[T]) Flip(dim int) View[T] {
	v.checkDim(dim)
	offset := v.offset
	if v.size[dim] > 0 {
		offset += (v.size[dim] - 1) * v.stride[dim]
	}
	stride := v.stride.Clone()
	stride[dim] = -stride[dim]
	return View[T]{
		data:   v.data,
		offset: offset,
		size:   v.size.Clone(),
		stride: stride,
	}
}

// Transpose returns the view with dimensions a and b swapped.
func (v View[T]) Transpose(a, b int) View[T] {
	v.checkDim(a)
	v.checkDim(b)
	size := v.size.Clone()
	stride := v.stride.Clone()
	size[a], size[b] = size[b], size[a]
	stride[a], stride[b] = stride[b], stride[a]
	return View[T]{
		data:   v.data,
		offset: v.offset,
		size:   size,
		stride: stride,
	}
}

// At returns the element at idx. Unaligned strides are fine.
func (v View[T]) At(idx ...int) T {
	var out T
	off := v.elementOffset(idx)
	copy(bytesOf(&out), v.data[off:])
	return out
}

// Set stores value at idx.
func (v View[T]) Set(value T, idx ...int) {
	off := v.elementOffset(idx)
	copy(v.data[off:off+SizeOf[T]()], bytesOf(&value))
}

// ContiguousFrom returns the first dimension from which all trailing
// dimensions are laid out row-major without gaps. It returns Dims() when
// not even the innermost dimension is contiguous.
func (v View[T]) ContiguousFrom() int {
	expected := SizeOf[T]()
	for d := len(v.size) - 1; d >= 0; d-- {
		if v.stride[d] != expected {
			return d + 1
		}
		expected *= v.size[d]
	}
	return 0
}

// IsContiguousFrom reports whether dimensions dim and all inner ones are contiguous.
func (v View[T]) IsContiguousFrom(dim int) bool {
	v.checkDim(dim)
	return v.ContiguousFrom() <= dim
}

// IsContiguous reports whether the whole view is one contiguous block.
func (v View[T]) IsContiguous() bool {
	return v.ContiguousFrom() == 0
}

func (v View[T]) checkDim(dim int) {
	if dim < 0 || dim >= len(v.size) {
		panic(fmt.Sprintf("view: dimension %d out of range for %d dimensions", dim, len(v.size)))
	}
}

func (v View[T]) elementOffset(idx []int) int {
	if len(idx) != len(v.size) {
		panic(fmt.Sprintf("view: got %d indices for %d dimensions", len(idx), len(v.size)))
	}
	off := v.offset
	for d, i := range idx {
		if i < 0 || i >= v.size[d] {
			panic(fmt.Sprintf("view: index %d out of range for size %d in dimension %d", i, v.size[d], d))
		}
		off += i * v.stride[d]
	}
	return off
}
