package view

import "fmt"

// Shape represents the per-dimension element counts of a view.
type Shape []int

// Stride represents the byte distance between consecutive elements along each dimension.
// Strides may be negative (flipped views) or zero (broadcast views).
type Stride []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative. Zero-sized dimensions are legal.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ContiguousStride calculates row-major byte strides for the shape.
// The innermost stride is elemSize, every outer stride is the product of
// the inner sizes and elemSize.
func (s Shape) ContiguousStride(elemSize int) Stride {
	stride := make(Stride, len(s))
	if len(s) == 0 {
		return stride
	}

	stride[len(s)-1] = elemSize
	for i := len(s) - 2; i >= 0; i-- {
		stride[i] = stride[i+1] * s[i+1]
	}
	return stride
}

// Clone returns a copy of the stride.
func (s Stride) Clone() Stride {
	clone := make(Stride, len(s))
	copy(clone, s)
	return clone
}
