package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/strided/internal/view"
)

type number interface {
	~uint8 | ~int16 | ~int32 | ~uint64 | ~float32 | ~float64
}

// forEachIndex calls f with every multi-index of size in row-major order.
func forEachIndex(size view.Shape, f func(idx []int)) {
	for _, n := range size {
		if n == 0 {
			return
		}
	}
	idx := make([]int, len(size))
	for {
		f(idx)
		d := len(size) - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < size[d] {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// layoutView builds a view of the given size over a fresh buffer. Dimensions
// are laid out in order (outermost first), pad unused elements follow every
// dimension, and the listed dimensions are flipped.
func layoutView[T number](t *testing.T, size view.Shape, order []int, pad int, flip ...int) view.View[T] {
	t.Helper()
	elem := view.SizeOf[T]()
	stride := make(view.Stride, len(size))
	step := elem
	for k := len(order) - 1; k >= 0; k-- {
		d := order[k]
		stride[d] = step
		step = step*size[d] + pad*elem
	}

	v, err := view.New(make([]T, step/elem), size, stride)
	require.NoError(t, err)
	for _, d := range flip {
		v = v.Flip(d)
	}
	return v
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func reversed(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = n - 1 - i
	}
	return order
}

// fill writes first, first+1, ... into v in row-major index order.
func fill[T number](v view.View[T], first int) {
	i := first
	forEachIndex(v.Size(), func(idx []int) {
		v.Set(T(i), idx...)
		i++
	})
}

func snapshot[T number](v view.View[T]) []T {
	var out []T
	forEachIndex(v.Size(), func(idx []int) {
		out = append(out, v.At(idx...))
	})
	return out
}

func assertSameElements[T number](t *testing.T, want, got view.View[T]) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size())
	assert.Equal(t, snapshot(want), snapshot(got))
}
