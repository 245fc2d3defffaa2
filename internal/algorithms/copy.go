// Package algorithms copies data between flat and strided views.
//
// Shape mismatches are contract violations: every entry point panics with a
// *SizeMismatchError before writing anything.
package algorithms

import (
	"github.com/born-ml/strided/internal/parallel"
	"github.com/born-ml/strided/internal/view"
)

// CopyBytes copies src into dst. Both must have the same length.
func CopyBytes(src, dst []byte) {
	if len(src) != len(dst) {
		panic(&SizeMismatchError{Src: view.Shape{len(src)}, Dst: view.Shape{len(dst)}})
	}
	copy(dst, src)
}

// Copy copies src into dst as raw bytes. Both must have the same length.
func Copy[T view.Pod](src, dst []T) {
	checkSizes(view.Shape{len(src)}, view.Shape{len(dst)})
	CopyBytes(view.AsBytes(src), view.AsBytes(dst))
}

// CopyView copies a strided view into another of the same size.
//
// Contiguous trailing dimensions are copied as a single bulk run; the
// remaining dimensions are looped over.
func CopyView[T view.Pod](src, dst view.View[T]) {
	checkSizes(src.Size(), dst.Size())
	if src.Empty() {
		return
	}
	copyStrided(view.Bytes(src), view.Bytes(dst))
}

// CopyViewParallel is CopyView with the outermost dimension split into row
// ranges copied concurrently. Falls back to CopyView when cfg disables
// parallelism or there are too few rows.
func CopyViewParallel[T view.Pod](src, dst view.View[T], cfg parallel.Config) {
	checkSizes(src.Size(), dst.Size())
	if src.Empty() {
		return
	}
	parallel.For(src.Size()[0], func(lo, hi int) {
		CopyView(src.Slice(0, lo, hi), dst.Slice(0, lo, hi))
	}, cfg)
}
