// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package algorithms copies data between flat and strided views.
//
// # Overview
//
// CopyView copies any strided view into another of the same size, whatever
// the layout of either side. Trailing dimensions that are contiguous in both
// views are collapsed into a single bulk copy, so a fully contiguous pair
// costs one memmove and a sub-block of a larger image costs one per row.
//
//	src, _ := view.Contiguous(image, view.Shape{480, 640})
//	dst, _ := view.Contiguous(make([]uint32, 100*200), view.Shape{100, 200})
//	algorithms.CopyView(src.Slice(0, 10, 110).Slice(1, 20, 220), dst)
//
// # Contract
//
// Source and destination must have identical sizes. A mismatch is a
// programming error: the call panics with a *SizeMismatchError before writing
// anything. Overlapping source and destination memory is not supported.
package algorithms

import (
	"github.com/born-ml/strided/internal/algorithms"
	"github.com/born-ml/strided/internal/parallel"
	"github.com/born-ml/strided/view"
)

// SizeMismatchError is the panic value raised on mismatched sizes.
type SizeMismatchError = algorithms.SizeMismatchError

// ErrSizeMismatch is unwrapped from every SizeMismatchError.
var ErrSizeMismatch = algorithms.ErrSizeMismatch

// ParallelConfig controls CopyViewParallel.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a configuration using every CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// CopyBytes copies src into dst. Both must have the same length.
func CopyBytes(src, dst []byte) {
	algorithms.CopyBytes(src, dst)
}

// Copy copies src into dst. Both must have the same length.
func Copy[T view.Pod](src, dst []T) {
	algorithms.Copy(src, dst)
}

// CopyView copies a strided view into another of the same size.
func CopyView[T view.Pod](src, dst view.View[T]) {
	algorithms.CopyView(src, dst)
}

// CopyViewParallel is CopyView with the outermost dimension split across goroutines.
func CopyViewParallel[T view.Pod](src, dst view.View[T], cfg ParallelConfig) {
	algorithms.CopyViewParallel(src, dst, cfg)
}
