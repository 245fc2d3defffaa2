// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides non-owning strided views over memory.
//
// # Overview
//
// A View[T] describes where the elements of an array live without owning
// them: a backing byte slice, the offset of the first element, and a size and
// byte stride per dimension. Strides may exceed the element width (sub-blocks
// of a larger buffer), be negative (flipped dimensions) or be permuted
// (transposes). Deriving a view never copies data.
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/view"
//
//	pixels := make([]uint32, 640*480)
//	image, _ := view.Contiguous(pixels, view.Shape{480, 640})
//
//	// A 100x200 window, still pointing into pixels.
//	window := image.Slice(0, 10, 110).Slice(1, 20, 220)
//
//	// Upside down and transposed.
//	flipped := window.Flip(0).Transpose(0, 1)
//
// # Element Types
//
// Views accept trivially copyable element types only, expressed by the Pod
// constraint: fixed-size integers, floats, complex numbers, bool, and named
// types over them. Types containing pointers are rejected at compile time.
//
// # Reinterpretation
//
// Bytes turns a View[T] into a View[byte] with one extra innermost dimension
// of sizeof(T) bytes; Cast undoes it. AsBytes does the same for plain slices.
package view
