// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view_test

import (
	"testing"

	"github.com/born-ml/strided/view"
)

// TestViewAPI verifies the View alias exposes the expected API.
func TestViewAPI(t *testing.T) {
	data := []float32{0, 1, 2, 3, 4, 5}
	v, err := view.Contiguous(data, view.Shape{2, 3})
	if err != nil {
		t.Fatalf("Contiguous failed: %v", err)
	}

	if !v.Size().Equal(view.Shape{2, 3}) {
		t.Errorf("Size() = %v, want [2 3]", v.Size())
	}
	if v.Dims() != 2 {
		t.Errorf("Dims() = %d, want 2", v.Dims())
	}
	if !v.IsContiguous() {
		t.Error("Contiguous view should report IsContiguous()")
	}
	if got := v.Transpose(0, 1).At(2, 1); got != 5 {
		t.Errorf("Transpose(0, 1).At(2, 1) = %v, want 5", got)
	}
}

// TestReinterpretAPI verifies Bytes and Cast round-trip through the public package.
func TestReinterpretAPI(t *testing.T) {
	v, err := view.New([]uint16{1, 2, 3, 4}, view.Shape{2}, view.Stride{4})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	b := view.Bytes(v)
	if !b.Size().Equal(view.Shape{2, 2}) {
		t.Errorf("Bytes(v).Size() = %v, want [2 2]", b.Size())
	}

	back, err := view.Cast[uint16](b)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if back.At(1) != 3 {
		t.Errorf("Cast(Bytes(v)).At(1) = %d, want 3", back.At(1))
	}

	if n := len(view.AsBytes([]uint16{1, 2, 3})); n != 3*view.SizeOf[uint16]() {
		t.Errorf("len(AsBytes) = %d, want 6", n)
	}
}
