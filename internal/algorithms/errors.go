package algorithms

import (
	"errors"
	"fmt"

	"github.com/born-ml/strided/internal/view"
)

// ErrSizeMismatch is the sentinel unwrapped from every SizeMismatchError.
var ErrSizeMismatch = errors.New("sizes don't match")

// SizeMismatchError is the panic value raised when source and destination
// shapes differ. Flat copies report lengths as one-dimensional shapes.
type SizeMismatchError struct {
	Src view.Shape
	Dst view.Shape
}

// Error implements the error interface.
func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("algorithms: sizes %v and %v don't match", e.Src, e.Dst)
}

// Unwrap returns ErrSizeMismatch.
func (e *SizeMismatchError) Unwrap() error {
	return ErrSizeMismatch
}

func checkSizes(src, dst view.Shape) {
	if !src.Equal(dst) {
		panic(&SizeMismatchError{Src: src.Clone(), Dst: dst.Clone()})
	}
}
