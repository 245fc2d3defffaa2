package view

import "unsafe"

// Pod is a constraint for trivially copyable element types.
// A bitwise copy of any of these produces an independent, valid value, which
// is what lets views reinterpret them as raw bytes.
type Pod interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128 | ~bool
}

// SizeOf returns the byte width of T.
func SizeOf[T Pod]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
