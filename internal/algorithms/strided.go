package algorithms

import (
	"github.com/born-ml/strided/internal/view"
)

// copyStrided copies between two byte views of the same size.
func copyStrided(src, dst view.View[byte]) {
	checkSizes(src.Size(), dst.Size())
	if src.Empty() {
		return
	}

	// Dimensions from outer on are contiguous in both views and collapse
	// into a single run of bytes.
	outer := max(src.ContiguousFrom(), dst.ContiguousFrom())
	run := src.Size()[outer:].NumElements()
	copyOuter(src, dst, outer, run)
}

// copyOuter copies the first outer dimensions of src into dst, one run of
// bytes per innermost iteration.
func copyOuter(src, dst view.View[byte], outer, run int) {
	s, d := src.Data(), dst.Data()
	so, do := src.Offset(), dst.Offset()
	size, ss, ds := src.Size(), src.Stride(), dst.Stride()

	switch outer {
	case 0:
		CopyBytes(s[so:so+run], d[do:do+run])
	case 1:
		copy1D(s, d, so, do, run, size, ss, ds)
	case 2:
		copy2D(s, d, so, do, run, size, ss, ds)
	case 3:
		copy3D(s, d, so, do, run, size, ss, ds)
	case 4:
		copy4D(s, d, so, do, run, size, ss, ds)
	default:
		for i := 0; i < size[0]; i++ {
			copyOuter(src.Index(i), dst.Index(i), outer-1, run)
		}
	}
}

func copy1D(s, d []byte, so, do, run int, size view.Shape, ss, ds view.Stride) {
	for i := 0; i < size[0]; i++ {
		CopyBytes(s[so:so+run], d[do:do+run])
		so += ss[0]
		do += ds[0]
	}
}

func copy2D(s, d []byte, so, do, run int, size view.Shape, ss, ds view.Stride) {
	for i := 0; i < size[0]; i++ {
		si, di := so, do
		for j := 0; j < size[1]; j++ {
			CopyBytes(s[si:si+run], d[di:di+run])
			si += ss[1]
			di += ds[1]
		}
		so += ss[0]
		do += ds[0]
	}
}

func copy3D(s, d []byte, so, do, run int, size view.Shape, ss, ds view.Stride) {
	for i := 0; i < size[0]; i++ {
		si, di := so, do
		for j := 0; j < size[1]; j++ {
			sj, dj := si, di
			for k := 0; k < size[2]; k++ {
				CopyBytes(s[sj:sj+run], d[dj:dj+run])
				sj += ss[2]
				dj += ds[2]
			}
			si += ss[1]
			di += ds[1]
		}
		so += ss[0]
		do += ds[0]
	}
}

func copy4D(s, d []byte, so, do, run int, size view.Shape, ss, ds view.Stride) {
	for i := 0; i < size[0]; i++ {
		si, di := so, do
		for j := 0; j < size[1]; j++ {
			sj, dj := si, di
			for k := 0; k < size[2]; k++ {
				sk, dk := sj, dj
				for l := 0; l < size[3]; l++ {
					CopyBytes(s[sk:sk+run], d[dk:dk+run])
					sk += ss[3]
					dk += ds[3]
				}
				sj += ss[2]
				dj += ds[2]
			}
			si += ss[1]
			di += ds[1]
		}
		so += ss[0]
		do += ds[0]
	}
}
