package kernels

import "math"

// Softmax computes the numerically stable softmax of src into dst: the
// maximum is subtracted before exponentiation so no element overflows.
// dst and src may alias. Both slices are clamped to the shorter length.
func Softmax(dst, src []float32) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	if n == 0 {
		return
	}
	maxVal := src[0]
	for i := 1; i < n; i++ {
		if src[i] > maxVal {
			maxVal = src[i]
		}
	}
	var sum float32
	for i := 0; i < n; i++ {
		w := float32(math.Exp(float64(src[i] - maxVal)))
		dst[i] = w
		sum += w
	}
	inv := 1 / sum
	for i := 0; i < n; i++ {
		dst[i] *= inv
	}
}

// SoftmaxBlocks partitions src into the given number of contiguous
// equal-size blocks and applies Softmax to each independently, the way a
// kernel does when each execution unit owns one block. Blocks are
// non-overlapping and cover len(src) exactly; a trailing remainder is
// left untouched.
func SoftmaxBlocks(dst, src []float32, blocks int) {
	if blocks <= 0 {
		return
	}
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	blockLen := n / blocks
	if blockLen == 0 {
		return
	}
	for b := 0; b < blocks; b++ {
		off := b * blockLen
		Softmax(dst[off:off+blockLen], src[off:off+blockLen])
	}
}

// SoftmaxRows treats src as a row-major rows×cols matrix and applies
// Softmax to each row independently.
func SoftmaxRows(dst, src []float32, rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	if len(src) < rows*cols || len(dst) < rows*cols {
		return
	}
	for r := 0; r < rows; r++ {
		off := r * cols
		Softmax(dst[off:off+cols], src[off:off+cols])
	}
}
