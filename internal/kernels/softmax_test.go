package kernels

import (
	"math"
	"testing"
)

func TestSoftmaxConstantBlockIsUniform(t *testing.T) {
	out := make([]float32, 4)
	Softmax(out, []float32{0, 0, 0, 0})
	for i, v := range out {
		if math.Abs(float64(v)-0.25) > 1e-7 {
			t.Fatalf("out[%d] = %v, want 0.25", i, v)
		}
	}

	Softmax(out, []float32{3.5, 3.5, 3.5, 3.5})
	for i, v := range out {
		if math.Abs(float64(v)-0.25) > 1e-7 {
			t.Fatalf("constant 3.5: out[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestSoftmaxSumsToOneAndBounded(t *testing.T) {
	src := []float32{-4.5, 2, 0.25, 1, -1, 3.75, -0.125, 0.5}
	out := make([]float32, len(src))
	Softmax(out, src)

	var sum float64
	for i, v := range out {
		if v < 0 || v > 1 {
			t.Fatalf("out[%d] = %v outside [0,1]", i, v)
		}
		sum += float64(v)
	}
	if math.Abs(sum-1) > 1e-5 {
		t.Fatalf("sum = %v, want 1", sum)
	}
}

func TestSoftmaxShiftInvariance(t *testing.T) {
	src := []float32{-2, 0.5, 1.25, 3, -0.75}
	shifted := make([]float32, len(src))
	for i, v := range src {
		shifted[i] = v + 100
	}
	a := make([]float32, len(src))
	b := make([]float32, len(src))
	Softmax(a, src)
	Softmax(b, shifted)
	for i := range a {
		if math.Abs(float64(a[i])-float64(b[i])) > 1e-6 {
			t.Fatalf("out[%d]: %v vs %v after shift", i, a[i], b[i])
		}
	}
}

func TestSoftmaxInPlace(t *testing.T) {
	v := []float32{1, 2, 3}
	want := make([]float32, 3)
	Softmax(want, v)

	got := []float32{1, 2, 3}
	Softmax(got, got)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-place out[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSoftmaxBlocksAreIndependent(t *testing.T) {
	src := []float32{1, 2, 3, 4, -1, -2, -3, -4}
	out := make([]float32, len(src))
	SoftmaxBlocks(out, src, 2)

	// Each block must equal the softmax of that block alone.
	for b := 0; b < 2; b++ {
		want := make([]float32, 4)
		Softmax(want, src[b*4:b*4+4])
		for i := range want {
			if out[b*4+i] != want[i] {
				t.Fatalf("block %d out[%d] = %v, want %v", b, i, out[b*4+i], want[i])
			}
		}
	}

	// Perturbing one block must not change the other.
	src2 := append([]float32(nil), src...)
	src2[5] = 50
	out2 := make([]float32, len(src2))
	SoftmaxBlocks(out2, src2, 2)
	for i := 0; i < 4; i++ {
		if out2[i] != out[i] {
			t.Fatalf("first block changed at %d: %v vs %v", i, out2[i], out[i])
		}
	}
}

func TestSoftmaxRowsMatchesBlocks(t *testing.T) {
	src := []float32{0, 1, 2, 3, 4, 5}
	a := make([]float32, len(src))
	b := make([]float32, len(src))
	SoftmaxRows(a, src, 2, 3)
	SoftmaxBlocks(b, src, 2)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("out[%d]: rows=%v blocks=%v", i, a[i], b[i])
		}
	}
}

func TestSoftmaxHandlesDegenerateShapes(t *testing.T) {
	Softmax(nil, nil)
	SoftmaxBlocks(nil, nil, 4)
	SoftmaxRows(nil, nil, 2, 2)

	// Zero blocks leaves the destination untouched.
	out := []float32{-1, -1, -1, -1}
	SoftmaxBlocks(out, []float32{0, 0, 0, 0}, 0)
	for i, v := range out {
		if v != -1 {
			t.Fatalf("out[%d] = %v, want untouched -1", i, v)
		}
	}
}
