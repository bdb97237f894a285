package golden

import (
	"fmt"
	"math"

	"goldgen/internal/tensorio"
)

// Diff records one element that exceeded the comparison tolerance.
type Diff struct {
	Index int
	Got   float32
	Want  float32
	Abs   float64
}

// CompareResult summarizes a tolerance comparison of a kernel output
// against a golden reference.
type CompareResult struct {
	Total      int
	Mismatched int
	MaxAbs     float64
	MaxIndex   int
	First      []Diff // first few mismatches, capped by the limit passed to Compare
}

func (r CompareResult) Ok() bool {
	return r.Mismatched == 0
}

// Compare checks got against want elementwise. An element mismatches when
// |got-want| > atol + rtol*|want|. Up to limit mismatches are retained in
// First for reporting.
func Compare(got, want []float32, atol, rtol float64, limit int) (CompareResult, error) {
	if len(got) != len(want) {
		return CompareResult{}, fmt.Errorf("length mismatch: got %d elements, golden has %d", len(got), len(want))
	}
	res := CompareResult{Total: len(want), MaxIndex: -1}
	for i := range want {
		abs := math.Abs(float64(got[i]) - float64(want[i]))
		if abs > res.MaxAbs {
			res.MaxAbs = abs
			res.MaxIndex = i
		}
		// abs is NaN when either side is NaN; every comparison on NaN is
		// false, so it must be checked explicitly or a broken kernel
		// output full of NaNs would pass.
		if math.IsNaN(abs) || abs > atol+rtol*math.Abs(float64(want[i])) {
			res.Mismatched++
			if len(res.First) < limit {
				res.First = append(res.First, Diff{Index: i, Got: got[i], Want: want[i], Abs: abs})
			}
		}
	}
	return res, nil
}

// CompareFiles runs Compare over two raw f32 tensor files.
func CompareFiles(gotPath, wantPath string, atol, rtol float64, limit int) (CompareResult, error) {
	got, err := tensorio.ReadF32(gotPath)
	if err != nil {
		return CompareResult{}, err
	}
	want, err := tensorio.ReadF32(wantPath)
	if err != nil {
		return CompareResult{}, err
	}
	return Compare(got, want, atol, rtol, limit)
}
