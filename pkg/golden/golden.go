// Package golden generates synthetic inputs and reference outputs for the
// accelerator compute kernels under test. Each generator samples fresh
// random inputs, computes the reference result on the CPU and persists both
// as raw .bin dumps for later comparison against the kernel's output.
package golden

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/x448/float16"
	"golang.org/x/exp/rand"

	"goldgen/internal/kernels"
	"goldgen/internal/tensorio"
)

// Kernel geometry. These mirror the constants compiled into the device
// kernels; changing one side without the other invalidates the fixtures.
const (
	NumCores  = 8
	BlockSize = 2048

	MatrixSize     = 96
	LeakyReLUAlpha = 0.001

	inputDir  = "input"
	outputDir = "output"
)

// SoftmaxSpec describes the blockwise softmax fixture: a flat float32
// vector of Cores*BlockLen elements with softmax applied independently per
// contiguous block, one block per execution core.
type SoftmaxSpec struct {
	Cores    int
	BlockLen int
	Low      float64 // uniform sampling bounds, [Low, High)
	High     float64
	Seed     uint64
}

func DefaultSoftmaxSpec() SoftmaxSpec {
	return SoftmaxSpec{
		Cores:    NumCores,
		BlockLen: BlockSize,
		Low:      -5,
		High:     5,
	}
}

// SoftmaxFixture names the files a softmax generation run wrote.
type SoftmaxFixture struct {
	InputPath  string
	GoldenPath string
}

// GenerateSoftmax samples a fresh input vector, computes the blockwise
// softmax reference and writes both under dir. Existing files at the same
// paths are overwritten.
func GenerateSoftmax(dir string, spec SoftmaxSpec) (SoftmaxFixture, error) {
	var fix SoftmaxFixture
	if spec.Cores <= 0 || spec.BlockLen <= 0 {
		return fix, fmt.Errorf("invalid softmax spec: cores=%d blocklen=%d", spec.Cores, spec.BlockLen)
	}
	if err := makeFixtureDirs(dir); err != nil {
		return fix, err
	}

	total := spec.Cores * spec.BlockLen
	rng := rand.New(rand.NewSource(spec.Seed))
	input := make([]float32, total)
	for i := range input {
		input[i] = float32(spec.Low + (spec.High-spec.Low)*rng.Float64())
	}

	result := make([]float32, total)
	kernels.SoftmaxBlocks(result, input, spec.Cores)

	fix.InputPath = filepath.Join(dir, inputDir, "softmax_input.bin")
	fix.GoldenPath = filepath.Join(dir, outputDir, "golden.bin")
	if err := tensorio.WriteF32(fix.InputPath, input); err != nil {
		return fix, err
	}
	if err := tensorio.WriteF32(fix.GoldenPath, result); err != nil {
		return fix, err
	}
	return fix, nil
}

// RecomputeSoftmax rebuilds the blockwise softmax golden from a persisted
// input file. Given the same input it reproduces the golden byte for byte.
func RecomputeSoftmax(inputPath string, cores int) ([]float32, error) {
	input, err := tensorio.ReadF32(inputPath)
	if err != nil {
		return nil, err
	}
	if cores <= 0 || len(input)%cores != 0 {
		return nil, fmt.Errorf("input %s: %d elements not divisible into %d blocks", inputPath, len(input), cores)
	}
	result := make([]float32, len(input))
	kernels.SoftmaxBlocks(result, input, cores)
	return result, nil
}

// MixedSpec describes the fused matmul+bias+LeakyReLU+softmax fixture:
// two Size×Size fp16 matrices and an fp32 bias vector, with both the
// post-LeakyReLU and post-softmax results persisted as goldens.
type MixedSpec struct {
	Size       int
	Alpha      float32 // LeakyReLU negative slope
	InputScale float32 // matrix entries are small integers times this scale
	Seed       uint64
}

func DefaultMixedSpec() MixedSpec {
	return MixedSpec{
		Size:       MatrixSize,
		Alpha:      LeakyReLUAlpha,
		InputScale: 0.001,
	}
}

// MixedFixture names the files a mixed generation run wrote.
type MixedFixture struct {
	APath             string
	BPath             string
	BiasPath          string
	GoldenPath        string
	GoldenSoftmaxPath string
}

// GenerateMixed samples fresh inputs, computes the fused reference pipeline
// and writes the five fixture files under dir. Matrix inputs are stored
// fp16 and upcast to float32 before matmul accumulation, so the goldens
// reflect exactly the values the kernel will read back.
func GenerateMixed(dir string, spec MixedSpec) (MixedFixture, error) {
	var fix MixedFixture
	if spec.Size <= 0 {
		return fix, fmt.Errorf("invalid mixed spec: size=%d", spec.Size)
	}
	if err := makeFixtureDirs(dir); err != nil {
		return fix, err
	}

	n := spec.Size
	rng := rand.New(rand.NewSource(spec.Seed))
	a16 := sampleHalfMatrix(rng, n*n, spec.InputScale)
	b16 := sampleHalfMatrix(rng, n*n, spec.InputScale)
	bias := make([]float32, n)
	for i := range bias {
		bias[i] = float32(rng.Intn(2) - 1)
	}

	relu, soft := mixedReference(widen(a16), widen(b16), bias, n, spec.Alpha)

	fix.APath = filepath.Join(dir, inputDir, "x1_gm.bin")
	fix.BPath = filepath.Join(dir, inputDir, "x2_gm.bin")
	fix.BiasPath = filepath.Join(dir, inputDir, "bias.bin")
	fix.GoldenPath = filepath.Join(dir, outputDir, "golden.bin")
	fix.GoldenSoftmaxPath = filepath.Join(dir, outputDir, "golden_softmax.bin")

	if err := tensorio.WriteF16(fix.APath, a16); err != nil {
		return fix, err
	}
	if err := tensorio.WriteF16(fix.BPath, b16); err != nil {
		return fix, err
	}
	if err := tensorio.WriteF32(fix.BiasPath, bias); err != nil {
		return fix, err
	}
	if err := tensorio.WriteF32(fix.GoldenPath, relu); err != nil {
		return fix, err
	}
	if err := tensorio.WriteF32(fix.GoldenSoftmaxPath, soft); err != nil {
		return fix, err
	}
	return fix, nil
}

// RecomputeMixed rebuilds both mixed goldens from persisted input files.
func RecomputeMixed(aPath, bPath, biasPath string, size int, alpha float32) (relu, soft []float32, err error) {
	a, err := tensorio.ReadF16AsF32(aPath)
	if err != nil {
		return nil, nil, err
	}
	b, err := tensorio.ReadF16AsF32(bPath)
	if err != nil {
		return nil, nil, err
	}
	bias, err := tensorio.ReadF32(biasPath)
	if err != nil {
		return nil, nil, err
	}
	if len(a) != size*size || len(b) != size*size || len(bias) != size {
		return nil, nil, fmt.Errorf("mixed inputs do not match size %d: a=%d b=%d bias=%d", size, len(a), len(b), len(bias))
	}
	relu, soft = mixedReference(a, b, bias, size, alpha)
	return relu, soft, nil
}

// mixedReference runs matmul, bias broadcast, LeakyReLU and row-softmax in
// float32, in that order. The LeakyReLU output is the first golden, its
// row-softmax the second.
func mixedReference(a, b, bias []float32, n int, alpha float32) (relu, soft []float32) {
	relu = make([]float32, n*n)
	kernels.MatMul(relu, a, b, n, n, n)
	kernels.AddBias(relu, bias, n, n)
	kernels.LeakyReLU(relu, relu, alpha)

	soft = make([]float32, n*n)
	kernels.SoftmaxRows(soft, relu, n, n)
	return relu, soft
}

// sampleHalfMatrix draws count entries as integers from {-1, 0} scaled to
// fp16, matching the distribution the kernels are validated against.
func sampleHalfMatrix(rng *rand.Rand, count int, scale float32) []float16.Float16 {
	out := make([]float16.Float16, count)
	for i := range out {
		v := float32(rng.Intn(2)-1) * scale
		out[i] = float16.Fromfloat32(v)
	}
	return out
}

func widen(vals []float16.Float16) []float32 {
	out := make([]float32, len(vals))
	for i, v := range vals {
		out[i] = v.Float32()
	}
	return out
}

func makeFixtureDirs(dir string) error {
	for _, sub := range []string{inputDir, outputDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create %s dir: %w", sub, err)
		}
	}
	return nil
}
