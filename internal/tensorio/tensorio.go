// Package tensorio reads and writes raw tensor dumps: the element bytes in
// little-endian order, row-major, with no header. Files are written whole
// and overwritten on each run.
package tensorio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/x448/float16"
)

// WriteF32 dumps vals to path as little-endian float32.
func WriteF32(path string, vals []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create f32 tensor %s: %w", path, err)
	}
	if err := binary.Write(f, binary.LittleEndian, vals); err != nil {
		f.Close()
		return fmt.Errorf("write f32 tensor %s: %w", path, err)
	}
	return f.Close()
}

// WriteF16 dumps vals to path as little-endian IEEE half-precision bits.
func WriteF16(path string, vals []float16.Float16) error {
	bits := make([]uint16, len(vals))
	for i, v := range vals {
		bits[i] = v.Bits()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create f16 tensor %s: %w", path, err)
	}
	if err := binary.Write(f, binary.LittleEndian, bits); err != nil {
		f.Close()
		return fmt.Errorf("write f16 tensor %s: %w", path, err)
	}
	return f.Close()
}

// ReadF32 loads an entire f32 tensor file. The element count is implied by
// the file size, which must be a multiple of 4 bytes.
func ReadF32(path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("f32 tensor %s: size %d not a multiple of 4", path, len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}

// ReadF16 loads an entire f16 tensor file without widening.
func ReadF16(path string) ([]float16.Float16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("f16 tensor %s: size %d not a multiple of 2", path, len(raw))
	}
	out := make([]float16.Float16, len(raw)/2)
	for i := range out {
		out[i] = float16.Frombits(binary.LittleEndian.Uint16(raw[i*2:]))
	}
	return out, nil
}

// ReadF16AsF32 loads an f16 tensor file upcast to float32.
func ReadF16AsF32(path string) ([]float32, error) {
	half, err := ReadF16(path)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(half))
	for i, v := range half {
		out[i] = v.Float32()
	}
	return out, nil
}
