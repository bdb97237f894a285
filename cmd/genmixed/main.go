// genmixed writes a fresh fixture for the fused matmul+bias+LeakyReLU+
// softmax kernel: fp16 input matrices, an fp32 bias vector, and the two
// golden outputs (post-LeakyReLU and post-softmax).
package main

import (
	"fmt"
	"log"
	"time"

	"goldgen/pkg/golden"
)

func main() {
	spec := golden.DefaultMixedSpec()
	spec.Seed = uint64(time.Now().UnixNano())

	fix, err := golden.GenerateMixed(".", spec)
	if err != nil {
		log.Fatalf("generate mixed fixture: %v", err)
	}
	fmt.Printf("Generated fixtures for %dx%d matmul (LeakyReLU alpha=%g)\n",
		spec.Size, spec.Size, spec.Alpha)
	fmt.Printf("  inputs:  %s %s %s\n", fix.APath, fix.BPath, fix.BiasPath)
	fmt.Printf("  goldens: %s %s\n", fix.GoldenPath, fix.GoldenSoftmaxPath)
}
