// gensoftmax writes a fresh blockwise-softmax fixture into ./input and
// ./output: a random float32 vector and its per-block softmax reference.
package main

import (
	"fmt"
	"log"
	"time"

	"goldgen/pkg/golden"
)

func main() {
	spec := golden.DefaultSoftmaxSpec()
	spec.Seed = uint64(time.Now().UnixNano())

	fix, err := golden.GenerateSoftmax(".", spec)
	if err != nil {
		log.Fatalf("generate softmax fixture: %v", err)
	}
	fmt.Printf("Generated %s and %s (%d cores x %d elements)\n",
		fix.InputPath, fix.GoldenPath, spec.Cores, spec.BlockLen)
}
