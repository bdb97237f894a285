// bindump prints summary statistics and a head sample of a raw tensor dump.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"goldgen/internal/tensorio"
)

func main() {
	var (
		path  = flag.String("file", "", "Path to raw tensor .bin")
		dtype = flag.String("type", "f32", "Element type: f32 or f16")
		head  = flag.Int("head", 8, "Leading elements to print")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: bindump --file <path> [--type f32|f16] [--head N]")
		flag.Usage()
		os.Exit(2)
	}

	var (
		vals []float32
		err  error
	)
	switch *dtype {
	case "f32":
		vals, err = tensorio.ReadF32(*path)
	case "f16":
		vals, err = tensorio.ReadF16AsF32(*path)
	default:
		log.Fatalf("unknown element type %q", *dtype)
	}
	if err != nil {
		log.Fatalf("read tensor: %v", err)
	}
	if len(vals) == 0 {
		log.Fatalf("tensor %s is empty", *path)
	}

	min, max := vals[0], vals[0]
	var sum float64
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += float64(v)
	}
	fmt.Printf("file=%s type=%s elements=%d min=%g max=%g mean=%g\n",
		*path, *dtype, len(vals), min, max, sum/float64(len(vals)))

	n := *head
	if n > len(vals) {
		n = len(vals)
	}
	for i := 0; i < n; i++ {
		fmt.Printf("  [%d] %g\n", i, vals[i])
	}
}
