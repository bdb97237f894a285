// goldencheck diffs a kernel's output tensor against a golden reference
// with an absolute/relative tolerance and reports the worst offenders.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"goldgen/pkg/golden"
)

func main() {
	var (
		gotPath  = flag.String("got", "", "Path to kernel output .bin (f32)")
		wantPath = flag.String("golden", "", "Path to golden .bin (f32)")
		atol     = flag.Float64("atol", 1e-5, "Absolute tolerance")
		rtol     = flag.Float64("rtol", 1e-3, "Relative tolerance")
		show     = flag.Int("show", 8, "Mismatches to print")
	)
	flag.Parse()

	if *gotPath == "" || *wantPath == "" {
		fmt.Fprintln(os.Stderr, "usage: goldencheck --got <path> --golden <path> [--atol N] [--rtol N] [--show N]")
		flag.Usage()
		os.Exit(2)
	}

	res, err := golden.CompareFiles(*gotPath, *wantPath, *atol, *rtol, *show)
	if err != nil {
		log.Fatalf("compare: %v", err)
	}

	fmt.Printf("elements=%d mismatched=%d atol=%g rtol=%g\n", res.Total, res.Mismatched, *atol, *rtol)
	if res.MaxIndex >= 0 {
		fmt.Printf("max abs diff %g at index %d\n", res.MaxAbs, res.MaxIndex)
	}
	for _, d := range res.First {
		fmt.Printf("  [%d] got=%g golden=%g diff=%g\n", d.Index, d.Got, d.Want, d.Abs)
	}

	if !res.Ok() {
		os.Exit(1)
	}
	fmt.Println("OK")
}
