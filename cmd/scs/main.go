// Command scs reads a cone program from a JSON problem file, solves it,
// and prints the report to stdout. This is the process-level I/O spec.md
// scopes out of the core solver.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gonum-community/scs/cone"
	"github.com/gonum-community/scs/sparse"

	scssolve "github.com/gonum-community/scs"
)

// problemFile is the on-disk JSON representation of a Problem.
type problemFile struct {
	N, M   int
	ColPtr []int
	RowIdx []int
	Val    []float64
	B      []float64
	C      []float64

	Zero int
	Pos  int
	Soc  []int
	Psd  []int

	MaxIters  int
	Eps       float64
	Alpha     float64
	RhoX      float64
	Normalize bool
	Verbose   bool
}

func main() {
	path := flag.String("problem", "", "path to a JSON problem file")
	verbose := flag.Bool("verbose", true, "print solver progress")
	maxIters := flag.Int("max-iters", 0, "override MaxIters (0 keeps the file's value)")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: scs -problem problem.json")
		os.Exit(2)
	}

	p, err := loadProblem(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "scs:", err)
		os.Exit(1)
	}
	if *verbose {
		p.Params.Verbose = true
	}
	if *maxIters > 0 {
		p.Params.MaxIters = *maxIters
	}

	sol, info := scssolve.Solve(p)
	fmt.Printf("status: %s (%d)\n", info.Status, info.StatusVal)
	fmt.Printf("x = %v\n", sol.X)
	fmt.Printf("y = %v\n", sol.Y)
	fmt.Printf("s = %v\n", sol.S)

	if info.StatusVal != scssolve.Solved {
		os.Exit(1)
	}
}

func loadProblem(path string) (*scssolve.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pf problemFile
	if err := json.NewDecoder(f).Decode(&pf); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	a := sparse.NewCSC(pf.M, pf.N, pf.ColPtr, pf.RowIdx, pf.Val)
	k := &cone.Cone{Zero: pf.Zero, Pos: pf.Pos, Soc: pf.Soc, Psd: pf.Psd}

	params := scssolve.DefaultParams()
	if pf.MaxIters > 0 {
		params.MaxIters = pf.MaxIters
	}
	if pf.Eps > 0 {
		params.Eps = pf.Eps
	}
	if pf.Alpha > 0 {
		params.Alpha = pf.Alpha
	}
	if pf.RhoX > 0 {
		params.RhoX = pf.RhoX
	}
	params.Normalize = pf.Normalize
	params.Verbose = pf.Verbose

	return &scssolve.Problem{
		A:      a,
		B:      pf.B,
		C:      pf.C,
		K:      k,
		Params: params,
	}, nil
}
