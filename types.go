// Package scs implements a first-order primal-dual solver for convex cone
// programs
//
//	minimize    cᵀx
//	subject to  Ax + s = b,  s ∈ K
//
// via the homogeneous self-dual embedding, following an operator-splitting
// (Douglas–Rachford with over-relaxation) iteration. See SPEC_FULL.md for
// the full design.
package scs

import (
	"github.com/gonum-community/scs/cone"
	"github.com/gonum-community/scs/linsolve"
	"github.com/gonum-community/scs/sparse"
)

// Status is the solver's terminal classification, returned as Info.StatusVal
// and as the return code of Solve/Run.
type Status int

const (
	Failure       Status = -4
	Indeterminate Status = -3
	Infeasible    Status = -2
	Unbounded     Status = -1
	solving       Status = 0 // internal only: iteration has not yet terminated
	Solved        Status = 1
)

func (s Status) String() string {
	switch s {
	case Failure:
		return "Failure"
	case Indeterminate:
		return "Indeterminate"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case Solved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Problem holds the immutable data of a single cone program. A must be in
// compressed-column form with Problem.A.Rows == len(B) == K.FullDim() and
// Problem.A.Cols == len(C).
type Problem struct {
	A *sparse.CSC
	B []float64
	C []float64
	K *cone.Cone

	Params Params

	// WarmStartSol, when Params.WarmStart is set, supplies the (x, y, s)
	// triple the engine seeds u, v from, per spec.md §4.7.
	WarmStartSol *Sol
}

// Params holds the tunable knobs of a solve, matching spec.md §3.
type Params struct {
	MaxIters  int
	Eps       float64
	Alpha     float64
	RhoX      float64
	Normalize bool
	WarmStart bool
	Verbose   bool
	UndetTol  float64
}

// DefaultParams returns the parameter set the original implementation
// treats as its defaults.
func DefaultParams() Params {
	return Params{
		MaxIters:  2500,
		Eps:       1e-3,
		Alpha:     1.8,
		RhoX:      1e-3,
		Normalize: true,
		WarmStart: false,
		Verbose:   false,
		UndetTol:  1e-9,
	}
}

// Sol holds a solution (or certificate) triple.
type Sol struct {
	X []float64 // length n
	Y []float64 // length m
	S []float64 // length m
}

// Info reports the outcome of a solve.
type Info struct {
	StatusVal Status
	Status    string
	Iter      int
	SetupTime float64
	SolveTime float64
	Pobj      float64
	Dobj      float64
	RelGap    float64
	ResPri    float64
	ResDual   float64
}

const (
	convergedInterval = 20
	printInterval     = 100
)

// kktSolver and coneProjector let the workspace's collaborators be swapped
// in tests without depending on the concrete linsolve/cone packages'
// exported types directly, mirroring spec.md §9's "opaque external
// collaborators" modeling.
type kktSolver interface {
	Solve(rhs []float64, warmStart []float64, iter int) error
	Summary() string
	Method() string
	Free()
}

type coneProjector interface {
	Project(v []float64, iter int)
	FullDim() int
	Header() string
}

var (
	_ kktSolver     = (*linsolve.KKTSolver)(nil)
	_ coneProjector = (*cone.Cone)(nil)
)
