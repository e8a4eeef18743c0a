package linsolve

import (
	"math"
	"testing"

	"github.com/gonum-community/scs/sparse"
)

func identityProblem() *sparse.CSC {
	// A = I (2x2)
	return sparse.NewCSC(2, 2,
		[]int{0, 1, 2},
		[]int{0, 1},
		[]float64{1, 1},
	)
}

func TestSolveIdentity(t *testing.T) {
	a := identityProblem()
	solver, err := Setup(a, 1e-3)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	// M = [rho*I, I; I, -I]. With rho small, for rx=[1,1], ry=[0,0]:
	// Schur: (rho*I + I) x = rx  =>  x ~ rx/(1+rho).
	rhs := []float64{1, 1, 0, 0}
	if err := solver.Solve(rhs, nil, 0); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	wantX := 1 / (1 + 1e-3)
	for i := 0; i < 2; i++ {
		if math.Abs(rhs[i]-wantX) > 1e-6 {
			t.Errorf("x[%d] = %v, want %v", i, rhs[i], wantX)
		}
	}
	if solver.Summary() == "" {
		t.Error("Summary should be non-empty")
	}
}

func TestSetupRejectsNegativeRho(t *testing.T) {
	a := identityProblem()
	if _, err := Setup(a, -1); err == nil {
		t.Error("expected error for negative rho")
	}
}
