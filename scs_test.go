package scs

import (
	"math"
	"testing"

	"github.com/gonum-community/scs/cone"
	"github.com/gonum-community/scs/sparse"
)

func TestTrivialLP(t *testing.T) {
	a := sparse.NewCSC(1, 1, []int{0, 1}, []int{0}, []float64{1})
	p := &Problem{
		A:      a,
		B:      []float64{1},
		C:      []float64{-1},
		K:      &cone.Cone{Pos: 1},
		Params: DefaultParams(),
	}
	sol, info := Solve(p)
	if info.StatusVal != Solved {
		t.Fatalf("status = %v, want Solved (info=%+v)", info.StatusVal, info)
	}
	if math.Abs(sol.X[0]-1) > 1e-2 {
		t.Errorf("x = %v, want ~1", sol.X)
	}
	if math.Abs(info.Pobj+1) > 1e-2 {
		t.Errorf("pobj = %v, want ~-1", info.Pobj)
	}
}

func TestInfeasible(t *testing.T) {
	a := sparse.NewCSC(2, 1, []int{0, 2}, []int{0, 1}, []float64{1, -1})
	p := &Problem{
		A:      a,
		B:      []float64{1, -2},
		C:      []float64{0},
		K:      &cone.Cone{Pos: 2},
		Params: DefaultParams(),
	}
	sol, info := Solve(p)
	if info.StatusVal != Infeasible {
		t.Fatalf("status = %v, want Infeasible (info=%+v)", info.StatusVal, info)
	}
	by := 0.0
	for i := range p.B {
		by += p.B[i] * sol.Y[i]
	}
	if by >= 0 {
		t.Errorf("b'y = %v, want < 0", by)
	}
}

func TestUnbounded(t *testing.T) {
	a := sparse.NewCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{-1, -1})
	p := &Problem{
		A:      a,
		B:      []float64{0, 0},
		C:      []float64{-1, -1},
		K:      &cone.Cone{Pos: 2},
		Params: DefaultParams(),
	}
	sol, info := Solve(p)
	if info.StatusVal != Unbounded {
		t.Fatalf("status = %v, want Unbounded (info=%+v)", info.StatusVal, info)
	}
	cx := p.C[0]*sol.X[0] + p.C[1]*sol.X[1]
	if cx >= 0 {
		t.Errorf("c'x = %v, want < 0", cx)
	}
}

func TestSOCPFeasibility(t *testing.T) {
	a := sparse.NewCSC(2, 1, []int{0, 1}, []int{1}, []float64{-1})
	p := &Problem{
		A:      a,
		B:      []float64{1, 0},
		C:      []float64{0},
		K:      &cone.Cone{Soc: []int{2}},
		Params: DefaultParams(),
	}
	sol, info := Solve(p)
	if info.StatusVal != Solved {
		t.Fatalf("status = %v, want Solved (info=%+v)", info.StatusVal, info)
	}
	if math.Abs(sol.X[0]) > 1e-1 {
		t.Errorf("x = %v, want ~0", sol.X)
	}
}

func TestWarmStartConvergesQuickly(t *testing.T) {
	a := sparse.NewCSC(1, 1, []int{0, 1}, []int{0}, []float64{1})
	p := &Problem{
		A:      a,
		B:      []float64{1},
		C:      []float64{-1},
		K:      &cone.Cone{Pos: 1},
		Params: DefaultParams(),
	}
	sol, info := Solve(p)
	if info.StatusVal != Solved {
		t.Fatalf("first solve status = %v, want Solved", info.StatusVal)
	}

	p2 := &Problem{
		A:            a,
		B:            []float64{1},
		C:            []float64{-1},
		K:            &cone.Cone{Pos: 1},
		Params:       DefaultParams(),
		WarmStartSol: sol,
	}
	p2.Params.WarmStart = true
	_, info2 := Solve(p2)
	if info2.StatusVal != Solved {
		t.Fatalf("warm-started solve status = %v, want Solved", info2.StatusVal)
	}
	if info2.Iter > convergedInterval {
		t.Errorf("warm-started solve took %d iterations, want <= %d", info2.Iter, convergedInterval)
	}
}

func TestValidationRejectsMLessThanN(t *testing.T) {
	a := sparse.NewCSC(1, 2, []int{0, 1, 2}, []int{0, 0}, []float64{1, 1})
	p := &Problem{
		A:      a,
		B:      []float64{1},
		C:      []float64{1, 1},
		K:      &cone.Cone{Pos: 1},
		Params: DefaultParams(),
	}
	_, info := Solve(p)
	if info.StatusVal != Failure {
		t.Errorf("status = %v, want Failure for m < n", info.StatusVal)
	}
	if !math.IsNaN(info.Pobj) {
		t.Errorf("Pobj = %v, want NaN on Failure", info.Pobj)
	}
}

func TestValidationRejectsAlphaOutOfRange(t *testing.T) {
	a := sparse.NewCSC(1, 1, []int{0, 1}, []int{0}, []float64{1})
	params := DefaultParams()
	params.Alpha = 2
	p := &Problem{A: a, B: []float64{1}, C: []float64{-1}, K: &cone.Cone{Pos: 1}, Params: params}
	_, info := Solve(p)
	if info.StatusVal != Failure {
		t.Errorf("status = %v, want Failure for Alpha=2", info.StatusVal)
	}
}
