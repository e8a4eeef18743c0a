package cone

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestProjectNonneg(t *testing.T) {
	k := &Cone{Pos: 3}
	v := []float64{1, -2, 0}
	k.Project(v, 0)
	want := []float64{1, 0, 0}
	for i := range v {
		if v[i] != want[i] {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestProjectSOCInside(t *testing.T) {
	v := []float64{5, 1, 1}
	projectSOC(v)
	if v[0] != 5 || v[1] != 1 || v[2] != 1 {
		t.Errorf("inside-cone point should be unchanged, got %v", v)
	}
}

func TestProjectSOCOutside(t *testing.T) {
	v := []float64{0, 3, 4}
	projectSOC(v)
	// Projection of (0, 3, 4) (norm 5) onto the SOC is at distance 5/sqrt(2)
	// from the origin along the boundary ray through (5, 3, 4).
	nrm := norm2(v[1:])
	if !almostEqual(nrm, v[0], 1e-9) {
		t.Errorf("projected point not on boundary: t=%v, |x|=%v", v[0], nrm)
	}
}

func TestProjectSOCFarSide(t *testing.T) {
	v := []float64{-10, 3, 4}
	projectSOC(v)
	for _, x := range v {
		if x != 0 {
			t.Errorf("point in -K should project to 0, got %v", v)
		}
	}
}

func TestProjectPSDClipsNegativeEigenvalues(t *testing.T) {
	// Diagonal matrix diag(1, -1): PSD projection should clip to diag(1, 0).
	s := 2
	v := []float64{1, 0, -1}
	projectPSD(v, s)
	want := []float64{1, 0, 0}
	for i := range v {
		if !almostEqual(v[i], want[i], 1e-9) {
			t.Errorf("v[%d] = %v, want %v", i, v[i], want[i])
		}
	}
}

func TestProjectPSDAlreadyPSD(t *testing.T) {
	s := 2
	v := []float64{2, 0, 2}
	orig := append([]float64(nil), v...)
	projectPSD(v, s)
	for i := range v {
		if !almostEqual(v[i], orig[i], 1e-9) {
			t.Errorf("already-PSD matrix should be unchanged, got %v want %v", v, orig)
		}
	}
}

func TestFullDimAndValidate(t *testing.T) {
	k := &Cone{Zero: 1, Pos: 2, Soc: []int{3, 1}, Psd: []int{2}}
	if got, want := k.FullDim(), 1+2+3+1+3; got != want {
		t.Errorf("FullDim() = %d, want %d", got, want)
	}
	if err := k.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	bad := &Cone{Soc: []int{0}}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero-size soc block")
	}
}
