package equilibrate

import (
	"math"
	"testing"

	"github.com/gonum-community/scs/cone"
	"github.com/gonum-community/scs/sparse"
)

func TestIdentityIsNoOp(t *testing.T) {
	s := Identity(3, 2)
	b := []float64{1, 2, 3}
	c := []float64{4, 5}
	origB := append([]float64(nil), b...)
	origC := append([]float64(nil), c...)

	NormalizeBC(b, c, s)
	if !equal(b, origB) || !equal(c, origC) {
		t.Errorf("NormalizeBC with identity scales changed values: b=%v c=%v", b, c)
	}

	x := []float64{1, 2}
	y := []float64{1, 2, 3}
	sVec := []float64{1, 2, 3}
	origX, origY, origS := append([]float64(nil), x...), append([]float64(nil), y...), append([]float64(nil), sVec...)
	UnNormalizeSolBC(b, c, x, y, sVec, s)
	if !equal(x, origX) || !equal(y, origY) || !equal(sVec, origS) {
		t.Errorf("UnNormalizeSolBC with identity scales changed values")
	}
}

func TestNormalizeThenUnNormalizeRoundtripsBC(t *testing.T) {
	a := sparse.NewCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{3, 5})
	k := &cone.Cone{Pos: 2}
	s := NormalizeA(a, k)

	b := []float64{1, 2}
	c := []float64{3, 4}
	origB, origC := append([]float64(nil), b...), append([]float64(nil), c...)

	NormalizeBC(b, c, s)
	x := make([]float64, 2)
	y := make([]float64, 2)
	sVec := make([]float64, 2)
	UnNormalizeSolBC(b, c, x, y, sVec, s)

	if !approxEqual(b, origB, 1e-9) || !approxEqual(c, origC, 1e-9) {
		t.Errorf("roundtrip failed: b=%v (want %v), c=%v (want %v)", b, origB, c, origC)
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func approxEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
