package sparse

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func example() *CSC {
	// A = [[1, 0], [2, 3], [0, 4]]  (3x2)
	return NewCSC(3, 2,
		[]int{0, 2, 4},
		[]int{0, 1, 1, 2},
		[]float64{1, 2, 3, 4},
	)
}

func TestMulVecTo(t *testing.T) {
	a := example()
	x := []float64{1, 1}
	dst := make([]float64, 3)
	a.MulVecTo(dst, x)
	want := []float64{1, 5, 4}
	if !floats.Equal(dst, want) {
		t.Errorf("MulVecTo = %v, want %v", dst, want)
	}
}

func TestMulVecTransTo(t *testing.T) {
	a := example()
	x := []float64{1, 1, 1}
	dst := make([]float64, 2)
	a.MulVecTransTo(dst, x)
	want := []float64{3, 7}
	if !floats.Equal(dst, want) {
		t.Errorf("MulVecTransTo = %v, want %v", dst, want)
	}
}

func TestScaleRowsCols(t *testing.T) {
	a := example()
	a.ScaleRows([]float64{2, 1, 1})
	a.ScaleCols([]float64{1, 10})
	dst := make([]float64, 3)
	a.MulVecTo(dst, []float64{1, 1})
	want := []float64{2, 2 + 30, 40}
	if !floats.Equal(dst, want) {
		t.Errorf("after scaling MulVecTo = %v, want %v", dst, want)
	}
}

func TestNewCSCPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range row index")
		}
	}()
	NewCSC(2, 2, []int{0, 1, 1}, []int{5}, []float64{1})
}
