// Package sparse provides a compressed-column sparse matrix type and the
// dense-vector kernels the solver builds on.
package sparse

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CSC is a sparse matrix in compressed-column form: ColPtr has length
// Cols+1 and is non-decreasing (a column may be empty), RowIdx and Val have length
// ColPtr[Cols] and hold, for each column j, the row indices and values of
// the nonzeros in column j at positions [ColPtr[j], ColPtr[j+1]).
type CSC struct {
	Rows, Cols int
	ColPtr     []int
	RowIdx     []int
	Val        []float64
}

// NewCSC returns a CSC matrix of the given shape, validating the column
// pointer and row-index arrays.
func NewCSC(rows, cols int, colPtr, rowIdx []int, val []float64) *CSC {
	if rows <= 0 || cols <= 0 {
		panic("sparse: non-positive dimension")
	}
	if len(colPtr) != cols+1 {
		panic("sparse: colPtr has wrong length")
	}
	for j := 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			panic("sparse: colPtr is not non-decreasing")
		}
	}
	nnz := colPtr[cols]
	if nnz <= 0 {
		panic("sparse: matrix has no nonzeros")
	}
	if len(rowIdx) != nnz || len(val) != nnz {
		panic("sparse: rowIdx/val length does not match colPtr")
	}
	for _, i := range rowIdx {
		if i < 0 || i >= rows {
			panic("sparse: row index out of range")
		}
	}
	return &CSC{Rows: rows, Cols: cols, ColPtr: colPtr, RowIdx: rowIdx, Val: val}
}

// NNZ returns the number of stored nonzeros.
func (m *CSC) NNZ() int {
	return m.ColPtr[m.Cols]
}

// MulVecTo computes dst = A*x, overwriting dst.
func (m *CSC) MulVecTo(dst, x []float64) {
	if len(x) != m.Cols {
		panic("sparse: x has wrong length")
	}
	if len(dst) != m.Rows {
		panic("sparse: dst has wrong length")
	}
	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < m.Cols; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			dst[m.RowIdx[p]] += m.Val[p] * xj
		}
	}
}

// MulVecTransTo computes dst = Aᵀ*x, overwriting dst.
func (m *CSC) MulVecTransTo(dst, x []float64) {
	if len(x) != m.Rows {
		panic("sparse: x has wrong length")
	}
	if len(dst) != m.Cols {
		panic("sparse: dst has wrong length")
	}
	for j := 0; j < m.Cols; j++ {
		var sum float64
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			sum += m.Val[p] * x[m.RowIdx[p]]
		}
		dst[j] = sum
	}
}

// AddVecTo computes dst = A*x + y, overwriting dst. y may alias dst.
func (m *CSC) AddVecTo(dst, x, y []float64) {
	m.MulVecTo(dst, x)
	floats.Add(dst, y)
}

// ScaleRows multiplies row i of A in place by d[i], for all i.
func (m *CSC) ScaleRows(d []float64) {
	if len(d) != m.Rows {
		panic("sparse: scale vector has wrong length")
	}
	for p, i := range m.RowIdx {
		m.Val[p] *= d[i]
	}
}

// ScaleCols multiplies column j of A in place by e[j], for all j.
func (m *CSC) ScaleCols(e []float64) {
	if len(e) != m.Cols {
		panic("sparse: scale vector has wrong length")
	}
	for j := 0; j < m.Cols; j++ {
		ej := e[j]
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			m.Val[p] *= ej
		}
	}
}

// Scale multiplies every stored value in place by c.
func (m *CSC) Scale(c float64) {
	floats.Scale(c, m.Val)
}

// ColNorms returns the Euclidean norm of each column.
func (m *CSC) ColNorms() []float64 {
	out := make([]float64, m.Cols)
	for j := 0; j < m.Cols; j++ {
		var sum float64
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			v := m.Val[p]
			sum += v * v
		}
		out[j] = math.Sqrt(sum)
	}
	return out
}

// RowNorms returns the Euclidean norm of each row.
func (m *CSC) RowNorms() []float64 {
	out := make([]float64, m.Rows)
	for p, i := range m.RowIdx {
		v := m.Val[p]
		out[i] += v * v
	}
	for i := range out {
		out[i] = math.Sqrt(out[i])
	}
	return out
}
