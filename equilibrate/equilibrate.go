// Package equilibrate implements the diagonal (Ruiz-style) equilibration
// the solver's workspace applies to A, b, c before iterating, and the
// inverse rescaling applied to the returned solution. It is cone-aware:
// rows belonging to the same second-order or semidefinite cone block share
// a single scale factor so that scaling never mixes rows across a block in
// a way that would change the cone membership test, per spec.md §4.4.
package equilibrate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gonum-community/scs/cone"
	"github.com/gonum-community/scs/sparse"
)

const (
	numPasses = 10
	minScale  = 1e-4
	maxScale  = 1e4
)

// Scales holds the diagonal equilibration produced by NormalizeA: row
// scales D (length m), column scales E (length n), and the scalars used to
// undo scaling on b, c, and on the returned solution.
type Scales struct {
	D, E           []float64
	SigmaB, SigmaC float64
	Sigma          float64
}

// Identity returns the no-op scaling used when NORMALIZE=0.
func Identity(m, n int) *Scales {
	d := make([]float64, m)
	e := make([]float64, n)
	for i := range d {
		d[i] = 1
	}
	for i := range e {
		e[i] = 1
	}
	return &Scales{D: d, E: e, SigmaB: 1, SigmaC: 1, Sigma: 1}
}

// rowGroups partitions row indices [0,m) into groups that must share a
// single scale factor: the zero and nonnegative blocks scale row-by-row,
// while each second-order or semidefinite block scales as one unit.
func rowGroups(k *cone.Cone) [][]int {
	var groups [][]int
	off := 0
	for i := 0; i < k.Zero+k.Pos; i++ {
		groups = append(groups, []int{off})
		off++
	}
	for _, q := range k.Soc {
		g := make([]int, q)
		for i := range g {
			g[i] = off + i
		}
		groups = append(groups, g)
		off += q
	}
	for _, s := range k.Psd {
		d := s * (s + 1) / 2
		g := make([]int, d)
		for i := range g {
			g[i] = off + i
		}
		groups = append(groups, g)
		off += d
	}
	return groups
}

// NormalizeA equilibrates A in place, producing row scales d, column
// scales e, and the scalars sigma_b, sigma_c, sigma used to undo scaling on
// b, c, and on the returned solution.
func NormalizeA(a *sparse.CSC, k *cone.Cone) *Scales {
	m, n := a.Rows, a.Cols
	groups := rowGroups(k)

	d := make([]float64, m)
	e := make([]float64, n)
	for i := range d {
		d[i] = 1
	}
	for i := range e {
		e[i] = 1
	}

	for pass := 0; pass < numPasses; pass++ {
		colN := a.ColNorms()
		ej := make([]float64, n)
		for j, v := range colN {
			ej[j] = clampScale(invSqrt(v))
		}
		a.ScaleCols(ej)
		floats.Mul(e, ej)

		rowN := a.RowNorms()
		dg := make([]float64, m)
		for _, g := range groups {
			nrm := groupNorm(rowN, g)
			s := clampScale(invSqrt(nrm))
			for _, i := range g {
				dg[i] = s
			}
		}
		a.ScaleRows(dg)
		floats.Mul(d, dg)
	}

	sigmaB := 1 / mean(d)
	sigmaC := 1 / mean(e)
	sigma := math.Sqrt(sigmaB * sigmaC)

	return &Scales{D: d, E: e, SigmaB: sigmaB, SigmaC: sigmaC, Sigma: sigma}
}

func groupNorm(rowN []float64, g []int) float64 {
	var sum float64
	for _, i := range g {
		sum += rowN[i] * rowN[i]
	}
	return math.Sqrt(sum)
}

func invSqrt(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return 1 / math.Sqrt(v)
}

func clampScale(s float64) float64 {
	if s < minScale {
		return minScale
	}
	if s > maxScale {
		return maxScale
	}
	return s
}

func mean(s []float64) float64 {
	if len(s) == 0 {
		return 1
	}
	return floats.Sum(s) / float64(len(s))
}

// NormalizeBC rescales b and c in place: b *= sigma_b * D, c *= sigma_c * E.
func NormalizeBC(b, c []float64, s *Scales) {
	floats.Mul(b, s.D)
	floats.Scale(s.SigmaB, b)
	floats.Mul(c, s.E)
	floats.Scale(s.SigmaC, c)
}

// NormalizeWarmStart rescales a warm-started (x, y, s) in place to match
// the equilibrated problem: x /= E*sigma, y *= D*sigma, s /= D/sigma.
func NormalizeWarmStart(x, y, sVec []float64, s *Scales) {
	for i := range x {
		x[i] /= s.E[i] * s.Sigma
	}
	for i := range y {
		y[i] *= s.D[i] * s.Sigma
	}
	for i := range sVec {
		sVec[i] /= s.D[i] / s.Sigma
	}
}

// UnNormalizeA restores A to its original (unscaled) values in place.
func UnNormalizeA(a *sparse.CSC, s *Scales) {
	invD := make([]float64, len(s.D))
	for i, d := range s.D {
		invD[i] = 1 / d
	}
	invE := make([]float64, len(s.E))
	for i, e := range s.E {
		invE[i] = 1 / e
	}
	a.ScaleRows(invD)
	a.ScaleCols(invE)
}

// UnNormalizeSolBC restores b, c, x, y, s to the original problem's scale.
// With the Identity scaling this is the identity operation, as required by
// spec.md §8.
func UnNormalizeSolBC(b, c, x, y, sVec []float64, s *Scales) {
	for i := range b {
		b[i] /= s.D[i] * s.SigmaB
	}
	for i := range c {
		c[i] /= s.E[i] * s.SigmaC
	}
	for i := range x {
		x[i] *= s.E[i] / s.Sigma
	}
	for i := range y {
		y[i] *= s.D[i] / s.Sigma
	}
	for i := range sVec {
		sVec[i] /= s.D[i] * s.Sigma
	}
}
