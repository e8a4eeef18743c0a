// Package cone implements the product-cone projector the iteration engine
// treats as an external collaborator: projection onto K, validation, and a
// human-readable header.
//
// Blocks are laid out in SCS's canonical order: zero, nonnegative, then
// second-order ("q") and positive semidefinite ("s") blocks, following the
// block vocabulary used throughout the cone-programming literature (e.g.
// the 'l'/'q'/'s' block names in go.opt/cvx).
package cone

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cone describes a product cone
//
//	K = {0}^Zero x R+^Pos x Q^Soc[0] x ... x Q^Soc[n-1] x S^Psd[0] x ... x S^Psd[n-1].
type Cone struct {
	Zero int   // zero-cone block for s; its dual (for y) is free, so Project leaves it unchanged
	Pos  int   // nonnegative orthant dimension
	Soc  []int // second-order cone block sizes, each >= 1
	Psd  []int // positive semidefinite block sizes (side length), each >= 1
}

// FullDim returns the total dimension m = sum of all block dimensions.
func (k *Cone) FullDim() int {
	d := k.Zero + k.Pos
	for _, q := range k.Soc {
		d += q
	}
	for _, s := range k.Psd {
		d += psdVecDim(s)
	}
	return d
}

// psdVecDim returns the length of the scaled vectorization of a symmetric
// s x s matrix (lower triangle, row-major within each column).
func psdVecDim(s int) int {
	return s * (s + 1) / 2
}

// Validate checks that all block sizes are well formed, matching spec.md
// §4.8's requirement that cone validity feed into the pre-flight checks.
func (k *Cone) Validate() error {
	if k.Zero < 0 || k.Pos < 0 {
		return fmt.Errorf("cone: negative block size")
	}
	for i, q := range k.Soc {
		if q < 1 {
			return fmt.Errorf("cone: soc block %d has size %d, want >= 1", i, q)
		}
	}
	for i, s := range k.Psd {
		if s < 1 {
			return fmt.Errorf("cone: psd block %d has side %d, want >= 1", i, s)
		}
	}
	return nil
}

// Header returns a human-readable summary of the cone, for the console
// banner (spec.md §6).
func (k *Cone) Header() string {
	return fmt.Sprintf("cones: zero=%d, nonneg=%d, soc=%v, psd=%v", k.Zero, k.Pos, k.Soc, k.Psd)
}

// Project replaces v in place with its projection onto the dual cone K*:
// the zero block is left unchanged (its dual is free), and the
// nonnegative, second-order and PSD blocks, which are self-dual, are
// projected onto themselves. v must have length k.FullDim(). iter is the outer-iteration count, passed through so
// an iteration-aware block (a PSD eigen-refinement with a warm start) could
// use it as a hint; the present implementation re-factorizes from scratch
// on every call, which is correct but not iteration-aware.
func (k *Cone) Project(v []float64, iter int) {
	if len(v) != k.FullDim() {
		panic("cone: v has wrong length")
	}
	_ = iter
	off := 0

	// Zero block: the engine passes the y-block here, and y is
	// unconstrained on the zero-cone rows, so these entries pass through
	// unchanged.
	off += k.Zero

	for i := off; i < off+k.Pos; i++ {
		if v[i] < 0 {
			v[i] = 0
		}
	}
	off += k.Pos

	for _, q := range k.Soc {
		projectSOC(v[off : off+q])
		off += q
	}

	for _, s := range k.Psd {
		d := psdVecDim(s)
		projectPSD(v[off:off+d], s)
		off += d
	}
}

// projectSOC projects v onto the second-order (Lorentz) cone
// {(t, x) : ||x||_2 <= t}, with v[0] = t and v[1:] = x.
func projectSOC(v []float64) {
	if len(v) == 1 {
		if v[0] < 0 {
			v[0] = 0
		}
		return
	}
	t := v[0]
	x := v[1:]
	nrm := norm2(x)
	switch {
	case nrm <= -t:
		for i := range v {
			v[i] = 0
		}
	case nrm <= t:
		// already in the cone
	default:
		scale := (nrm + t) / (2 * nrm)
		v[0] = (nrm + t) / 2
		for i := range x {
			x[i] *= scale
		}
	}
}

func norm2(x []float64) float64 {
	var sum float64
	for _, xi := range x {
		sum += xi * xi
	}
	return math.Sqrt(sum)
}

// projectPSD projects the scaled vectorization v of a symmetric s x s
// matrix (column-major lower triangle, off-diagonal entries scaled by
// sqrt(2) as SCS's svec convention does, so that the Euclidean norm of v
// equals the Frobenius norm of the matrix) onto the PSD cone, by clipping
// negative eigenvalues to zero and reassembling — grounded directly on
// gonum.org/v1/gonum/mat's EigenSym.
func projectPSD(v []float64, s int) {
	sym := mat.NewSymDense(s, nil)
	idx := 0
	for j := 0; j < s; j++ {
		for i := j; i < s; i++ {
			val := v[idx]
			idx++
			if i != j {
				val /= math.Sqrt2
			}
			sym.SetSym(i, j, val)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	anyClipped := false
	for i, lam := range values {
		if lam < 0 {
			values[i] = 0
			anyClipped = true
		}
	}
	if !anyClipped {
		return
	}

	scaled := mat.NewDense(s, s, nil)
	scaled.Copy(&vectors)
	for j, lam := range values {
		for i := 0; i < s; i++ {
			scaled.Set(i, j, scaled.At(i, j)*lam)
		}
	}
	var recon mat.Dense
	recon.Mul(scaled, vectors.T())

	idx = 0
	for j := 0; j < s; j++ {
		for i := j; i < s; i++ {
			val := recon.At(i, j)
			if i != j {
				val *= math.Sqrt2
			}
			v[idx] = val
			idx++
		}
	}
}
