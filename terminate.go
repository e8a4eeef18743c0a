package scs

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// residualSnapshot holds the quantities the oracle computes at a sampling
// iteration, reused by the console printer between samples.
type residualSnapshot struct {
	Pobj, Dobj, RelGap, ResPri, ResDual, Kappa, Tau float64
}

// oracle computes residuals at the current iterate and classifies it,
// per spec.md §4.5. It is pure apart from returning the snapshot the
// caller should cache for printing.
func (w *Workspace) oracle() (Status, residualSnapshot) {
	n, m, l := w.n, w.m, w.l
	p := w.problem
	alpha := p.Params.Alpha
	eps := p.Params.Eps

	tau := math.Abs(w.u[l-1])
	kappa := math.Abs(w.v[l-1])

	x := w.u[:n]
	y := w.u[n : n+m]
	sBlock := w.v[n : n+m]

	// Fast primal residual: avoids an extra A*x by using the identity that
	// holds because ut = projectLin(u+v).
	rp := make([]float64, m)
	for i := 0; i < m; i++ {
		rp[i] = w.u[n+i] + (alpha-2)*w.uPrev[n+i] + (1-alpha)*w.ut[n+i] + w.ut[l-1]*p.B[i]
	}

	axs := make([]float64, m)
	p.A.MulVecTo(axs, x)
	floats.Add(axs, sBlock)

	aty := make([]float64, n)
	p.A.MulVecTransTo(aty, y)

	cx := floats.Dot(p.C, x)
	by := floats.Dot(p.B, y)
	if p.Params.Normalize {
		descale := w.scales.Sigma * w.scales.SigmaB * w.scales.SigmaC
		cx *= descale
		by *= descale
	}

	rpMinusBTau := make([]float64, m)
	bTau := append([]float64(nil), p.B...)
	floats.Scale(tau, bTau)
	floats.SubTo(rpMinusBTau, rp, bTau)

	atyPlusCTau := append([]float64(nil), aty...)
	floats.AddScaled(atyPlusCTau, tau, p.C)

	nmAxs := w.weightedRowNorm(axs)
	nmRpMinusBTau := w.weightedRowNorm(rpMinusBTau)
	nmAtyPlusCTau := w.weightedColNorm(atyPlusCTau)
	nmAty := w.weightedColNorm(aty)

	snap := residualSnapshot{
		Pobj:  cx,
		Dobj:  -by,
		Tau:   tau,
		Kappa: kappa,
	}
	if tau > 0 {
		snap.ResPri = nmRpMinusBTau / ((1 + w.nmB) * tau)
		snap.ResDual = nmAtyPlusCTau / ((1 + w.nmC) * tau)
		snap.RelGap = math.Abs(cx+by) / (tau + math.Abs(cx) + math.Abs(by))
	}

	if cx < 0 && w.nmB*nmAxs/(-cx) < eps {
		return Unbounded, snap
	}
	if by < 0 && w.nmC*nmAty/(-by) < eps {
		return Infeasible, snap
	}
	if tau > kappa {
		r := math.Max(snap.ResPri, math.Max(snap.ResDual, snap.RelGap))
		if r < eps {
			return Solved, snap
		}
	}
	return solving, snap
}

// weightedRowNorm computes the 2-norm of a length-m residual, weighted by
// D/(σ_b·σ) per element when the problem was equilibrated, so the
// reported residual reflects the original (unscaled) problem's units
// without paying for a full unscale-and-recompute.
func (w *Workspace) weightedRowNorm(v []float64) float64 {
	if !w.problem.Params.Normalize {
		return floats.Norm(v, 2)
	}
	denom := w.scales.SigmaB * w.scales.Sigma
	var sum float64
	for i, vi := range v {
		s := vi * w.scales.D[i] / denom
		sum += s * s
	}
	return math.Sqrt(sum)
}

// weightedColNorm is weightedRowNorm's counterpart for length-n dual
// residuals, weighted by E.
func (w *Workspace) weightedColNorm(v []float64) float64 {
	if !w.problem.Params.Normalize {
		return floats.Norm(v, 2)
	}
	var sum float64
	for i, vi := range v {
		s := vi * w.scales.E[i]
		sum += s * s
	}
	return math.Sqrt(sum)
}
