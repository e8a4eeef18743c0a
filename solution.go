package scs

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gonum-community/scs/equilibrate"
)

// extractSolution converts the terminal (u, v) into a Sol and an Info,
// per spec.md §4.6. term is the oracle's last classification (solving if
// MAX_ITERS was exhausted without the oracle firing a terminal result).
func (w *Workspace) extractSolution(term Status) (*Sol, *Info) {
	n, m, l := w.n, w.m, w.l
	x := append([]float64(nil), w.u[:n]...)
	y := append([]float64(nil), w.u[n:n+m]...)
	s := append([]float64(nil), w.v[n:n+m]...)

	status := term
	if term == solving || term == Solved {
		tau := w.u[l-1]
		kappa := math.Abs(w.v[l-1])
		undetTol := w.problem.Params.UndetTol
		switch {
		case tau > undetTol && tau > kappa:
			floats.Scale(1/tau, x)
			floats.Scale(1/tau, y)
			floats.Scale(1/tau, s)
			status = Solved
		case floats.Norm(w.u, 2) < undetTol*math.Sqrt(float64(l)):
			status = Indeterminate
			setNaN(x)
			setNaN(y)
			setNaN(s)
		default:
			cx := floats.Dot(w.problem.C, x)
			by := floats.Dot(w.problem.B, y)
			if by < cx {
				status = Infeasible
			} else {
				status = Unbounded
			}
		}
	}

	info := &Info{StatusVal: status, Iter: w.iter}

	switch status {
	case Solved:
		info.Status = "Solved"
		info.Pobj = w.descaleObj(floats.Dot(w.problem.C, x))
		info.Dobj = -w.descaleObj(floats.Dot(w.problem.B, y))
		info.RelGap = math.Abs(info.Pobj-info.Dobj) / (1 + math.Abs(info.Pobj) + math.Abs(info.Dobj))
		axs := make([]float64, m)
		w.problem.A.MulVecTo(axs, x)
		floats.Add(axs, s)
		floats.Sub(axs, w.problem.B)
		info.ResPri = w.weightedRowNorm(axs) / (1 + w.nmB)
		aty := make([]float64, n)
		w.problem.A.MulVecTransTo(aty, y)
		floats.Add(aty, w.problem.C)
		info.ResDual = w.weightedColNorm(aty) / (1 + w.nmC)
	case Unbounded:
		info.Status = "Unbounded"
		cx := floats.Dot(w.problem.C, x)
		axs := make([]float64, m)
		w.problem.A.MulVecTo(axs, x)
		floats.Add(axs, s)
		info.Dobj = math.NaN()
		info.RelGap = math.NaN()
		info.ResDual = math.NaN()
		info.ResPri = w.nmC * w.weightedRowNorm(axs) / (-cx)
		floats.Scale(-1/cx, x)
		floats.Scale(-1/cx, s)
		setNaN(y)
		info.Pobj = -1
	case Infeasible:
		info.Status = "Infeasible"
		by := floats.Dot(w.problem.B, y)
		aty := make([]float64, n)
		w.problem.A.MulVecTransTo(aty, y)
		info.Pobj = math.NaN()
		info.RelGap = math.NaN()
		info.ResPri = math.NaN()
		info.ResDual = w.nmB * w.weightedColNorm(aty) / (-by)
		floats.Scale(-1/by, y)
		setNaN(x)
		setNaN(s)
		info.Dobj = -1
	case Indeterminate:
		info.Status = "Indeterminate"
		info.Pobj = math.NaN()
		info.Dobj = math.NaN()
		info.RelGap = math.NaN()
		info.ResPri = math.NaN()
		info.ResDual = math.NaN()
	}

	if w.problem.Params.MaxIters > 0 && w.iter >= w.problem.Params.MaxIters && term == solving {
		info.Status += " (hit MAX_ITERS, may be inaccurate)"
	}

	if w.problem.Params.Normalize {
		equilibrate.UnNormalizeSolBC(w.problem.B, w.problem.C, x, y, s, w.scales)
	}

	return &Sol{X: x, Y: y, S: s}, info
}

// descaleObj converts a cᵀx- or bᵀy-like scalar computed from the
// (possibly equilibrated) stored A/b/c back to the original problem's
// units.
func (w *Workspace) descaleObj(v float64) float64 {
	if !w.problem.Params.Normalize {
		return v
	}
	return v * w.scales.Sigma * w.scales.SigmaB * w.scales.SigmaC
}

func setNaN(v []float64) {
	for i := range v {
		v[i] = math.NaN()
	}
}
