package scs

import "time"

// Solve is the one-shot entry point: it validates and equilibrates the
// problem, runs the iteration to termination, and releases all acquired
// resources before returning, per spec.md §6.
func Solve(p *Problem) (*Sol, *Info) {
	w, info := Init(p)
	if w == nil {
		n, m := 0, 0
		if p.A != nil {
			n, m = p.A.Cols, p.A.Rows
		}
		return &Sol{X: nanSlice(n), Y: nanSlice(m), S: nanSlice(m)}, info
	}
	sol, info := Run(w)
	Finish(p, w)
	return sol, info
}

// Run drives the iteration engine to termination: either the oracle fires
// a terminal classification, or MAX_ITERS is exhausted and the solution
// extractor reclassifies from the final (τ, κ, cᵀx, bᵀy), per spec.md §4.9.
func Run(w *Workspace) (*Sol, *Info) {
	start := time.Now()
	w.printHeader()
	w.phase = phaseIterating

	term := solving
	var snap residualSnapshot

	maxIters := w.problem.Params.MaxIters
	for w.iter < maxIters {
		if err := w.iterate(); err != nil {
			info := &Info{
				StatusVal: Failure,
				Status:    "Failure: " + err.Error(),
				Iter:      w.iter,
				Pobj:      nan(),
				Dobj:      nan(),
				RelGap:    nan(),
				ResPri:    nan(),
				ResDual:   nan(),
			}
			w.printFooter(info, time.Since(start))
			return &Sol{X: nanSlice(w.n), Y: nanSlice(w.m), S: nanSlice(w.m)}, info
		}

		if w.iter%convergedInterval == 0 {
			var status Status
			status, snap = w.oracle()
			if status != solving {
				term = status
				break
			}
		}
		if w.problem.Params.Verbose && w.iter%printInterval == 0 {
			w.printRow(snap, time.Since(start))
		}
	}

	w.phase = phaseTerminal
	sol, info := w.extractSolution(term)
	info.SolveTime = time.Since(start).Seconds()
	w.printFooter(info, time.Since(start))
	return sol, info
}

// Finish releases the resources acquired by Init for workspace w, which
// must have been returned by Init(p). It is idempotent.
func Finish(p *Problem, w *Workspace) {
	_ = p
	w.Finish()
}

func nanSlice(n int) []float64 {
	v := make([]float64, n)
	setNaN(v)
	return v
}

func nan() float64 {
	v := nanSlice(1)
	return v[0]
}
