package scs

import (
	"fmt"
	"io"
	"time"
)

// printHeader writes the verbose banner: method string, parameters,
// dimensions, warm-start notice, cone header, and column titles, per
// spec.md §6.
func (w *Workspace) printHeader() {
	if !w.problem.Params.Verbose {
		return
	}
	p := w.problem.Params
	fmt.Fprintln(w.out, "------------------------------------------------------------")
	fmt.Fprintln(w.out, "\tSCS v0 - operator splitting cone solver")
	fmt.Fprintf(w.out, "\tlin-sys method: %s\n", w.kkt.Method())
	fmt.Fprintf(w.out, "eps = %.2e, alpha = %.2f, max_iters = %d, normalize = %v\n",
		p.Eps, p.Alpha, p.MaxIters, p.Normalize)
	fmt.Fprintf(w.out, "variables n = %d, constraints m = %d, nnz(A) = %d\n",
		w.n, w.m, w.problem.A.NNZ())
	if p.WarmStart {
		fmt.Fprintln(w.out, "running with warm start")
	}
	fmt.Fprintln(w.out, w.cone.Header())
	fmt.Fprintln(w.out, "------------------------------------------------------------")
	fmt.Fprintln(w.out, " Iter | pri res | dua res | rel gap | pri obj | dua obj | kappa | time (s)")
}

// printRow writes one residual row, per PRINT_INTERVAL.
func (w *Workspace) printRow(snap residualSnapshot, elapsed time.Duration) {
	if !w.problem.Params.Verbose {
		return
	}
	fmt.Fprintf(w.out, "%5d| %.2e | %.2e | %.2e | %.2e | %.2e | %.2e | %.2e\n",
		w.iter, snap.ResPri, snap.ResDual, snap.RelGap, snap.Pobj, snap.Dobj, snap.Kappa, elapsed.Seconds())
}

// printFooter writes the status, timing, linear-solver summary, and the
// appropriate certificate/error-metric block, per spec.md §6.
func (w *Workspace) printFooter(info *Info, elapsed time.Duration) {
	if !w.problem.Params.Verbose {
		return
	}
	fmt.Fprintln(w.out, "------------------------------------------------------------")
	fmt.Fprintf(w.out, "status: %s\n", info.Status)
	fmt.Fprintf(w.out, "timings: total solve time %.2es\n", elapsed.Seconds())
	if w.kkt != nil {
		fmt.Fprintln(w.out, w.kkt.Summary())
	}

	switch info.StatusVal {
	case Infeasible:
		fmt.Fprintf(w.out, "Infeasibility certificate:\n")
		fmt.Fprintf(w.out, "|A'y|_2 * |b|_2 = %.4e\n", info.ResDual)
		fmt.Fprintf(w.out, "dist(y, K*) = 0\n")
		fmt.Fprintf(w.out, "b'y = %.4f\n", info.Dobj)
	case Unbounded:
		fmt.Fprintf(w.out, "Unbounded certificate:\n")
		fmt.Fprintf(w.out, "|Ax+s|_2 * |c|_2 = %.4e\n", info.ResPri)
		fmt.Fprintf(w.out, "dist(s, K) = 0\n")
		fmt.Fprintf(w.out, "c'x = %.4f\n", info.Pobj)
	default:
		fmt.Fprintf(w.out, "pri res: %.4e, dua res: %.4e, rel gap: %.4e\n",
			info.ResPri, info.ResDual, info.RelGap)
		fmt.Fprintf(w.out, "dist(s,K)=0, dist(y,K*)=0, s'y=0\n")
		fmt.Fprintf(w.out, "c'x = %.4f, -b'y = %.4f\n", info.Pobj, info.Dobj)
	}
	fmt.Fprintln(w.out, "------------------------------------------------------------")
}

// SetOutput overrides the writer the workspace's verbose reporting writes
// to. The default is os.Stdout.
func (w *Workspace) SetOutput(out io.Writer) {
	w.out = out
}
