package scs

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// iterate performs one outer operator-splitting iteration: snapshot,
// linear-subspace projection, cone projection, dual update, per spec.md
// §4.1.
func (w *Workspace) iterate() error {
	copy(w.uPrev, w.u)

	if err := w.projectLin(); err != nil {
		return err
	}
	w.projectCone()
	w.updateDual()
	w.iter++
	return nil
}

// projectLin computes ut as the projection of u+v onto the affine
// subspace defined by the fixed saddle-point system, per spec.md §4.1
// step 2.
func (w *Workspace) projectLin() error {
	n, m, l := w.n, w.m, w.l
	rho := w.problem.Params.RhoX

	wVec := make([]float64, l)
	for i := 0; i < l; i++ {
		wVec[i] = w.u[i] + w.v[i]
	}
	for i := 0; i < n; i++ {
		wVec[i] *= rho
	}
	wLast := wVec[l-1]

	uTilde := append([]float64(nil), wVec[:n+m]...)
	floats.AddScaled(uTilde, -wLast, w.h)

	coeff := floats.Dot(uTilde, w.g) / (w.gTh + 1)
	floats.AddScaled(uTilde, -coeff, w.h)

	for i := n; i < n+m; i++ {
		uTilde[i] = -uTilde[i]
	}

	if err := w.kkt.Solve(uTilde, w.u[:n+m], w.iter); err != nil {
		return err
	}

	copy(w.ut[:n+m], uTilde)
	w.ut[l-1] = wLast + floats.Dot(uTilde, w.h)
	return nil
}

// projectCone forms q = ALPHA*ut + (1-ALPHA)*uPrev - v on the y/tau blocks
// and q = ut - v on the x block (unrelaxed), then projects q onto the
// domain: free x, y projected by K, tau clipped at zero. Spec.md §4.1
// step 3.
func (w *Workspace) projectCone() {
	n, l := w.n, w.l
	alpha := w.problem.Params.Alpha

	for i := 0; i < n; i++ {
		w.u[i] = w.ut[i] - w.v[i]
	}
	for i := n; i < l; i++ {
		w.u[i] = alpha*w.ut[i] + (1-alpha)*w.uPrev[i] - w.v[i]
	}

	w.cone.Project(w.u[n:n+w.m], w.iter)

	if w.u[l-1] < 0 {
		w.u[l-1] = 0
	}
}

// updateDual applies the over-relaxed dual update to the y/tau blocks of
// v; the x-block of v is left unrelaxed, per spec.md §4.1 step 4.
func (w *Workspace) updateDual() {
	n, l := w.n, w.l
	alpha := w.problem.Params.Alpha

	if math.Abs(alpha-1) < 1e-9 {
		for i := n; i < l; i++ {
			w.v[i] += w.u[i] - w.ut[i]
		}
		return
	}
	for i := n; i < l; i++ {
		w.v[i] += w.u[i] - alpha*w.ut[i] - (1-alpha)*w.uPrev[i]
	}
}
