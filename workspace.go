package scs

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/gonum-community/scs/equilibrate"
	"github.com/gonum-community/scs/linsolve"
)

// Workspace is owned exclusively by a single solve. It is acquired by Init
// and released by Finish; its lifetime must not outlive a single Run.
type Workspace struct {
	problem *Problem
	n, m, l int

	u, v, ut, uPrev []float64
	h, g            []float64
	gTh             float64

	scales *equilibrate.Scales
	nmB    float64
	nmC    float64

	kkt   kktSolver
	cone  coneProjector
	out   io.Writer
	iter  int
	phase phase
}

// phase tracks the Workspace's part of the state machine of spec.md §4.9:
// Initialized -> Iterating -> terminal. The earlier Idle and Validated
// states precede the Workspace, which Init creates only after validation.
type phase int

const (
	phaseInitialized phase = iota
	phaseIterating
	phaseTerminal
)

// Init validates the problem, equilibrates it, and acquires the linear
// solver and cone projector. On any failure it returns a nil Workspace and
// an Info populated per spec.md §7's input-shape/resource-allocation error
// contract; it never panics and never leaks a partially acquired resource.
func Init(p *Problem) (*Workspace, *Info) {
	if err := validate(p); err != nil {
		return nil, failureInfo(err)
	}

	n, m := p.A.Cols, p.A.Rows
	l := n + m + 1

	nmB := floats.Norm(p.B, 2)
	nmC := floats.Norm(p.C, 2)

	var scales *equilibrate.Scales
	if p.Params.Normalize {
		scales = equilibrate.NormalizeA(p.A, p.K)
		equilibrate.NormalizeBC(p.B, p.C, scales)
	} else {
		scales = equilibrate.Identity(m, n)
	}

	kkt, err := linsolve.Setup(p.A, p.Params.RhoX)
	if err != nil {
		if p.Params.Normalize {
			equilibrate.UnNormalizeA(p.A, scales)
		}
		return nil, failureInfo(fmt.Errorf("scs: linear solver setup: %w", err))
	}

	w := &Workspace{
		problem: p,
		n:       n,
		m:       m,
		l:       l,
		u:       make([]float64, l),
		v:       make([]float64, l),
		ut:      make([]float64, l),
		uPrev:   make([]float64, l),
		scales:  scales,
		nmB:     nmB,
		nmC:     nmC,
		kkt:     kkt,
		cone:    p.K,
		out:     os.Stdout,
		phase:   phaseInitialized,
	}

	w.h = make([]float64, n+m)
	copy(w.h[:n], p.C)
	copy(w.h[n:], p.B)

	w.g = append([]float64(nil), w.h...)
	if err := w.kkt.Solve(w.g, nil, 0); err != nil {
		w.kkt.Free()
		if p.Params.Normalize {
			equilibrate.UnNormalizeA(p.A, scales)
		}
		return nil, failureInfo(fmt.Errorf("scs: failed to form g: %w", err))
	}
	for i := n; i < n+m; i++ {
		w.g[i] = -w.g[i]
	}
	w.gTh = floats.Dot(w.g, w.h)

	if p.Params.WarmStart {
		w.warmStart()
	} else {
		w.coldStart()
	}

	return w, nil
}

func (w *Workspace) coldStart() {
	sq := math.Sqrt(float64(w.l))
	for i := range w.u {
		w.u[i] = 0
		w.v[i] = 0
	}
	w.u[w.l-1] = sq
	w.v[w.l-1] = sq
}

// warmStart seeds u, v from the (x, y, s) triple the caller supplies in
// Problem.WarmStartSol, as spec.md §4.7 describes. It runs during Init, when
// Params.WarmStart is set; with a nil WarmStartSol only τ and κ are seeded.
func (w *Workspace) warmStart() {
	n, m := w.n, w.m
	for i := range w.u {
		w.u[i] = 0
		w.v[i] = 0
	}
	w.u[w.l-1] = 1
	w.v[w.l-1] = 0
	if ws := w.problem.WarmStartSol; ws != nil {
		copy(w.u[:n], ws.X)
		copy(w.u[n:n+m], ws.Y)
		copy(w.v[n:n+m], ws.S)
		if w.problem.Params.Normalize {
			equilibrate.NormalizeWarmStart(w.u[:n], w.u[n:n+m], w.v[n:n+m], w.scales)
		}
	}
}

// Finish releases the resources Init acquired. It is idempotent and safe
// to call on a nil Workspace.
func (w *Workspace) Finish() {
	if w == nil {
		return
	}
	if w.kkt != nil {
		w.kkt.Free()
		w.kkt = nil
	}
	if w.problem != nil && w.problem.Params.Normalize && w.scales != nil {
		equilibrate.UnNormalizeA(w.problem.A, w.scales)
		w.scales = nil
	}
}

func failureInfo(err error) *Info {
	return &Info{
		StatusVal: Failure,
		Status:    fmt.Sprintf("Failure: %v", err),
		Pobj:      math.NaN(),
		Dobj:      math.NaN(),
		RelGap:    math.NaN(),
		ResPri:    math.NaN(),
		ResDual:   math.NaN(),
	}
}
