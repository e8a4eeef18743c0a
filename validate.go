package scs

import "fmt"

// validate performs the pre-flight checks of spec.md §4.8. It returns a
// non-nil error describing the first violation found; the caller converts
// any error into Status Failure.
func validate(p *Problem) error {
	if p.A == nil {
		return fmt.Errorf("scs: A is nil")
	}
	if p.K == nil {
		return fmt.Errorf("scs: K is nil")
	}
	m, n := p.A.Rows, p.A.Cols
	if m <= 0 || n <= 0 {
		return fmt.Errorf("scs: m=%d, n=%d must both be positive", m, n)
	}
	if m < n {
		return fmt.Errorf("scs: m=%d < n=%d, expected m >= n", m, n)
	}
	if len(p.B) != m {
		return fmt.Errorf("scs: len(b)=%d, want %d", len(p.B), m)
	}
	if len(p.C) != n {
		return fmt.Errorf("scs: len(c)=%d, want %d", len(p.C), n)
	}
	// sparse.NewCSC already rejects a decreasing column pointer and an
	// out-of-range row index at construction time, but it allows
	// colPtr[j+1] == colPtr[j] (an empty column); spec.md §4.8 requires the
	// column pointer be strictly increasing, so check that here.
	for j := 0; j < n; j++ {
		if p.A.ColPtr[j+1] <= p.A.ColPtr[j] {
			return fmt.Errorf("scs: column %d is empty, column pointer must be strictly increasing", j)
		}
	}
	nnz := p.A.NNZ()
	if nnz <= 0 {
		return fmt.Errorf("scs: A has no nonzeros")
	}
	// Preserved verbatim from the original implementation's dense-overflow
	// guard. With integer division it fires only when nnz >= m*(n+1), that
	// is, more stored entries than a dense m x n matrix has; a fully dense
	// matrix, square or not, passes.
	if nnz/m > n {
		return fmt.Errorf("scs: nnz/m=%d exceeds n=%d", nnz/m, n)
	}
	if err := p.K.Validate(); err != nil {
		return fmt.Errorf("scs: invalid cone: %w", err)
	}
	if p.K.FullDim() != m {
		return fmt.Errorf("scs: cone dimension %d does not match m=%d", p.K.FullDim(), m)
	}
	pa := p.Params
	if pa.MaxIters < 0 {
		return fmt.Errorf("scs: MaxIters must be >= 0")
	}
	if pa.Eps < 0 {
		return fmt.Errorf("scs: Eps must be >= 0")
	}
	if pa.Alpha <= 0 || pa.Alpha >= 2 {
		return fmt.Errorf("scs: Alpha=%v must be in (0, 2)", pa.Alpha)
	}
	if pa.RhoX < 0 {
		return fmt.Errorf("scs: RhoX must be >= 0")
	}
	if pa.UndetTol <= 0 {
		return fmt.Errorf("scs: UndetTol must be > 0")
	}
	return nil
}
