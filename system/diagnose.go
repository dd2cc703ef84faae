package system

import "gonum.org/v1/gonum/mat"

// Status reports the constraint-satisfiability diagnosis of a function
// system's last-built Jacobian.
type Status int

const (
	StatusEmpty Status = iota
	StatusWellConstrained
	StatusSingular
	StatusUnderConstrained
	StatusOverConstrained
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "EMPTY"
	case StatusWellConstrained:
		return "WELL_CONSTRAINED"
	case StatusSingular:
		return "SINGULAR_SYSTEM"
	case StatusUnderConstrained:
		return "UNDER_CONSTRAINED"
	case StatusOverConstrained:
		return "OVER_CONSTRAINED"
	default:
		return "UNKNOWN"
	}
}

// singularValueThreshold is the cutoff above which a singular value counts
// toward the numerical rank of the Jacobian.
const singularValueThreshold = 1e-8

// Diagnose inspects the Jacobian as it stood after the most recent
// UpdateJacobian call — it does not rebuild it — and reports the
// constraint-satisfiability status by comparing the numerical rank (via SVD)
// against the Jacobian's shape.
func (s *FunctionSystem) Diagnose() Status {
	m := len(s.funcs)
	n := len(s.vars)
	if m == 0 || n == 0 || s.jacDense == nil {
		return StatusEmpty
	}

	var svd mat.SVD
	ok := svd.Factorize(s.jacDense, mat.SVDNone)
	if !ok {
		return StatusUnknown
	}
	values := svd.Values(nil)

	rank := 0
	for _, v := range values {
		if v > singularValueThreshold {
			rank++
		}
	}

	minDim := m
	if n < minDim {
		minDim = n
	}

	switch {
	case m == n && rank == n:
		return StatusWellConstrained
	case rank < minDim:
		return StatusSingular
	case m < n:
		return StatusUnderConstrained
	case m > n:
		return StatusOverConstrained
	default:
		return StatusUnknown
	}
}
