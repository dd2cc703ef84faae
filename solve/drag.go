package solve

import (
	"github.com/cpmech/gosl/la"
	"github.com/ourpaintteam/dcm/system"
)

func init() {
	allocators[string(Drag)] = func(cfg Config) Solver { return &gradientDescent{cfg: cfg} }
}

// gradientDescent takes steps of -α·∇F with a fixed step size α, where
// F = 1/2 * sum(residual_i²), for interactive dragging: cheap per step and
// stable even far from a solution, at the cost of slower convergence than
// LM near one.
type gradientDescent struct {
	cfg Config
}

func (s *gradientDescent) Solve(sys *system.FunctionSystem) bool {
	vars := sys.Vars()
	if len(vars) == 0 {
		return true
	}

	step := s.cfg.GradientStep
	if step <= 0 {
		step = 0.01
	}
	maxIter := s.cfg.GradientMaxIter
	if maxIter <= 0 {
		maxIter = 200
	}
	tol := s.cfg.Tolerance
	if tol <= 0 {
		tol = 1e-10
	}

	for iter := 0; iter < maxIter; iter++ {
		sys.UpdateJacobian()
		residual := sys.Residuals()
		if la.VecNorm(residual) < tol {
			return true
		}

		jac := sys.JDense()
		if jac == nil {
			return true
		}

		grad := make([]float64, len(vars))
		rows, _ := jac.Dims()
		for j := range vars {
			var g float64
			for i := 0; i < rows; i++ {
				g += jac.At(i, j) * residual[i]
			}
			grad[j] = g
		}

		for i, v := range vars {
			*v -= step * grad[i]
		}
	}

	sys.UpdateJacobian()
	return la.VecNorm(sys.Residuals()) < tol
}
