package solve

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/ourpaintteam/dcm/system"
	"gonum.org/v1/gonum/mat"
)

func init() {
	allocators[string(Global)] = func(cfg Config) Solver { return &levenbergMarquardt{cfg: cfg} }
	allocators[string(Local)] = func(cfg Config) Solver { return &levenbergMarquardt{cfg: cfg} }
}

// levenbergMarquardt damps the Gauss-Newton normal equations
// (JᵀJ + λ·diag(JᵀJ))Δ = -Jᵀr and solves them densely each iteration,
// accepting a step only when its gain ratio ρ is positive and updating λ by
// the Marquardt-Nielsen rule: shrink by max(1/3, 1-(2ρ-1)³) on acceptance,
// grow by a doubling multiplier ν on rejection.
type levenbergMarquardt struct {
	cfg Config
}

func (s *levenbergMarquardt) Solve(sys *system.FunctionSystem) bool {
	vars := sys.Vars()
	if len(vars) == 0 {
		return true
	}

	lambda := s.cfg.DampingInit
	if lambda <= 0 {
		lambda = 1e-3
	}
	nu := s.cfg.DampingNuInit
	if nu <= 1 {
		nu = 2.0
	}
	maxIter := s.cfg.MaxIterations
	if maxIter <= 0 {
		maxIter = 100
	}
	tol := s.cfg.Tolerance
	if tol <= 0 {
		tol = 1e-10
	}

	sys.UpdateJacobian()
	residual := sys.Residuals()
	cost := sumSquares(residual)

	for iter := 0; iter < maxIter; iter++ {
		if la.VecNorm(residual) < tol {
			return true
		}

		jac := sys.JDense()
		if jac == nil {
			return true
		}
		n := len(vars)

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		diag := make([]float64, n)
		for i := 0; i < n; i++ {
			diag[i] = jtj.At(i, i)
			jtj.Set(i, i, diag[i]+lambda*diag[i])
		}

		rVec := mat.NewDense(len(residual), 1, residual)
		var jtr mat.Dense
		jtr.Mul(jac.T(), rVec)

		var delta mat.Dense
		if err := delta.Solve(&jtj, &jtr); err != nil {
			lambda *= nu
			nu *= 2
			continue
		}

		// denom is the gain ratio's predicted-reduction term, Δᵀ(λΔ - Jᵀr)
		// for the normal-equation solution Δ; delta solves the damped
		// system with the opposite sign (x -= delta), so in terms of delta
		// that term is delta·(λ·delta + Jᵀr).
		var denom float64
		for i := 0; i < n; i++ {
			d := delta.At(i, 0)
			denom += d * (lambda*d + jtr.At(i, 0))
		}

		original := make([]float64, n)
		for i, v := range vars {
			original[i] = *v
			*v -= delta.At(i, 0)
		}

		sys.UpdateJacobian()
		trialResidual := sys.Residuals()
		trialCost := sumSquares(trialResidual)

		rho := 0.0
		if denom != 0 {
			rho = (cost - trialCost) / denom
		}

		if rho > 0 {
			cost = trialCost
			residual = trialResidual
			shrink := utl.Max(1.0/3.0, 1-(2*rho-1)*(2*rho-1)*(2*rho-1))
			lambda *= shrink
			nu = 2.0
		} else {
			for i, v := range vars {
				*v = original[i]
			}
			sys.UpdateJacobian()
			lambda *= nu
			nu *= 2
		}
	}

	sys.UpdateJacobian()
	return la.VecNorm(sys.Residuals()) < tol
}

func sumSquares(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return s
}
