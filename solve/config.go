package solve

import "github.com/cpmech/gosl/fun"

// Config holds every tunable of every registered solver. Each solver reads
// only the fields it needs; unused fields are simply ignored, the same way
// a material model's Init reads only the prms.Connect targets it declares.
type Config struct {
	MaxIterations int     // LM: iteration budget
	Tolerance     float64 // LM: converged once ||residual|| falls below this
	DampingInit   float64 // LM: initial damping (lambda) scaling the JTJ diagonal
	DampingNuInit float64 // LM: initial value of the rejected-step growth multiplier nu

	GradientStep    float64 // DRAG: fixed step size α; each step is -α times the gradient
	GradientMaxIter int     // DRAG: iteration budget
}

// DefaultConfig returns the configuration used when a caller does not
// override it: LM with tolerance 1e-8 and at most 200 iterations, and the
// fixed-step gradient descent for DRAG mode (step 0.01, at most 200
// iterations).
func DefaultConfig() Config {
	return Config{
		MaxIterations:   200,
		Tolerance:       1e-8,
		DampingInit:     1e-3,
		DampingNuInit:   2.0,
		GradientStep:    0.01,
		GradientMaxIter: 200,
	}
}

// GetPrms reports cfg as a named parameter set, for callers that drive
// solver tuning through the same database-of-parameters convention used
// throughout the material model packages.
func (cfg Config) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "maxit", V: float64(cfg.MaxIterations)},
		&fun.Prm{N: "tol", V: cfg.Tolerance},
		&fun.Prm{N: "dampinit", V: cfg.DampingInit},
		&fun.Prm{N: "dampnuinit", V: cfg.DampingNuInit},
		&fun.Prm{N: "gradstep", V: cfg.GradientStep},
		&fun.Prm{N: "gradmaxit", V: float64(cfg.GradientMaxIter)},
	}
}

// Connect binds cfg's fields to a caller-supplied parameter set, following
// the prms.Connect(&field, name, description) convention: any name present
// in prms overrides the corresponding field; names absent from prms leave
// the field at its current value.
func (cfg *Config) Connect(prms fun.Prms) {
	maxit := float64(cfg.MaxIterations)
	gradmaxit := float64(cfg.GradientMaxIter)
	prms.Connect(&maxit, "maxit", "LM iteration budget")
	prms.Connect(&cfg.Tolerance, "tol", "LM convergence tolerance")
	prms.Connect(&cfg.DampingInit, "dampinit", "LM initial damping")
	prms.Connect(&cfg.DampingNuInit, "dampnuinit", "LM initial rejected-step growth multiplier")
	prms.Connect(&cfg.GradientStep, "gradstep", "DRAG fixed step length")
	prms.Connect(&gradmaxit, "gradmaxit", "DRAG iteration budget")
	cfg.MaxIterations = int(maxit)
	cfg.GradientMaxIter = int(gradmaxit)
}
