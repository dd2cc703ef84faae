// Package solve implements the numerical solvers that drive a constraint
// function system's variables toward zero residual: Levenberg-Marquardt for
// GLOBAL/LOCAL mode, and a fixed-step gradient descent for DRAG mode.
package solve

import "github.com/ourpaintteam/dcm/system"

// Solver drives sys's variables toward a solution, reporting whether it
// converged within its iteration budget. It never returns an error for
// non-convergence: SolverDiverged is advisory, not exceptional (see
// dcm.Manager.Solve), so callers read the bool.
type Solver interface {
	Solve(sys *system.FunctionSystem) (converged bool)
}

// allocators holds every registered solver constructor, keyed by Mode
// string. Each solver file registers itself here via init(), mirroring the
// teacher's eallocators/solverallocators factory-map idiom.
var allocators = make(map[string]func(cfg Config) Solver)

// New builds the Solver registered for mode, or nil if mode names no
// registered solver.
func New(mode Mode, cfg Config) Solver {
	alloc, ok := allocators[string(mode)]
	if !ok {
		return nil
	}
	return alloc(cfg)
}
