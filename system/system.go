// Package system holds the constraint function system: the collection of
// active constraint functions, the deduplicated variable list, the sparse
// Jacobian assembled from their gradients, and SVD-based rank diagnosis.
package system

import (
	"github.com/cpmech/gosl/la"
	"github.com/ourpaintteam/dcm/constraint"
	"gonum.org/v1/gonum/mat"
)

// FunctionSystem holds an ordered list of active constraint functions and an
// ordered, deduplicated list of scalar variable references.
type FunctionSystem struct {
	funcs    []constraint.Function
	vars     []*float64
	varIndex map[*float64]int

	jac      *la.Triplet
	jacDense *mat.Dense // nil until UpdateJacobian has been called at least once
}

// New returns an empty function system.
func New() *FunctionSystem {
	return &FunctionSystem{varIndex: make(map[*float64]int)}
}

// AddFunction appends f to the function list and appends any of its
// variables not already present to the variable list, preserving insertion
// order of first appearance. It does not rebuild the Jacobian; call
// UpdateJacobian when ready to solve or diagnose.
func (s *FunctionSystem) AddFunction(f constraint.Function) {
	s.funcs = append(s.funcs, f)
	for _, v := range f.Vars() {
		if _, ok := s.varIndex[v]; !ok {
			s.varIndex[v] = len(s.vars)
			s.vars = append(s.vars, v)
		}
	}
}

// Functions returns the active constraint functions, in insertion order.
func (s *FunctionSystem) Functions() []constraint.Function { return s.funcs }

// Vars returns the deduplicated variable list, in order of first appearance.
func (s *FunctionSystem) Vars() []*float64 { return s.vars }

// UpdateJacobian rebuilds the Jacobian from every function's current
// gradient in a single triplet-accumulate pass: each (row, col, value)
// triple is accumulated once, zeros are omitted, and both the sparse triplet
// (kept as is, not compressed) and a dense mirror (needed by the SVD-based diagnoser and the
// Levenberg-Marquardt normal-equation solve, neither of which gosl's own
// cgo-linked sparse factorizations are a fit for) are produced in one walk.
func (s *FunctionSystem) UpdateJacobian() {
	m := len(s.funcs)
	n := len(s.vars)
	if m == 0 || n == 0 {
		s.jac = nil
		s.jacDense = nil
		return
	}

	maxEntries := 0
	for _, f := range s.funcs {
		maxEntries += len(f.Vars())
	}
	if maxEntries == 0 {
		maxEntries = 1
	}

	trip := new(la.Triplet)
	trip.Init(m, n, maxEntries)
	trip.Start()
	dense := mat.NewDense(m, n, nil)

	for i, f := range s.funcs {
		grad := f.Gradient()
		for v, val := range grad {
			if val == 0.0 {
				continue
			}
			j, ok := s.varIndex[v]
			if !ok {
				continue
			}
			trip.Put(i, j, val)
			dense.Set(i, j, val)
		}
	}

	s.jac = trip
	s.jacDense = dense
}

// Residuals returns the dense residual vector, r[i] = weight_i * f_i.Evaluate().
func (s *FunctionSystem) Residuals() []float64 {
	r := make([]float64, len(s.funcs))
	for i, f := range s.funcs {
		r[i] = f.Weight() * f.Evaluate()
	}
	return r
}

// J returns the last Jacobian built by UpdateJacobian, in triplet form, or
// nil if the system is empty or UpdateJacobian has not yet been called.
func (s *FunctionSystem) J() *la.Triplet { return s.jac }

// JDense returns the last Jacobian built by UpdateJacobian as a dense
// matrix, for consumers (the LM solver, the diagnoser) that need direct
// linear-algebra access rather than a triplet.
func (s *FunctionSystem) JDense() *mat.Dense { return s.jacDense }

// JTJ returns the normal matrix Jᵀ·J of the last Jacobian built by
// UpdateJacobian, or nil under the same conditions as J.
func (s *FunctionSystem) JTJ() *mat.Dense {
	if s.jacDense == nil {
		return nil
	}
	var jtj mat.Dense
	jtj.Mul(s.jacDense.T(), s.jacDense)
	return &jtj
}

// Clear drops every function and variable, resetting the system to empty.
func (s *FunctionSystem) Clear() {
	s.funcs = nil
	s.vars = nil
	s.varIndex = make(map[*float64]int)
	s.jac = nil
	s.jacDense = nil
}
