package system

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/constraint"
)

func TestVariableDeduplication(tst *testing.T) {
	chk.PrintTitle("VariableDeduplication")

	px, py := 0.0, 0.0
	qx, qy := 3.0, 0.0
	rx, ry := 3.0, 4.0

	s := New()
	f1, _ := constraint.New(constraint.PointPointDist, []*float64{&px, &py, &qx, &qy}, 5)
	f2, _ := constraint.New(constraint.PointPointDist, []*float64{&qx, &qy, &rx, &ry}, 5)
	s.AddFunction(f1)
	s.AddFunction(f2)

	vars := s.Vars()
	chk.Int(tst, "variable count", len(vars), 6) // px,py,qx,qy,rx,ry: qx,qy shared once
	seen := make(map[*float64]bool)
	for _, v := range vars {
		if seen[v] {
			tst.Errorf("duplicate variable in function system's variable list")
		}
		seen[v] = true
	}
}

func TestJacobianShapeAndResiduals(tst *testing.T) {
	chk.PrintTitle("JacobianShapeAndResiduals")

	px, py := 0.0, 0.0
	qx, qy := 3.0, 0.0

	s := New()
	f, _ := constraint.New(constraint.PointPointDist, []*float64{&px, &py, &qx, &qy}, 5)
	s.AddFunction(f)
	s.UpdateJacobian()

	dense := s.JDense()
	if dense == nil {
		tst.Fatalf("JDense is nil after UpdateJacobian")
	}
	r, c := dense.Dims()
	chk.Int(tst, "rows", r, 1)
	chk.Int(tst, "cols", c, 4)

	res := s.Residuals()
	chk.Int(tst, "residual count", len(res), 1)
	chk.Scalar(tst, "residual value", 1e-12, res[0], 3.0-5.0)
}

func TestDiagnoseEmptyAndUnderConstrained(tst *testing.T) {
	chk.PrintTitle("DiagnoseEmptyAndUnderConstrained")

	s := New()
	s.UpdateJacobian()
	if got := s.Diagnose(); got != StatusEmpty {
		tst.Errorf("empty system diagnose = %v, want StatusEmpty", got)
	}

	// one residual, four variables -> under-constrained
	px, py := 0.0, 0.0
	qx, qy := 3.0, 0.0
	f, _ := constraint.New(constraint.PointPointDist, []*float64{&px, &py, &qx, &qy}, 5)
	s.AddFunction(f)
	s.UpdateJacobian()
	if got := s.Diagnose(); got != StatusUnderConstrained {
		tst.Errorf("1x4 system diagnose = %v, want StatusUnderConstrained", got)
	}
}

func TestClearResetsFunctionSystem(tst *testing.T) {
	chk.PrintTitle("ClearResetsFunctionSystem")

	px, py := 0.0, 0.0
	qx, qy := 3.0, 0.0
	s := New()
	f, _ := constraint.New(constraint.PointPointDist, []*float64{&px, &py, &qx, &qy}, 5)
	s.AddFunction(f)
	s.UpdateJacobian()
	s.Clear()

	if len(s.Functions()) != 0 || len(s.Vars()) != 0 || s.J() != nil || s.JDense() != nil {
		tst.Errorf("Clear did not fully reset the function system")
	}
}
