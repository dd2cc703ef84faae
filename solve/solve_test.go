package solve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/system"
)

func TestLMSolvesPointPointDistance(tst *testing.T) {
	chk.PrintTitle("LMSolvesPointPointDistance")

	px, py := 0.0, 0.0
	qx, qy := 1.0, 0.0 // far from the target distance of 5

	sys := system.New()
	f, _ := constraint.New(constraint.PointPointDist, []*float64{&px, &py, &qx, &qy}, 5.0)
	sys.AddFunction(f)

	solver := New(Global, DefaultConfig())
	if solver == nil {
		tst.Fatalf("New(Global, ...) returned nil")
	}
	if ok := solver.Solve(sys); !ok {
		tst.Errorf("LM solver did not report convergence")
	}

	dx, dy := qx-px, qy-py
	dist := dx*dx + dy*dy
	chk.Scalar(tst, "squared distance", 1e-6, dist, 25.0)
}

func TestLMSolvesTwoConstraintsJointly(tst *testing.T) {
	chk.PrintTitle("LMSolvesTwoConstraintsJointly")

	ax, ay := 0.0, 0.0
	bx, by := 2.0, 1.0 // should end up vertical above a, at distance 3

	sys := system.New()
	f1, _ := constraint.New(constraint.PointPointDist, []*float64{&ax, &ay, &bx, &by}, 3.0)
	f2, _ := constraint.New(constraint.Vertical, []*float64{&ax, &ay, &bx, &by}, 0)
	sys.AddFunction(f1)
	sys.AddFunction(f2)

	solver := New(Global, DefaultConfig())
	if ok := solver.Solve(sys); !ok {
		tst.Errorf("LM solver did not report convergence on joint system")
	}
	chk.Scalar(tst, "x coordinates coincide", 1e-5, ax, bx)
}

func TestDragTakesBoundedFixedSteps(tst *testing.T) {
	chk.PrintTitle("DragTakesBoundedFixedSteps")

	px, py := 0.0, 0.0
	qx, qy := 1.0, 0.0

	sys := system.New()
	f, _ := constraint.New(constraint.PointPointDist, []*float64{&px, &py, &qx, &qy}, 5.0)
	sys.AddFunction(f)

	cfg := DefaultConfig()
	cfg.GradientMaxIter = 5
	solver := New(Drag, cfg)
	if solver == nil {
		tst.Fatalf("New(Drag, ...) returned nil")
	}
	solver.Solve(sys)

	dx, dy := qx-px, qy-py
	dist := dx*dx + dy*dy
	if dist <= 1.0 {
		tst.Errorf("expected gradient descent to move the distance toward the target, got squared dist %v", dist)
	}
}

func TestSolveOnEmptySystemReportsConverged(tst *testing.T) {
	chk.PrintTitle("SolveOnEmptySystemReportsConverged")

	sys := system.New()
	if ok := New(Global, DefaultConfig()).Solve(sys); !ok {
		tst.Errorf("empty system should report converged")
	}
	if ok := New(Drag, DefaultConfig()).Solve(sys); !ok {
		tst.Errorf("empty system should report converged under drag too")
	}
}

func TestNewReturnsNilForUnknownMode(tst *testing.T) {
	chk.PrintTitle("NewReturnsNilForUnknownMode")

	if s := New(Mode("bogus"), DefaultConfig()); s != nil {
		tst.Errorf("expected nil solver for unknown mode")
	}
}
