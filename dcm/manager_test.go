package dcm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/ids"
	"github.com/ourpaintteam/dcm/solve"
)

func dist(m *Manager, p1, p2 ids.ID) float64 {
	a, _ := m.GetFigure(p1)
	b, _ := m.GetFigure(p2)
	dx, dy := a.Coords[0]-b.Coords[0], a.Coords[1]-b.Coords[1]
	return math.Sqrt(dx*dx + dy*dy)
}

func TestTwoPointsAtFixedDistance(tst *testing.T) {
	chk.PrintTitle("TwoPointsAtFixedDistance")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{3, 0}})
	_, err := m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	})
	if err != nil {
		tst.Fatalf("AddRequirement failed: %v", err)
	}

	ok, err := m.Solve(nil)
	if err != nil || !ok {
		tst.Fatalf("Solve did not converge: ok=%v err=%v", ok, err)
	}

	d := dist(m, p1, p2)
	if d < 4.9 || d > 5.1 {
		tst.Errorf("expected distance in [4.9, 5.1], got %v", d)
	}
}

func TestHorizontalLine(tst *testing.T) {
	chk.PrintTitle("HorizontalLine")

	m := NewManager()
	lineID, err := m.AddFigure(FigureDescriptor{Kind: LineFigure, Coords: []float64{0, 0, 5, 3}})
	if err != nil {
		tst.Fatalf("AddFigure(LINE) failed: %v", err)
	}
	if _, err := m.AddRequirement(RequirementDescriptor{Kind: constraint.Horizontal, ObjectIDs: []ids.ID{lineID}}); err != nil {
		tst.Fatalf("AddRequirement(Horizontal) failed: %v", err)
	}

	ok, err := m.Solve(nil)
	if err != nil || !ok {
		tst.Fatalf("Solve did not converge: ok=%v err=%v", ok, err)
	}

	line, _ := m.GetFigure(lineID)
	y1, y2 := line.Coords[1], line.Coords[3]
	if math.Abs(y1-y2) > 0.1 {
		tst.Errorf("expected endpoints to share y within 0.1, got y1=%v y2=%v", y1, y2)
	}
}

func TestDragModeReseat(tst *testing.T) {
	chk.PrintTitle("DragModeReseat")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{5, 0}})
	if _, err := m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	}); err != nil {
		tst.Fatalf("AddRequirement failed: %v", err)
	}

	m.SetSolveMode(solve.Drag)
	x, y := 2.0, 0.0
	if err := m.UpdatePoint(p1, &x, &y); err != nil {
		tst.Fatalf("UpdatePoint failed: %v", err)
	}

	d := dist(m, p1, p2)
	if d < 4.5 || d > 5.5 {
		tst.Errorf("expected distance in [4.5, 5.5] after drag-solve, got %v", d)
	}
}

func TestComponentSeparation(tst *testing.T) {
	chk.PrintTitle("ComponentSeparation")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{1, 0}})
	p3, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{100, 100}})
	p4, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{103, 100}})

	if _, err := m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 10.0, HasParam: true,
	}); err != nil {
		tst.Fatalf("AddRequirement(1) failed: %v", err)
	}
	if _, err := m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p3, p4}, Param: 20.0, HasParam: true,
	}); err != nil {
		tst.Fatalf("AddRequirement(2) failed: %v", err)
	}

	if n := m.GetComponentCount(); n != 2 {
		tst.Fatalf("expected 2 components, got %d", n)
	}

	compID, ok := m.GetComponentForFigure(p1)
	if !ok {
		tst.Fatalf("p1 has no component")
	}

	m.SetSolveMode(solve.Local)
	okSolve, err := m.Solve(&compID)
	if err != nil || !okSolve {
		tst.Fatalf("local solve did not converge: ok=%v err=%v", okSolve, err)
	}

	p3after, _ := m.GetFigure(p3)
	p4after, _ := m.GetFigure(p4)
	if p3after.Coords[0] != 100 || p3after.Coords[1] != 100 {
		tst.Errorf("p3 moved during a local solve scoped to a different component: %v", p3after.Coords)
	}
	if p4after.Coords[0] != 103 || p4after.Coords[1] != 100 {
		tst.Errorf("p4 moved during a local solve scoped to a different component: %v", p4after.Coords)
	}
}

func TestRectangle(tst *testing.T) {
	chk.PrintTitle("Rectangle")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{98, 2}})
	p3, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{97, 51}})
	p4, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{2, 49}})

	bottom, _ := m.AddFigure(FigureDescriptor{Kind: LineFigure, PointIDs: []ids.ID{p1, p2}})
	right, _ := m.AddFigure(FigureDescriptor{Kind: LineFigure, PointIDs: []ids.ID{p2, p3}})
	top, _ := m.AddFigure(FigureDescriptor{Kind: LineFigure, PointIDs: []ids.ID{p3, p4}})
	left, _ := m.AddFigure(FigureDescriptor{Kind: LineFigure, PointIDs: []ids.ID{p4, p1}})

	reqs := []RequirementDescriptor{
		{Kind: constraint.Horizontal, ObjectIDs: []ids.ID{top}},
		{Kind: constraint.Horizontal, ObjectIDs: []ids.ID{bottom}},
		{Kind: constraint.Vertical, ObjectIDs: []ids.ID{left}},
		{Kind: constraint.Vertical, ObjectIDs: []ids.ID{right}},
		{Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 100.0, HasParam: true},
		{Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p2, p3}, Param: 50.0, HasParam: true},
	}
	for _, r := range reqs {
		if _, err := m.AddRequirement(r); err != nil {
			tst.Fatalf("AddRequirement(%s) failed: %v", r.Kind, err)
		}
	}

	if n := m.GetComponentCount(); n != 1 {
		tst.Fatalf("expected a single component, got %d", n)
	}

	ok, err := m.Solve(nil)
	if err != nil || !ok {
		tst.Fatalf("Solve did not converge: ok=%v err=%v", ok, err)
	}

	if n := len(m.GetAllRequirements()); n != len(reqs) {
		tst.Errorf("expected %d live requirements, got %d", len(reqs), n)
	}
}

func TestLocalModeRequiresComponentID(tst *testing.T) {
	chk.PrintTitle("LocalModeRequiresComponentID")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{1, 0}})
	if _, err := m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	}); err != nil {
		tst.Fatalf("AddRequirement failed: %v", err)
	}

	m.SetSolveMode(solve.Local)
	_, err := m.Solve(nil)
	if err == nil {
		tst.Fatalf("expected ModeMismatch, got nil")
	}
	if kind, ok := KindOf(err); !ok || kind != ModeMismatch {
		tst.Errorf("expected ModeMismatch, got %v (classified=%v)", err, ok)
	}
}

func TestEmptySystemSolvesImmediately(tst *testing.T) {
	chk.PrintTitle("EmptySystemSolvesImmediately")

	m := NewManager()
	ok, err := m.Solve(nil)
	if err != nil || !ok {
		tst.Errorf("expected an empty manager to report converged, got ok=%v err=%v", ok, err)
	}
}

func TestRemoveWithoutCascadeBlockedByDependents(tst *testing.T) {
	chk.PrintTitle("RemoveWithoutCascadeBlockedByDependents")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{1, 0}})
	_, _ = m.AddFigure(FigureDescriptor{Kind: LineFigure, PointIDs: []ids.ID{p1, p2}})

	err := m.RemoveFigure(p1, false)
	if err == nil {
		tst.Fatalf("expected DependencyExists, got nil")
	}
	if kind, ok := KindOf(err); !ok || kind != DependencyExists {
		tst.Errorf("expected DependencyExists, got %v", err)
	}
	if !m.HasFigure(p1) {
		tst.Errorf("p1 should remain live after a blocked removal")
	}
}

func TestRemoveFigureCascadeDropsDependentRequirementAndRebuildsComponents(tst *testing.T) {
	chk.PrintTitle("RemoveFigureCascadeDropsDependentRequirementAndRebuildsComponents")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{1, 0}})
	reqID, _ := m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	})

	if err := m.RemoveFigure(p1, true); err != nil {
		tst.Fatalf("cascade removal failed: %v", err)
	}
	if m.HasFigure(p1) {
		tst.Errorf("p1 should no longer be live")
	}
	if m.HasRequirement(reqID) {
		tst.Errorf("the dependent requirement should have been cascaded away")
	}
	if n := m.GetComponentCount(); n != 1 {
		tst.Errorf("expected one remaining singleton component for p2, got %d", n)
	}
}

func TestClearResetsEverything(tst *testing.T) {
	chk.PrintTitle("ClearResetsEverything")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	p2, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{1, 0}})
	_, _ = m.AddRequirement(RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	})

	m.Clear()

	if len(m.GetAllFigures()) != 0 {
		tst.Errorf("expected no figures after Clear")
	}
	if len(m.GetAllRequirements()) != 0 {
		tst.Errorf("expected no requirements after Clear")
	}
	if m.GetComponentCount() != 0 {
		tst.Errorf("expected no components after Clear")
	}

	// identifiers restart from 1 after Clear, matching the fresh-manager
	// numbering the round-trip invariant relies on.
	np1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{9, 9}})
	if np1 != ids.ID(1) {
		tst.Errorf("expected identifier numbering to restart at 1 after Clear, got %d", np1)
	}
}

func TestGetFigureRoundTripsCoordinateUpdates(tst *testing.T) {
	chk.PrintTitle("GetFigureRoundTripsCoordinateUpdates")

	m := NewManager()
	p1, _ := m.AddFigure(FigureDescriptor{Kind: PointFigure, Coords: []float64{0, 0}})
	x, y := 7.0, 8.0
	if err := m.UpdatePoint(p1, &x, &y); err != nil {
		tst.Fatalf("UpdatePoint failed: %v", err)
	}

	desc, err := m.GetFigure(p1)
	if err != nil {
		tst.Fatalf("GetFigure failed: %v", err)
	}
	if desc.Coords[0] != 7.0 || desc.Coords[1] != 8.0 {
		tst.Errorf("expected round-tripped coords (7, 8), got %v", desc.Coords)
	}
}

func TestAddFigureWithCoordsCreatesPointsInLineComponent(tst *testing.T) {
	chk.PrintTitle("AddFigureWithCoordsCreatesPointsInLineComponent")

	m := NewManager()
	lineID, err := m.AddFigure(FigureDescriptor{Kind: LineFigure, Coords: []float64{0, 0, 1, 1}})
	if err != nil {
		tst.Fatalf("AddFigure(LINE) failed: %v", err)
	}

	line, _ := m.GetFigure(lineID)
	if len(line.PointIDs) != 2 {
		tst.Fatalf("expected 2 resolved point ids, got %d", len(line.PointIDs))
	}

	compLine, ok := m.GetComponentForFigure(lineID)
	if !ok {
		tst.Fatalf("line has no component")
	}
	for _, pid := range line.PointIDs {
		compPt, ok := m.GetComponentForFigure(pid)
		if !ok || compPt != compLine {
			tst.Errorf("expected endpoint %d to share the line's component", pid)
		}
		if !m.HasFigure(pid) {
			tst.Errorf("auto-created endpoint %d should be independently retrievable", pid)
		}
	}

	if n := m.GetComponentCount(); n != 1 {
		tst.Errorf("expected the line and its two auto-created endpoints to merge into one component, got %d", n)
	}
}

func TestUnsupportedConstraintRejected(tst *testing.T) {
	chk.PrintTitle("UnsupportedConstraintRejected")

	m := NewManager()
	lineID, _ := m.AddFigure(FigureDescriptor{Kind: LineFigure, Coords: []float64{0, 0, 1, 0}})
	circleID, _ := m.AddFigure(FigureDescriptor{Kind: CircleFigure, Coords: []float64{5, 5}, Radius: 2, HasRadius: true})

	_, err := m.AddRequirement(RequirementDescriptor{Kind: constraint.LineInCircle, ObjectIDs: []ids.ID{lineID, circleID}})
	if err == nil {
		tst.Fatalf("expected UnsupportedConstraint, got nil")
	}
	if kind, ok := KindOf(err); !ok || kind != UnsupportedConstraint {
		tst.Errorf("expected UnsupportedConstraint, got %v", err)
	}
}
