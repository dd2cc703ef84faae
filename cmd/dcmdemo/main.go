// Command dcmdemo builds a dcm.Manager and runs the six end-to-end
// constraint-solving scenarios over it, reporting pass/fail the way the
// finite-element driver reports a simulation's final status.
package main

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/dcm"
	"github.com/ourpaintteam/dcm/ids"
	"github.com/ourpaintteam/dcm/solve"
)

// scenario is one illustrative end-to-end run against a fresh Manager.
type scenario struct {
	name string
	run  func(m *dcm.Manager) error
}

var scenarios = []scenario{
	{"two points at fixed distance", twoPointsAtFixedDistance},
	{"horizontal line", horizontalLine},
	{"drag-mode reseat", dragModeReseat},
	{"component separation", componentSeparation},
	{"rectangle", rectangle},
	{"local mode requires a component id", localModeRequiresComponentID},
}

func main() {
	cputime := time.Now()
	var failed int

	defer func() {
		if r := recover(); r != nil {
			io.PfRed("> dcmdemo panicked: %v\n", r)
			failed++
		}
		if failed == 0 {
			io.PfGreen("> Success\n")
		} else {
			io.PfRed("> %d scenario(s) failed\n", failed)
		}
		io.Pf("> CPU time = %v\n", time.Since(cputime))
	}()

	io.Pf("> Running %d scenarios\n", len(scenarios))
	for _, sc := range scenarios {
		m := dcm.NewManager()
		if err := sc.run(m); err != nil {
			io.PfRed("> FAIL %s: %v\n", sc.name, err)
			failed++
			continue
		}
		io.PfGreen("> PASS %s\n", sc.name)
	}
}

func requireInRange(label string, got, lo, hi float64) error {
	if got < lo || got > hi {
		return chk.Err("%s: expected value in [%v, %v], got %v", label, lo, hi, got)
	}
	return nil
}

func dist(m *dcm.Manager, p1, p2 ids.ID) (float64, error) {
	a, err := m.GetFigure(p1)
	if err != nil {
		return 0, err
	}
	b, err := m.GetFigure(p2)
	if err != nil {
		return 0, err
	}
	dx, dy := a.Coords[0]-b.Coords[0], a.Coords[1]-b.Coords[1]
	return math.Sqrt(dx*dx + dy*dy), nil
}

func twoPointsAtFixedDistance(m *dcm.Manager) error {
	p1, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{0, 0}})
	if err != nil {
		return err
	}
	p2, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{3, 0}})
	if err != nil {
		return err
	}
	if _, err := m.AddRequirement(dcm.RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	}); err != nil {
		return err
	}
	ok, err := m.Solve(nil)
	if err != nil {
		return err
	}
	if !ok {
		return chk.Err("solver did not converge")
	}
	d, err := dist(m, p1, p2)
	if err != nil {
		return err
	}
	return requireInRange("distance(p1,p2)", d, 4.9, 5.1)
}

func horizontalLine(m *dcm.Manager) error {
	lineID, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.LineFigure, Coords: []float64{0, 0, 5, 3}})
	if err != nil {
		return err
	}
	if _, err := m.AddRequirement(dcm.RequirementDescriptor{Kind: constraint.Horizontal, ObjectIDs: []ids.ID{lineID}}); err != nil {
		return err
	}
	ok, err := m.Solve(nil)
	if err != nil {
		return err
	}
	if !ok {
		return chk.Err("solver did not converge")
	}
	line, err := m.GetFigure(lineID)
	if err != nil {
		return err
	}
	return requireInRange("|y1-y2|", math.Abs(line.Coords[1]-line.Coords[3]), 0, 0.1)
}

func dragModeReseat(m *dcm.Manager) error {
	p1, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{0, 0}})
	if err != nil {
		return err
	}
	p2, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{5, 0}})
	if err != nil {
		return err
	}
	if _, err := m.AddRequirement(dcm.RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	}); err != nil {
		return err
	}
	m.SetSolveMode(solve.Drag)
	x, y := 2.0, 0.0
	if err := m.UpdatePoint(p1, &x, &y); err != nil {
		return err
	}
	d, err := dist(m, p1, p2)
	if err != nil {
		return err
	}
	return requireInRange("distance(p1,p2) after drag", d, 4.5, 5.5)
}

func componentSeparation(m *dcm.Manager) error {
	p1, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{0, 0}})
	if err != nil {
		return err
	}
	p2, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{1, 0}})
	if err != nil {
		return err
	}
	p3, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{100, 100}})
	if err != nil {
		return err
	}
	p4, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{103, 100}})
	if err != nil {
		return err
	}
	if _, err := m.AddRequirement(dcm.RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 10.0, HasParam: true,
	}); err != nil {
		return err
	}
	if _, err := m.AddRequirement(dcm.RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p3, p4}, Param: 20.0, HasParam: true,
	}); err != nil {
		return err
	}
	if n := m.GetComponentCount(); n != 2 {
		return chk.Err("expected 2 components, got %d", n)
	}
	compID, ok := m.GetComponentForFigure(p1)
	if !ok {
		return chk.Err("p1 has no component")
	}
	m.SetSolveMode(solve.Local)
	ok, err = m.Solve(&compID)
	if err != nil {
		return err
	}
	if !ok {
		return chk.Err("local solve did not converge")
	}
	p3after, err := m.GetFigure(p3)
	if err != nil {
		return err
	}
	if p3after.Coords[0] != 100 || p3after.Coords[1] != 100 {
		return chk.Err("p3 moved during a local solve scoped to a different component")
	}
	return nil
}

func rectangle(m *dcm.Manager) error {
	p1, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{0, 0}})
	if err != nil {
		return err
	}
	p2, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{98, 2}})
	if err != nil {
		return err
	}
	p3, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{97, 51}})
	if err != nil {
		return err
	}
	p4, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{2, 49}})
	if err != nil {
		return err
	}
	bottom, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.LineFigure, PointIDs: []ids.ID{p1, p2}})
	if err != nil {
		return err
	}
	right, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.LineFigure, PointIDs: []ids.ID{p2, p3}})
	if err != nil {
		return err
	}
	top, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.LineFigure, PointIDs: []ids.ID{p3, p4}})
	if err != nil {
		return err
	}
	left, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.LineFigure, PointIDs: []ids.ID{p4, p1}})
	if err != nil {
		return err
	}
	reqs := []dcm.RequirementDescriptor{
		{Kind: constraint.Horizontal, ObjectIDs: []ids.ID{top}},
		{Kind: constraint.Horizontal, ObjectIDs: []ids.ID{bottom}},
		{Kind: constraint.Vertical, ObjectIDs: []ids.ID{left}},
		{Kind: constraint.Vertical, ObjectIDs: []ids.ID{right}},
		{Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 100.0, HasParam: true},
		{Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p2, p3}, Param: 50.0, HasParam: true},
	}
	for _, r := range reqs {
		if _, err := m.AddRequirement(r); err != nil {
			return err
		}
	}
	if n := m.GetComponentCount(); n != 1 {
		return chk.Err("expected a single component, got %d", n)
	}
	ok, err := m.Solve(nil)
	if err != nil {
		return err
	}
	if !ok {
		return chk.Err("solver did not converge")
	}
	return nil
}

func localModeRequiresComponentID(m *dcm.Manager) error {
	p1, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{0, 0}})
	if err != nil {
		return err
	}
	p2, err := m.AddFigure(dcm.FigureDescriptor{Kind: dcm.PointFigure, Coords: []float64{1, 0}})
	if err != nil {
		return err
	}
	if _, err := m.AddRequirement(dcm.RequirementDescriptor{
		Kind: constraint.PointPointDist, ObjectIDs: []ids.ID{p1, p2}, Param: 5.0, HasParam: true,
	}); err != nil {
		return err
	}
	m.SetSolveMode(solve.Local)
	_, err = m.Solve(nil)
	if err == nil {
		return chk.Err("expected ModeMismatch, got nil")
	}
	if kind, ok := dcm.KindOf(err); !ok || kind != dcm.ModeMismatch {
		return chk.Err("expected ModeMismatch, got %v", err)
	}
	return nil
}
