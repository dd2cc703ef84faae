package constraint

import "math"

// pointPointDist constrains the distance between two points to a fixed
// value. Tuple: Px, Py, Qx, Qy.
type pointPointDist struct {
	base
	dist float64
}

func newPointPointDist(px, py, qx, qy *float64, dist float64) *pointPointDist {
	return &pointPointDist{base: newBase(1.0, px, py, qx, qy), dist: dist}
}

func (f *pointPointDist) Kind() Kind { return PointPointDist }

func (f *pointPointDist) Evaluate() float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	return math.Hypot(dx, dy) - f.dist
}

func (f *pointPointDist) Gradient() map[*float64]float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	dist := math.Hypot(dx, dy)
	if dist < 1e-10 {
		return zeroGradient(f.vars)
	}
	return map[*float64]float64{
		f.vars[0]: -dx / dist,
		f.vars[1]: -dy / dist,
		f.vars[2]: dx / dist,
		f.vars[3]: dy / dist,
	}
}

// pointLineDist constrains the signed perpendicular distance from a point to
// a line to a fixed value. Tuple: Px, Py, Ax, Ay, Bx, By.
type pointLineDist struct {
	base
	dist float64
}

func newPointLineDist(px, py, ax, ay, bx, by *float64, dist float64) *pointLineDist {
	return &pointLineDist{base: newBase(1.0, px, py, ax, ay, bx, by), dist: dist}
}

func (f *pointLineDist) Kind() Kind { return PointLineDist }

func (f *pointLineDist) Evaluate() float64 {
	dx := *f.vars[4] - *f.vars[2]
	dy := *f.vars[5] - *f.vars[3]
	lineLen := math.Hypot(dx, dy)
	if lineLen < 1e-12 {
		return 0.0
	}
	px := *f.vars[0] - *f.vars[2]
	py := *f.vars[1] - *f.vars[3]
	cross := px*dy - py*dx
	return cross/lineLen - f.dist
}

func (f *pointLineDist) Gradient() map[*float64]float64 {
	dx := *f.vars[4] - *f.vars[2]
	dy := *f.vars[5] - *f.vars[3]
	lineLen := math.Hypot(dx, dy)
	if lineLen < 1e-12 {
		return zeroGradient(f.vars)
	}
	px := *f.vars[0] - *f.vars[2]
	py := *f.vars[1] - *f.vars[3]
	cross := px*dy - py*dx
	lineLen3 := lineLen * lineLen * lineLen

	return map[*float64]float64{
		f.vars[0]: dy / lineLen,
		f.vars[1]: -dx / lineLen,
		f.vars[2]: (py-dy)/lineLen + cross*dx/lineLen3,
		f.vars[3]: (dx-px)/lineLen + cross*dy/lineLen3,
		f.vars[4]: -py/lineLen - cross*dx/lineLen3,
		f.vars[5]: px/lineLen - cross*dy/lineLen3,
	}
}

// lineCircleDist constrains the distance from a circle's center to a
// segment's clamped closest point, minus the circle's radius, to a fixed
// value. Tuple: Ax, Ay, Bx, By, Cx, Cy, R.
type lineCircleDist struct {
	base
	dist float64
}

func newLineCircleDist(ax, ay, bx, by, cx, cy, r *float64, dist float64) *lineCircleDist {
	return &lineCircleDist{base: newBase(1.0, ax, ay, bx, by, cx, cy, r), dist: dist}
}

func (f *lineCircleDist) Kind() Kind { return LineCircleDist }

func (f *lineCircleDist) Evaluate() float64 {
	x1, y1 := *f.vars[0], *f.vars[1]
	x2, y2 := *f.vars[2], *f.vars[3]
	cx, cy := *f.vars[4], *f.vars[5]
	r := *f.vars[6]

	dx := x2 - x1
	dy := y2 - y1
	lineLen2 := dx*dx + dy*dy

	if lineLen2 < 1e-10 {
		return math.Hypot(cx-x1, cy-y1) - r - f.dist
	}

	t := ((cx-x1)*dx + (cy-y1)*dy) / lineLen2
	t = math.Max(0.0, math.Min(1.0, t))

	px := x1 + t*dx
	py := y1 + t*dy

	return math.Hypot(cx-px, cy-py) - r - f.dist
}

func (f *lineCircleDist) Gradient() map[*float64]float64 {
	x1, y1 := *f.vars[0], *f.vars[1]
	x2, y2 := *f.vars[2], *f.vars[3]
	cx, cy := *f.vars[4], *f.vars[5]

	dx := x2 - x1
	dy := y2 - y1
	lineLen2 := dx*dx + dy*dy

	var px, py, t float64
	if lineLen2 < 1e-10 {
		px, py, t = x1, y1, 0.0
	} else {
		t = ((cx-x1)*dx + (cy-y1)*dy) / lineLen2
		t = math.Max(0.0, math.Min(1.0, t))
		px = x1 + t*dx
		py = y1 + t*dy
	}

	diffX := px - cx
	diffY := py - cy
	dist := math.Hypot(diffX, diffY)
	if dist < 1e-10 {
		return zeroGradient(f.vars)
	}

	dfdpx := diffX / dist
	dfdpy := diffY / dist

	// At a clamped end t is constant, so its derivative terms drop out and
	// the closest point moves only with the endpoint it sits on.
	var dtDx1, dtDy1, dtDx2, dtDy2 float64
	if t > 0.0 && t < 1.0 {
		dtDx1 = ((cx-x1)*(-1) - dx*t) / lineLen2
		dtDy1 = ((cy-y1)*(-1) - dy*t) / lineLen2
		dtDx2 = (dx * (1 - t)) / lineLen2
		dtDy2 = (dy * (1 - t)) / lineLen2
	}

	dpxDx1 := 1.0 + dtDx1*dx - t
	dpxDy1 := dtDy1 * dx
	dpxDx2 := dtDx2*dx + t
	dpxDy2 := dtDy2 * dx

	dpyDx1 := dtDx1 * dy
	dpyDy1 := 1.0 + dtDy1*dy - t
	dpyDx2 := dtDx2 * dy
	dpyDy2 := dtDy2*dy + t

	return map[*float64]float64{
		f.vars[0]: dfdpx*dpxDx1 + dfdpy*dpyDx1,
		f.vars[1]: dfdpx*dpxDy1 + dfdpy*dpyDy1,
		f.vars[2]: dfdpx*dpxDx2 + dfdpy*dpyDx2,
		f.vars[3]: dfdpx*dpxDy2 + dfdpy*dpyDy2,
		f.vars[4]: -dfdpx,
		f.vars[5]: -dfdpy,
		f.vars[6]: -1.0,
	}
}
