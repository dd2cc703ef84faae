package constraint

import "math"

// pointOnPoint constrains two points to coincide. Tuple: Px, Py, Qx, Qy.
type pointOnPoint struct {
	base
}

func newPointOnPoint(px, py, qx, qy *float64) *pointOnPoint {
	return &pointOnPoint{base: newBase(1.0, px, py, qx, qy)}
}

func (f *pointOnPoint) Kind() Kind { return PointOnPoint }

func (f *pointOnPoint) Evaluate() float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	return math.Hypot(dx, dy)
}

func (f *pointOnPoint) Gradient() map[*float64]float64 {
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

// pointOnLine constrains a point to lie on the infinite line through A, B.
// Tuple: Px, Py, Ax, Ay, Bx, By.
type pointOnLine struct {
	base
}

func newPointOnLine(px, py, ax, ay, bx, by *float64) *pointOnLine {
	return &pointOnLine{base: newBase(1.0, px, py, ax, ay, bx, by)}
}

func (f *pointOnLine) Kind() Kind { return PointOnLine }

func (f *pointOnLine) Evaluate() float64 {
	dx := *f.vars[4] - *f.vars[2]
	dy := *f.vars[5] - *f.vars[3]
	lineLen := math.Hypot(dx, dy)
	if lineLen < 1e-12 {
		return 0.0
	}
	num := (*f.vars[0]-*f.vars[2])*dy - (*f.vars[1]-*f.vars[3])*dx
	return num / lineLen
}

func (f *pointOnLine) Gradient() map[*float64]float64 {
	dx := *f.vars[4] - *f.vars[2]
	dy := *f.vars[5] - *f.vars[3]
	lineLen := math.Hypot(dx, dy)
	if lineLen < 1e-10 {
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

// lineOnCircle constrains both endpoints of a line to lie on a circle.
// Tuple: Ax, Ay, Bx, By, Cx, Cy, R.
type lineOnCircle struct {
	base
}

func newLineOnCircle(ax, ay, bx, by, cx, cy, r *float64) *lineOnCircle {
	return &lineOnCircle{base: newBase(1.0, ax, ay, bx, by, cx, cy, r)}
}

func (f *lineOnCircle) Kind() Kind { return LineOnCircle }

func (f *lineOnCircle) Evaluate() float64 {
	x1, y1 := *f.vars[0], *f.vars[1]
	x2, y2 := *f.vars[2], *f.vars[3]
	cx, cy := *f.vars[4], *f.vars[5]
	r := *f.vars[6]

	dist1 := math.Hypot(x1-cx, y1-cy)
	dist2 := math.Hypot(x2-cx, y2-cy)
	return (dist1 - r) + (dist2 - r)
}

func (f *lineOnCircle) Gradient() map[*float64]float64 {
	x1, y1 := *f.vars[0], *f.vars[1]
	x2, y2 := *f.vars[2], *f.vars[3]
	cx, cy := *f.vars[4], *f.vars[5]

	dx1, dy1 := x1-cx, y1-cy
	dist1 := math.Hypot(dx1, dy1)
	dx2, dy2 := x2-cx, y2-cy
	dist2 := math.Hypot(dx2, dy2)

	if dist1 < 1e-10 {
		dist1 = 1e-10
	}
	if dist2 < 1e-10 {
		dist2 = 1e-10
	}

	return map[*float64]float64{
		f.vars[0]: dx1 / dist1,
		f.vars[1]: dy1 / dist1,
		f.vars[2]: dx2 / dist2,
		f.vars[3]: dy2 / dist2,
		f.vars[4]: -(dx1/dist1 + dx2/dist2),
		f.vars[5]: -(dy1/dist1 + dy2/dist2),
		f.vars[6]: -2.0,
	}
}
