package constraint

// arcCenterOnPerpendicular constrains a point C to lie on the perpendicular
// bisector of segment AB — the implicit condition an arc's center must
// satisfy relative to its two endpoints. Tuple: Ax,Ay,Bx,By,Cx,Cy. Never
// attached automatically on arc creation; a caller opts in explicitly.
type arcCenterOnPerpendicular struct {
	base
}

func newArcCenterOnPerpendicular(ax, ay, bx, by, cx, cy *float64) *arcCenterOnPerpendicular {
	return &arcCenterOnPerpendicular{base: newBase(1.0, ax, ay, bx, by, cx, cy)}
}

func (f *arcCenterOnPerpendicular) Kind() Kind { return ArcCenterOnPerpendicular }

func (f *arcCenterOnPerpendicular) Evaluate() float64 {
	ax, ay := *f.vars[0], *f.vars[1]
	bx, by := *f.vars[2], *f.vars[3]
	cx, cy := *f.vars[4], *f.vars[5]

	mx := 0.5 * (ax + bx)
	my := 0.5 * (ay + by)
	dx := bx - ax
	dy := by - ay
	mcx := cx - mx
	mcy := cy - my

	return dx*mcx + dy*mcy
}

func (f *arcCenterOnPerpendicular) Gradient() map[*float64]float64 {
	ax, ay := *f.vars[0], *f.vars[1]
	bx, by := *f.vars[2], *f.vars[3]
	cx, cy := *f.vars[4], *f.vars[5]

	dx := bx - ax
	dy := by - ay
	mx := cx - 0.5*(ax+bx)
	my := cy - 0.5*(ay+by)

	return map[*float64]float64{
		f.vars[0]: -mx - 0.5*dx,
		f.vars[1]: -my - 0.5*dy,
		f.vars[2]: mx - 0.5*dx,
		f.vars[3]: my - 0.5*dy,
		f.vars[4]: dx,
		f.vars[5]: dy,
	}
}
