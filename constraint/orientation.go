package constraint

import "math"

// lineLineParallel constrains two lines' direction vectors to be parallel via
// their 2D cross product. Tuple: A1x,A1y,A2x,A2y,B1x,B1y,B2x,B2y.
type lineLineParallel struct {
	base
}

func newLineLineParallel(a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y *float64) *lineLineParallel {
	return &lineLineParallel{base: newBase(1.0, a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y)}
}

func (f *lineLineParallel) Kind() Kind { return LineLineParallel }

func (f *lineLineParallel) Evaluate() float64 {
	dx1 := *f.vars[2] - *f.vars[0]
	dy1 := *f.vars[3] - *f.vars[1]
	dx2 := *f.vars[6] - *f.vars[4]
	dy2 := *f.vars[7] - *f.vars[5]
	return dx1*dy2 - dy1*dx2
}

func (f *lineLineParallel) Gradient() map[*float64]float64 {
	dx1 := *f.vars[2] - *f.vars[0]
	dy1 := *f.vars[3] - *f.vars[1]
	dx2 := *f.vars[6] - *f.vars[4]
	dy2 := *f.vars[7] - *f.vars[5]
	return map[*float64]float64{
		f.vars[0]: -dy2,
		f.vars[1]: dx2,
		f.vars[2]: dy2,
		f.vars[3]: -dx2,
		f.vars[4]: dy1,
		f.vars[5]: -dx1,
		f.vars[6]: -dy1,
		f.vars[7]: dx1,
	}
}

// lineLinePerpendicular constrains two lines' direction vectors to be
// perpendicular via their dot product. Same tuple shape as lineLineParallel.
type lineLinePerpendicular struct {
	base
}

func newLineLinePerpendicular(a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y *float64) *lineLinePerpendicular {
	return &lineLinePerpendicular{base: newBase(1.0, a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y)}
}

func (f *lineLinePerpendicular) Kind() Kind { return LineLinePerpendicular }

func (f *lineLinePerpendicular) Evaluate() float64 {
	dx1 := *f.vars[2] - *f.vars[0]
	dy1 := *f.vars[3] - *f.vars[1]
	dx2 := *f.vars[6] - *f.vars[4]
	dy2 := *f.vars[7] - *f.vars[5]
	return dx1*dx2 + dy1*dy2
}

func (f *lineLinePerpendicular) Gradient() map[*float64]float64 {
	dx1 := *f.vars[2] - *f.vars[0]
	dy1 := *f.vars[3] - *f.vars[1]
	dx2 := *f.vars[6] - *f.vars[4]
	dy2 := *f.vars[7] - *f.vars[5]
	return map[*float64]float64{
		f.vars[0]: -dx2,
		f.vars[1]: -dy2,
		f.vars[2]: dx2,
		f.vars[3]: dy2,
		f.vars[4]: -dx1,
		f.vars[5]: -dy1,
		f.vars[6]: dx1,
		f.vars[7]: dy1,
	}
}

// lineLineAngle constrains the angle between two lines' direction vectors to
// a fixed value via cos(theta). Same tuple shape as lineLineParallel.
type lineLineAngle struct {
	base
	angle float64
}

func newLineLineAngle(a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y *float64, angle float64) *lineLineAngle {
	return &lineLineAngle{base: newBase(1.0, a1x, a1y, a2x, a2y, b1x, b1y, b2x, b2y), angle: angle}
}

func (f *lineLineAngle) Kind() Kind { return LineLineAngle }

func (f *lineLineAngle) Evaluate() float64 {
	dx1 := *f.vars[2] - *f.vars[0]
	dy1 := *f.vars[3] - *f.vars[1]
	dx2 := *f.vars[6] - *f.vars[4]
	dy2 := *f.vars[7] - *f.vars[5]

	dot := dx1*dx2 + dy1*dy2
	len1 := math.Hypot(dx1, dy1)
	len2 := math.Hypot(dx2, dy2)
	if len1 < 1e-10 || len2 < 1e-10 {
		return 0.0
	}
	cosTheta := dot / (len1 * len2)
	return cosTheta - math.Cos(f.angle)
}

func (f *lineLineAngle) Gradient() map[*float64]float64 {
	dx1 := *f.vars[2] - *f.vars[0]
	dy1 := *f.vars[3] - *f.vars[1]
	dx2 := *f.vars[6] - *f.vars[4]
	dy2 := *f.vars[7] - *f.vars[5]

	len1 := math.Hypot(dx1, dy1)
	len2 := math.Hypot(dx2, dy2)
	if len1 < 1e-10 || len2 < 1e-10 {
		return zeroGradient(f.vars)
	}

	dot := dx1*dx2 + dy1*dy2
	len1_3 := len1 * len1 * len1
	len2_3 := len2 * len2 * len2

	gA1x := -(dx2/(len1*len2) - dx1*dot/(len1_3*len2))
	gA1y := -(dy2/(len1*len2) - dy1*dot/(len1_3*len2))
	gB1x := -(dx1/(len1*len2) - dx2*dot/(len1*len2_3))
	gB1y := -(dy1/(len1*len2) - dy2*dot/(len1*len2_3))

	return map[*float64]float64{
		f.vars[0]: gA1x,
		f.vars[1]: gA1y,
		f.vars[2]: -gA1x,
		f.vars[3]: -gA1y,
		f.vars[4]: gB1x,
		f.vars[5]: gB1y,
		f.vars[6]: -gB1x,
		f.vars[7]: -gB1y,
	}
}

// vertical constrains a line's direction vector to have zero x component,
// expressed as the normalized dx component. Tuple: Ax,Ay,Bx,By.
type vertical struct {
	base
}

func newVertical(ax, ay, bx, by *float64) *vertical {
	return &vertical{base: newBase(1.0, ax, ay, bx, by)}
}

func (f *vertical) Kind() Kind { return Vertical }

func (f *vertical) Evaluate() float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	len := math.Hypot(dx, dy)
	if len < 1e-10 {
		return 0.0
	}
	return dx / len
}

func (f *vertical) Gradient() map[*float64]float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	len2 := dx*dx + dy*dy
	len := math.Sqrt(len2)
	if len < 1e-10 {
		return zeroGradient(f.vars)
	}
	len3 := len2 * len
	return map[*float64]float64{
		f.vars[0]: -1.0/len + dx*dx/len3,
		f.vars[1]: dx * dy / len3,
		f.vars[2]: 1.0/len - dx*dx/len3,
		f.vars[3]: -dx * dy / len3,
	}
}

// horizontal constrains a line's direction vector to have zero y component,
// expressed as the normalized dy component. Tuple: Ax,Ay,Bx,By.
type horizontal struct {
	base
}

func newHorizontal(ax, ay, bx, by *float64) *horizontal {
	return &horizontal{base: newBase(1.0, ax, ay, bx, by)}
}

func (f *horizontal) Kind() Kind { return Horizontal }

func (f *horizontal) Evaluate() float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	len := math.Hypot(dx, dy)
	if len < 1e-10 {
		return 0.0
	}
	return dy / len
}

func (f *horizontal) Gradient() map[*float64]float64 {
	dx := *f.vars[2] - *f.vars[0]
	dy := *f.vars[3] - *f.vars[1]
	len2 := dx*dx + dy*dy
	len := math.Sqrt(len2)
	if len < 1e-10 {
		return zeroGradient(f.vars)
	}
	len3 := len2 * len
	return map[*float64]float64{
		f.vars[0]: dx * dy / len3,
		f.vars[1]: -1.0/len + dy*dy/len3,
		f.vars[2]: -dx * dy / len3,
		f.vars[3]: 1.0/len - dy*dy/len3,
	}
}
