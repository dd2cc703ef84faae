package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// checkGradient verifies f's analytic Gradient against a central-difference
// numerical derivative for every tracked variable, mirroring the teacher's
// consistent-tangent verification idiom (msolid/driver.go, mdl/retention).
func checkGradient(tst *testing.T, label string, f Function, tol float64) {
	vars := f.Vars()
	ana := f.Gradient()
	for i, v := range vars {
		original := *v
		dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
			*v = x
			res = f.Evaluate()
			*v = original
			return
		}, original)
		*v = original
		err := chk.PrintAnaNum(io.Sf("%s: d/dvar[%d]", label, i), tol, ana[v], dnum, false)
		if err != nil {
			tst.Errorf("%s: var %d analytic/numeric gradient mismatch: %v", label, i, err)
		}
	}
}

func TestGradientsAtGenericConfiguration(tst *testing.T) {
	chk.PrintTitle("GradientsAtGenericConfiguration")

	px, py := 1.3, 2.1
	qx, qy := 4.7, -0.6
	ax, ay := 0.2, 0.4
	bx, by := 5.1, 3.3
	a1x, a1y := -1.0, 2.0
	a2x, a2y := 3.0, 0.5
	b1x, b1y := 2.0, -1.0
	b2x, b2y := -0.5, 4.0
	cx, cy := 2.5, 1.5
	r := 1.2

	tol := 1e-6

	ppd, _ := New(PointPointDist, []*float64{&px, &py, &qx, &qy}, 2.0)
	checkGradient(tst, "PointPointDist", ppd, tol)

	pop, _ := New(PointOnPoint, []*float64{&px, &py, &qx, &qy}, 0)
	checkGradient(tst, "PointOnPoint", pop, tol)

	pld, _ := New(PointLineDist, []*float64{&px, &py, &ax, &ay, &bx, &by}, 0.5)
	checkGradient(tst, "PointLineDist", pld, tol)

	pol, _ := New(PointOnLine, []*float64{&px, &py, &ax, &ay, &bx, &by}, 0)
	checkGradient(tst, "PointOnLine", pol, tol)

	lcd, _ := New(LineCircleDist, []*float64{&ax, &ay, &bx, &by, &cx, &cy, &r}, 0.3)
	checkGradient(tst, "LineCircleDist (interior t)", lcd, tol)

	loc, _ := New(LineOnCircle, []*float64{&ax, &ay, &bx, &by, &cx, &cy, &r}, 0)
	checkGradient(tst, "LineOnCircle", loc, tol)

	llp, _ := New(LineLineParallel, []*float64{&a1x, &a1y, &a2x, &a2y, &b1x, &b1y, &b2x, &b2y}, 0)
	checkGradient(tst, "LineLineParallel", llp, tol)

	llpe, _ := New(LineLinePerpendicular, []*float64{&a1x, &a1y, &a2x, &a2y, &b1x, &b1y, &b2x, &b2y}, 0)
	checkGradient(tst, "LineLinePerpendicular", llpe, tol)

	lla, _ := New(LineLineAngle, []*float64{&a1x, &a1y, &a2x, &a2y, &b1x, &b1y, &b2x, &b2y}, 0.7)
	checkGradient(tst, "LineLineAngle", lla, tol)

	vert, _ := New(Vertical, []*float64{&ax, &ay, &bx, &by}, 0)
	checkGradient(tst, "Vertical", vert, tol)

	horiz, _ := New(Horizontal, []*float64{&ax, &ay, &bx, &by}, 0)
	checkGradient(tst, "Horizontal", horiz, tol)

	arcp, _ := New(ArcCenterOnPerpendicular, []*float64{&ax, &ay, &bx, &by, &cx, &cy}, 0)
	checkGradient(tst, "ArcCenterOnPerpendicular", arcp, tol)
}

func TestLineCircleDistGradientAtClampedBoundaries(tst *testing.T) {
	chk.PrintTitle("LineCircleDistGradientAtClampedBoundaries")

	// circle projects before A: t clamps to 0
	ax, ay := 0.0, 0.0
	bx, by := 4.0, 0.0
	cx, cy := -3.0, 2.0
	r := 1.0
	f, _ := New(LineCircleDist, []*float64{&ax, &ay, &bx, &by, &cx, &cy, &r}, 0.2)
	checkGradient(tst, "LineCircleDist (t clamps to 0)", f, 1e-6)

	// circle projects beyond B: t clamps to 1
	cx2, cy2 := 7.0, 2.0
	f2, _ := New(LineCircleDist, []*float64{&ax, &ay, &bx, &by, &cx2, &cy2, &r}, 0.2)
	checkGradient(tst, "LineCircleDist (t clamps to 1)", f2, 1e-6)
}

func TestDegenerateLineReturnsZeroResidualAndGradient(tst *testing.T) {
	chk.PrintTitle("DegenerateLineReturnsZeroResidualAndGradient")

	ax, ay := 1.0, 1.0
	bx, by := 1.0, 1.0 // coincident endpoints: zero-length segment

	cases := []struct {
		kind Kind
		vars []*float64
	}{
		{Vertical, []*float64{&ax, &ay, &bx, &by}},
		{Horizontal, []*float64{&ax, &ay, &bx, &by}},
	}
	for _, c := range cases {
		f, err := New(c.kind, c.vars, 0)
		if err != nil {
			tst.Fatalf("New(%s) failed: %v", c.kind, err)
		}
		if r := f.Evaluate(); r != 0 {
			tst.Errorf("%s: degenerate residual = %v, want 0", c.kind, r)
		}
		for v, g := range f.Gradient() {
			_ = v
			if g != 0 {
				tst.Errorf("%s: degenerate gradient entry = %v, want 0", c.kind, g)
			}
		}
	}
}

func TestUnsupportedKindFactoryError(tst *testing.T) {
	chk.PrintTitle("UnsupportedKindFactoryError")

	x := 0.0
	if _, err := New(LineInCircle, []*float64{&x, &x}, 0); err == nil {
		tst.Errorf("expected an error constructing LineInCircle")
	}
}
