package constraint

import "github.com/cpmech/gosl/chk"

// New builds the constraint Function for kind from its fixed scalar tuple,
// in the exact per-kind order documented on each kind's type. param
// is only read by kinds that take one (PointPointDist, PointLineDist,
// LineCircleDist, LineLineAngle); it is ignored otherwise.
//
// LineInCircle has no definition here: the unified registry rejects it with
// UnsupportedConstraint before ever reaching this factory, matching the
// source, which only exposes LineInCircle through a separate lower-level
// path that this module does not implement.
func New(kind Kind, vars []*float64, param float64) (Function, error) {
	n := len(vars)
	switch kind {
	case PointPointDist:
		if n != 4 {
			return nil, chk.Err("PointPointDist requires 4 variables, got %d", n)
		}
		return newPointPointDist(vars[0], vars[1], vars[2], vars[3], param), nil

	case PointOnPoint:
		if n != 4 {
			return nil, chk.Err("PointOnPoint requires 4 variables, got %d", n)
		}
		return newPointOnPoint(vars[0], vars[1], vars[2], vars[3]), nil

	case PointLineDist:
		if n != 6 {
			return nil, chk.Err("PointLineDist requires 6 variables, got %d", n)
		}
		return newPointLineDist(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5], param), nil

	case PointOnLine:
		if n != 6 {
			return nil, chk.Err("PointOnLine requires 6 variables, got %d", n)
		}
		return newPointOnLine(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5]), nil

	case LineCircleDist:
		if n != 7 {
			return nil, chk.Err("LineCircleDist requires 7 variables, got %d", n)
		}
		return newLineCircleDist(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5], vars[6], param), nil

	case LineOnCircle:
		if n != 7 {
			return nil, chk.Err("LineOnCircle requires 7 variables, got %d", n)
		}
		return newLineOnCircle(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5], vars[6]), nil

	case LineLineParallel:
		if n != 8 {
			return nil, chk.Err("LineLineParallel requires 8 variables, got %d", n)
		}
		return newLineLineParallel(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5], vars[6], vars[7]), nil

	case LineLinePerpendicular:
		if n != 8 {
			return nil, chk.Err("LineLinePerpendicular requires 8 variables, got %d", n)
		}
		return newLineLinePerpendicular(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5], vars[6], vars[7]), nil

	case LineLineAngle:
		if n != 8 {
			return nil, chk.Err("LineLineAngle requires 8 variables, got %d", n)
		}
		return newLineLineAngle(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5], vars[6], vars[7], param), nil

	case Vertical:
		if n != 4 {
			return nil, chk.Err("Vertical requires 4 variables, got %d", n)
		}
		return newVertical(vars[0], vars[1], vars[2], vars[3]), nil

	case Horizontal:
		if n != 4 {
			return nil, chk.Err("Horizontal requires 4 variables, got %d", n)
		}
		return newHorizontal(vars[0], vars[1], vars[2], vars[3]), nil

	case ArcCenterOnPerpendicular:
		if n != 6 {
			return nil, chk.Err("ArcCenterOnPerpendicular requires 6 variables, got %d", n)
		}
		return newArcCenterOnPerpendicular(vars[0], vars[1], vars[2], vars[3], vars[4], vars[5]), nil

	default:
		return nil, chk.Err("constraint kind %s has no function definition", kind)
	}
}
