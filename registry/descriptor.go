package registry

import (
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/ids"
)

// Descriptor is the external, figure-id-level description of a constraint:
// which kind, which figures it binds, and (for kinds that take one) its
// target parameter. This is the shape callers build and hand to Add; the
// registry resolves ObjectIDs into the exact scalar-variable tuple each kind
// needs before ever touching the constraint package.
type Descriptor struct {
	Kind      constraint.Kind
	ObjectIDs []ids.ID
	Param     float64
	HasParam  bool
}

// arity is the number of figure identifiers (not scalar variables) a kind's
// descriptor must carry. A PointLineDist descriptor names one point and one
// line (arity 2); resolve expands that into the 6 scalars constraint.New
// takes once the line's two endpoint points are looked up.
var arity = map[constraint.Kind]int{
	constraint.PointPointDist:           2,
	constraint.PointOnPoint:             2,
	constraint.PointLineDist:            2,
	constraint.PointOnLine:              2,
	constraint.LineCircleDist:           2,
	constraint.LineOnCircle:             2,
	constraint.LineLineParallel:         2,
	constraint.LineLinePerpendicular:    2,
	constraint.LineLineAngle:            2,
	constraint.Vertical:                 1,
	constraint.Horizontal:               1,
	constraint.ArcCenterOnPerpendicular: 1,
}

// paramRequired lists the kinds that carry a driving parameter (a target
// distance or angle) and therefore require Descriptor.HasParam. Every other
// supported kind is a pure incidence/orientation constraint and forbids one.
var paramRequired = map[constraint.Kind]bool{
	constraint.PointPointDist: true,
	constraint.PointLineDist:  true,
	constraint.LineCircleDist: true,
	constraint.LineLineAngle:  true,
}
