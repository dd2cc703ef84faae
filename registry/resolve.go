package registry

import (
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/figures"
)

// resolve turns desc's figure-id-level ObjectIDs into the exact scalar
// variable tuple constraint.New expects for desc.Kind, then constructs the
// Function. Figure lookups surface the store's own *NotFoundError /
// *TypeMismatchError unchanged, so callers can classify them the same way
// regardless of whether the failure came from the registry or the store.
func resolve(store *figures.Store, desc Descriptor) (constraint.Function, error) {
	switch desc.Kind {
	case constraint.PointPointDist, constraint.PointOnPoint:
		p1, err := store.GetPoint(desc.ObjectIDs[0])
		if err != nil {
			return nil, err
		}
		p2, err := store.GetPoint(desc.ObjectIDs[1])
		if err != nil {
			return nil, err
		}
		vars := []*float64{&p1.X, &p1.Y, &p2.X, &p2.Y}
		return constraint.New(desc.Kind, vars, desc.Param)

	case constraint.PointLineDist, constraint.PointOnLine:
		pt, err := store.GetPoint(desc.ObjectIDs[0])
		if err != nil {
			return nil, err
		}
		ln, err := store.GetLine(desc.ObjectIDs[1])
		if err != nil {
			return nil, err
		}
		a, err := store.GetPoint(ln.P1)
		if err != nil {
			return nil, err
		}
		b, err := store.GetPoint(ln.P2)
		if err != nil {
			return nil, err
		}
		vars := []*float64{&pt.X, &pt.Y, &a.X, &a.Y, &b.X, &b.Y}
		return constraint.New(desc.Kind, vars, desc.Param)

	case constraint.LineCircleDist, constraint.LineOnCircle:
		ln, err := store.GetLine(desc.ObjectIDs[0])
		if err != nil {
			return nil, err
		}
		a, err := store.GetPoint(ln.P1)
		if err != nil {
			return nil, err
		}
		b, err := store.GetPoint(ln.P2)
		if err != nil {
			return nil, err
		}
		c, err := store.GetCircle(desc.ObjectIDs[1])
		if err != nil {
			return nil, err
		}
		center, err := store.GetPoint(c.Center)
		if err != nil {
			return nil, err
		}
		vars := []*float64{&a.X, &a.Y, &b.X, &b.Y, &center.X, &center.Y, &c.R}
		return constraint.New(desc.Kind, vars, desc.Param)

	case constraint.LineLineParallel, constraint.LineLinePerpendicular, constraint.LineLineAngle:
		l1, err := store.GetLine(desc.ObjectIDs[0])
		if err != nil {
			return nil, err
		}
		a1, err := store.GetPoint(l1.P1)
		if err != nil {
			return nil, err
		}
		a2, err := store.GetPoint(l1.P2)
		if err != nil {
			return nil, err
		}
		l2, err := store.GetLine(desc.ObjectIDs[1])
		if err != nil {
			return nil, err
		}
		b1, err := store.GetPoint(l2.P1)
		if err != nil {
			return nil, err
		}
		b2, err := store.GetPoint(l2.P2)
		if err != nil {
			return nil, err
		}
		vars := []*float64{&a1.X, &a1.Y, &a2.X, &a2.Y, &b1.X, &b1.Y, &b2.X, &b2.Y}
		return constraint.New(desc.Kind, vars, desc.Param)

	case constraint.Vertical, constraint.Horizontal:
		ln, err := store.GetLine(desc.ObjectIDs[0])
		if err != nil {
			return nil, err
		}
		a, err := store.GetPoint(ln.P1)
		if err != nil {
			return nil, err
		}
		b, err := store.GetPoint(ln.P2)
		if err != nil {
			return nil, err
		}
		vars := []*float64{&a.X, &a.Y, &b.X, &b.Y}
		return constraint.New(desc.Kind, vars, 0)

	case constraint.ArcCenterOnPerpendicular:
		arc, err := store.GetArc(desc.ObjectIDs[0])
		if err != nil {
			return nil, err
		}
		a, err := store.GetPoint(arc.P1)
		if err != nil {
			return nil, err
		}
		b, err := store.GetPoint(arc.P2)
		if err != nil {
			return nil, err
		}
		center, err := store.GetPoint(arc.Center)
		if err != nil {
			return nil, err
		}
		vars := []*float64{&a.X, &a.Y, &b.X, &b.Y, &center.X, &center.Y}
		return constraint.New(desc.Kind, vars, 0)

	default:
		return nil, &UnsupportedConstraintError{Kind: desc.Kind}
	}
}
