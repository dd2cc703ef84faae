package dcm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/ids"
)

// FigureKind enumerates the four figure kinds a FigureDescriptor can name.
type FigureKind int

const (
	PointFigure FigureKind = iota
	LineFigure
	CircleFigure
	ArcFigure
)

func (k FigureKind) String() string {
	switch k {
	case PointFigure:
		return "POINT"
	case LineFigure:
		return "LINE"
	case CircleFigure:
		return "CIRCLE"
	case ArcFigure:
		return "ARC"
	default:
		return "UNKNOWN"
	}
}

// FigureDescriptor is the external-interface intake shape for addFigure: a
// figure can be named either by the ids of existing points (PointIDs) or by
// fresh coordinate pairs (Coords) that the manager turns into new points.
// Exactly one of the two forms applies per kind, per the table in §6 of the
// requirements; see validateFigureDescriptor.
type FigureDescriptor struct {
	Kind      FigureKind
	PointIDs  []ids.ID
	Coords    []float64
	Radius    float64
	HasRadius bool
}

// validateFigureDescriptor checks a descriptor's shape against the per-kind rule table,
// before any figure is created. It does not check that PointIDs refer to
// live points; that surfaces naturally from the store as *NotFoundError /
// *TypeMismatchError when the manager resolves them.
func validateFigureDescriptor(desc FigureDescriptor) error {
	switch desc.Kind {
	case PointFigure:
		if len(desc.Coords) == 2 {
			return nil
		}
		return invalidFigure(desc.Kind, "requires coords of length 2")

	case LineFigure:
		if len(desc.PointIDs) == 2 || len(desc.Coords) == 4 {
			return nil
		}
		return invalidFigure(desc.Kind, "requires pointIds of length 2 or coords of length 4")

	case CircleFigure:
		if !(len(desc.PointIDs) == 1 || len(desc.Coords) == 2) {
			return invalidFigure(desc.Kind, "requires pointIds of length 1 or coords of length 2")
		}
		if !desc.HasRadius || desc.Radius <= 0 {
			return invalidFigure(desc.Kind, "requires a positive radius")
		}
		return nil

	case ArcFigure:
		if len(desc.PointIDs) == 3 || len(desc.Coords) == 6 {
			return nil
		}
		return invalidFigure(desc.Kind, "requires pointIds of length 3 or coords of length 6")

	default:
		return invalidFigure(desc.Kind, "unknown figure kind")
	}
}

func invalidFigure(kind FigureKind, reason string) error {
	return &Error{Kind: InvalidDescriptor, Err: chk.Err("invalid %s figure descriptor: %s", kind, reason)}
}
