// Package figures implements the geometry store: the append-only owner of
// points, lines, circles, and arcs, indexed by identifier, with dependency
// tracking and cascaded removal.
package figures

import "github.com/ourpaintteam/dcm/ids"

// Kind enumerates the four figure kinds the store can hold.
type Kind int

const (
	// PointKind identifies a Point entry.
	PointKind Kind = iota
	// LineKind identifies a Line entry.
	LineKind
	// CircleKind identifies a Circle entry.
	CircleKind
	// ArcKind identifies an Arc entry.
	ArcKind
)

// String renders a Kind for logging and error messages.
func (k Kind) String() string {
	switch k {
	case PointKind:
		return "point"
	case LineKind:
		return "line"
	case CircleKind:
		return "circle"
	case ArcKind:
		return "arc"
	default:
		return "unknown"
	}
}

// Point holds two scalar coordinates. These scalars are the fundamental
// solver variables: constraint functions keep *float64 references directly
// into a Point's X/Y fields, so a Point's address must never change for the
// lifetime of the figure (see Store's paged allocation).
type Point struct {
	X, Y float64
}

// Line references two points by identifier. It owns no independent scalars.
type Line struct {
	P1, P2 ids.ID
}

// Circle references one point (the center) and owns one scalar variable, the
// radius, which is also a solver variable and subject to the same address
// stability requirement as Point's fields.
type Circle struct {
	Center ids.ID
	R      float64
}

// Arc references three points: two endpoints and a center. It owns no
// independent scalars.
type Arc struct {
	P1, P2, Center ids.ID
}
