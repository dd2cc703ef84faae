// Package constraint implements the thirteen geometric constraint kinds as
// residual/gradient functions over a fixed tuple of scalar variable
// references into the geometry store.
package constraint

// Kind enumerates the constraint kinds a Function can implement. The order
// matches the source enumeration so that kind-indexed tables elsewhere in
// the module line up with it.
type Kind int

const (
	PointPointDist Kind = iota
	PointOnPoint
	PointLineDist
	PointOnLine
	LineCircleDist
	LineOnCircle
	LineLineParallel
	LineLinePerpendicular
	LineLineAngle
	Vertical
	Horizontal
	ArcCenterOnPerpendicular
	LineInCircle
)

var kindNames = [...]string{
	"PointPointDist", "PointOnPoint", "PointLineDist", "PointOnLine",
	"LineCircleDist", "LineOnCircle", "LineLineParallel", "LineLinePerpendicular",
	"LineLineAngle", "Vertical", "Horizontal", "ArcCenterOnPerpendicular", "LineInCircle",
}

// String renders a Kind by name.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Function is the shape every constraint kind implements: a residual over a
// fixed tuple of scalar references, with an analytic gradient.
type Function interface {
	// Kind reports which of the 13 kinds this function implements.
	Kind() Kind
	// Vars returns the fixed tuple of scalar references this function was
	// built with, in the kind's canonical order.
	Vars() []*float64
	// Evaluate returns the signed residual; 0 when satisfied.
	Evaluate() float64
	// Gradient returns ∂residual/∂var for each variable in Vars.
	Gradient() map[*float64]float64
	// Weight is the residual multiplier applied by the function system.
	// Defaults to 1.0; nothing in this module exposes per-constraint
	// weight tuning yet (see Non-goals), so every constructor sets it to 1.
	Weight() float64
}

// base is embedded by every concrete constraint kind; it supplies Vars and
// Weight so each kind only needs to implement Kind/Evaluate/Gradient.
type base struct {
	vars   []*float64
	weight float64
}

func newBase(weight float64, vars ...*float64) base {
	return base{vars: vars, weight: weight}
}

func (b base) Vars() []*float64 { return b.vars }
func (b base) Weight() float64  { return b.weight }

// zeroGradient returns a gradient map with every tracked variable mapped to
// zero, the "constraint inactive" policy applied whenever a controlling
// denominator (segment length, point distance) falls below the numeric
// threshold for a given kind.
func zeroGradient(vars []*float64) map[*float64]float64 {
	g := make(map[*float64]float64, len(vars))
	for _, v := range vars {
		g[v] = 0.0
	}
	return g
}
