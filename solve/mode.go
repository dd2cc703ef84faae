package solve

// Mode selects which requirement set a solve operates over and which
// solver it dispatches to.
type Mode string

const (
	// Global re-solves every live requirement against every live variable.
	Global Mode = "global"
	// Local re-solves only the requirements and variables of one component.
	Local Mode = "local"
	// Drag runs the fixed-step gradient descent used for interactive
	// point/circle dragging, scoped to one component when available.
	Drag Mode = "drag"
)
