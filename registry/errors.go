package registry

import (
	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/ids"
)

// InvalidDescriptorError reports a constraint descriptor that failed arity
// or parameter-presence validation.
type InvalidDescriptorError struct {
	Kind   constraint.Kind
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return chk.Err("invalid %s descriptor: %s", e.Kind, e.Reason).Error()
}

// NotFoundError reports that a constraint identifier does not resolve to a
// live requirement.
type NotFoundError struct {
	ID ids.ID
}

func (e *NotFoundError) Error() string {
	return chk.Err("requirement %d not found", e.ID).Error()
}

// NoParameterError reports updateRequirementParam called on a constraint
// kind that carries no parameter.
type NoParameterError struct {
	ID   ids.ID
	Kind constraint.Kind
}

func (e *NoParameterError) Error() string {
	return chk.Err("requirement %d (%s) has no parameter to update", e.ID, e.Kind).Error()
}

// UnsupportedConstraintError reports a constraint kind with no definition
// reachable through the unified registry interface (LineInCircle).
type UnsupportedConstraintError struct {
	Kind constraint.Kind
}

func (e *UnsupportedConstraintError) Error() string {
	return chk.Err("%s is not supported via the unified requirement interface", e.Kind).Error()
}
