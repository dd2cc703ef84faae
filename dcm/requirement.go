package dcm

import (
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/ids"
	"github.com/ourpaintteam/dcm/registry"
)

// RequirementDescriptor is the external-interface intake shape for
// addRequirement: a constraint kind, the figure ids it relates, and an
// optional driving parameter. See registry.Descriptor for the per-kind
// arity and parameter rules enforced against it.
type RequirementDescriptor struct {
	Kind      constraint.Kind
	ObjectIDs []ids.ID
	Param     float64
	HasParam  bool
}

func (d RequirementDescriptor) toRegistry() registry.Descriptor {
	return registry.Descriptor{
		Kind:      d.Kind,
		ObjectIDs: d.ObjectIDs,
		Param:     d.Param,
		HasParam:  d.HasParam,
	}
}

func fromRegistry(d registry.Descriptor) RequirementDescriptor {
	return RequirementDescriptor{
		Kind:      d.Kind,
		ObjectIDs: d.ObjectIDs,
		Param:     d.Param,
		HasParam:  d.HasParam,
	}
}
