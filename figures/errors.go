package figures

import (
	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/ids"
)

// NotFoundError reports that no live figure exists with the given identifier.
type NotFoundError struct {
	ID ids.ID
}

func (e *NotFoundError) Error() string {
	return chk.Err("figure %d not found", e.ID).Error()
}

// TypeMismatchError reports that an identifier resolved to a figure of a
// different kind than the caller requested.
type TypeMismatchError struct {
	ID        ids.ID
	Want, Got Kind
}

func (e *TypeMismatchError) Error() string {
	return chk.Err("figure %d is a %s, not a %s", e.ID, e.Got, e.Want).Error()
}

// DependencyExistsError reports that a non-cascaded removal was blocked by
// one or more dependent figures.
type DependencyExistsError struct {
	ID         ids.ID
	Dependents []ids.ID
}

func (e *DependencyExistsError) Error() string {
	return chk.Err("figure %d has %d dependent figure(s); remove with cascade=true", e.ID, len(e.Dependents)).Error()
}
