package dcm

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/figures"
	"github.com/ourpaintteam/dcm/registry"
)

// ErrKind classifies every failure the facade can return, so callers can
// branch with errors.As/KindOf instead of matching error strings.
type ErrKind int

const (
	// InvalidDescriptor: a figure or constraint descriptor failed arity,
	// coordinate, or parameter-presence validation.
	InvalidDescriptor ErrKind = iota
	// NotFound: a referenced figure or constraint identifier is not live.
	NotFound
	// TypeMismatch: an identifier resolved to a figure of the wrong kind.
	TypeMismatch
	// DependencyExists: a non-cascaded removal was blocked by dependents.
	DependencyExists
	// NoParameter: updateRequirementParam on a constraint with no parameter.
	NoParameter
	// UnsupportedConstraint: LineInCircle via the unified interface.
	UnsupportedConstraint
	// ModeMismatch: solve in LOCAL mode called without a component id.
	ModeMismatch
)

func (k ErrKind) String() string {
	switch k {
	case InvalidDescriptor:
		return "InvalidDescriptor"
	case NotFound:
		return "NotFound"
	case TypeMismatch:
		return "TypeMismatch"
	case DependencyExists:
		return "DependencyExists"
	case NoParameter:
		return "NoParameter"
	case UnsupportedConstraint:
		return "UnsupportedConstraint"
	case ModeMismatch:
		return "ModeMismatch"
	default:
		return "Unknown"
	}
}

// Error wraps a lower-package error with the ErrKind a caller needs to
// branch on, without discarding the original error (available via Unwrap).
type Error struct {
	Kind ErrKind
	Err  error
}

func (e *Error) Error() string {
	return chk.Err("%s: %v", e.Kind, e.Err).Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the ErrKind a facade error was classified with, and false
// if err is not a *dcm.Error (e.g. nil, or a caller-constructed error).
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// wrap classifies err against the lower packages' typed error taxonomy and
// returns a *Error carrying the matching ErrKind, or nil if err is nil.
// An err that matches none of the known types is wrapped as NotFound, since
// every lower package in this module only ever returns one of the types
// checked below or a figures/registry typed error.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var notFound *figures.NotFoundError
	if errors.As(err, &notFound) {
		return &Error{Kind: NotFound, Err: err}
	}
	var typeMismatch *figures.TypeMismatchError
	if errors.As(err, &typeMismatch) {
		return &Error{Kind: TypeMismatch, Err: err}
	}
	var depExists *figures.DependencyExistsError
	if errors.As(err, &depExists) {
		return &Error{Kind: DependencyExists, Err: err}
	}
	var invalidDesc *registry.InvalidDescriptorError
	if errors.As(err, &invalidDesc) {
		return &Error{Kind: InvalidDescriptor, Err: err}
	}
	var regNotFound *registry.NotFoundError
	if errors.As(err, &regNotFound) {
		return &Error{Kind: NotFound, Err: err}
	}
	var noParam *registry.NoParameterError
	if errors.As(err, &noParam) {
		return &Error{Kind: NoParameter, Err: err}
	}
	var unsupported *registry.UnsupportedConstraintError
	if errors.As(err, &unsupported) {
		return &Error{Kind: UnsupportedConstraint, Err: err}
	}
	return &Error{Kind: NotFound, Err: err}
}
