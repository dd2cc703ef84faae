// Package registry implements the unified constraint registry: validated
// descriptor intake, figure-id-to-scalar-variable resolution, and the
// rebuild-on-mutate policy that keeps the underlying function system
// consistent with the live set of descriptors.
package registry

import (
	"github.com/cpmech/gosl/io"
	"github.com/ourpaintteam/dcm/constraint"
	"github.com/ourpaintteam/dcm/figures"
	"github.com/ourpaintteam/dcm/ids"
	"github.com/ourpaintteam/dcm/system"
)

// record pairs a live descriptor with the Function most recently resolved
// from it.
type record struct {
	id   ids.ID
	desc Descriptor
	fn   constraint.Function
}

// Registry owns the live constraint descriptors for one geometry store and
// keeps a system.FunctionSystem rebuilt from exactly those descriptors.
type Registry struct {
	store *figures.Store
	gen   *ids.Generator
	sys   *system.FunctionSystem

	index map[ids.ID]*record
	order []ids.ID
}

// New returns an empty registry bound to store.
func New(store *figures.Store) *Registry {
	return &Registry{
		store: store,
		gen:   ids.NewGenerator(),
		sys:   system.New(),
		index: make(map[ids.ID]*record),
	}
}

// System returns the function system kept consistent with the live
// descriptor set, for the solver layer to read and mutate variables through.
func (r *Registry) System() *system.FunctionSystem { return r.sys }

// Add validates desc, resolves its figures, and — on success — assigns it a
// new identifier and includes it in the function system. LineInCircle is
// always rejected with *UnsupportedConstraintError before validation, since
// no Function definition exists for it.
func (r *Registry) Add(desc Descriptor) (ids.ID, error) {
	if desc.Kind == constraint.LineInCircle {
		return ids.Unset, &UnsupportedConstraintError{Kind: desc.Kind}
	}
	if err := validate(desc); err != nil {
		return ids.Unset, err
	}
	fn, err := resolve(r.store, desc)
	if err != nil {
		return ids.Unset, err
	}

	id := r.gen.Next()
	r.index[id] = &record{id: id, desc: desc, fn: fn}
	r.order = append(r.order, id)
	r.sys.AddFunction(fn)
	return id, nil
}

// Remove drops a descriptor and rebuilds the function system from the
// descriptors that remain.
//
// The original manager's removeRequirement kept a second, incidental
// bookkeeping graph (distinct from the connected-components partition) and
// special-cased single-object constraints when unlinking an edge from it —
// an off-by-one that silently did nothing for Vertical/Horizontal/
// ArcCenterOnPerpendicular removals. This registry has no edge-list
// structure of that kind to begin with: rebuild-on-mutate (mandated for the
// component tracker this registry feeds) replaces incremental edge removal
// entirely, so there is no code path left for that bug to live in. It is
// absent by construction, not kept as a deliberately-preserved no-op branch.
func (r *Registry) Remove(id ids.ID) error {
	if _, ok := r.index[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.index, id)
	for i, rid := range r.order {
		if rid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return r.rebuild()
}

// UpdateParam changes the driving parameter of a parameterized descriptor
// and rebuilds the function system. It fails with *NoParameterError for a
// kind that carries no parameter, matching Add's validation of HasParam.
func (r *Registry) UpdateParam(id ids.ID, value float64) error {
	rec, ok := r.index[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	if !paramRequired[rec.desc.Kind] {
		return &NoParameterError{ID: id, Kind: rec.desc.Kind}
	}
	rec.desc.Param = value
	fn, err := resolve(r.store, rec.desc)
	if err != nil {
		return err
	}
	rec.fn = fn
	return r.rebuild()
}

// rebuild reconstructs the function system from every remaining descriptor,
// in their original relative order, re-resolving each against the current
// state of the store.
func (r *Registry) rebuild() error {
	r.sys.Clear()
	for _, id := range r.order {
		rec := r.index[id]
		fn, err := resolve(r.store, rec.desc)
		if err != nil {
			return err
		}
		rec.fn = fn
		r.sys.AddFunction(fn)
	}
	return nil
}

// Get returns the descriptor registered under id.
func (r *Registry) Get(id ids.ID) (Descriptor, error) {
	rec, ok := r.index[id]
	if !ok {
		return Descriptor{}, &NotFoundError{ID: id}
	}
	return rec.desc, nil
}

// Has reports whether id names a live descriptor.
func (r *Registry) Has(id ids.ID) bool {
	_, ok := r.index[id]
	return ok
}

// Entry pairs a registered identifier with its descriptor, as returned by All.
type Entry struct {
	ID   ids.ID
	Desc Descriptor
}

// All returns every live (id, descriptor) pair, in insertion order.
func (r *Registry) All() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, Entry{ID: id, Desc: r.index[id].desc})
	}
	return out
}

// Subsystem builds a fresh, independent function system containing only the
// named requirements, re-resolved against the current store state. It is
// used for LOCAL/DRAG-mode solves scoped to one component, mirroring the
// source's buildSubsystem, which populates a throwaway RequirementSystem
// from just the requirements of one component rather than solving the
// whole manager's requirement set.
func (r *Registry) Subsystem(reqIDs []ids.ID) (*system.FunctionSystem, error) {
	sub := system.New()
	for _, id := range reqIDs {
		rec, ok := r.index[id]
		if !ok {
			return nil, &NotFoundError{ID: id}
		}
		fn, err := resolve(r.store, rec.desc)
		if err != nil {
			return nil, err
		}
		sub.AddFunction(fn)
	}
	return sub, nil
}

// Clear drops every descriptor and empties the function system.
func (r *Registry) Clear() {
	r.index = make(map[ids.ID]*record)
	r.order = nil
	r.sys.Clear()
	r.gen.Reset()
}

func validate(desc Descriptor) error {
	want, ok := arity[desc.Kind]
	if !ok {
		return &InvalidDescriptorError{Kind: desc.Kind, Reason: "unknown constraint kind"}
	}
	if len(desc.ObjectIDs) != want {
		return &InvalidDescriptorError{
			Kind:   desc.Kind,
			Reason: io.Sf("expected %d object id(s), got %d", want, len(desc.ObjectIDs)),
		}
	}
	required := paramRequired[desc.Kind]
	if required && !desc.HasParam {
		return &InvalidDescriptorError{Kind: desc.Kind, Reason: "parameter is required but missing"}
	}
	if !required && desc.HasParam {
		return &InvalidDescriptorError{Kind: desc.Kind, Reason: "parameter is not accepted by this kind"}
	}
	return nil
}
