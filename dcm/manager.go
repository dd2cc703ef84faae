// Package dcm implements the manager facade: the single public entry point
// that owns the geometry store, the constraint registry, the component
// tracker, and the round-trip figure descriptor side-table, and dispatches
// solving through the current mode.
package dcm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/ourpaintteam/dcm/component"
	"github.com/ourpaintteam/dcm/figures"
	"github.com/ourpaintteam/dcm/ids"
	"github.com/ourpaintteam/dcm/registry"
	"github.com/ourpaintteam/dcm/solve"
	"github.com/ourpaintteam/dcm/system"
)

// Manager is the single public entry point of this module. One Manager is
// entirely self-contained: identifiers, figures, and constraints are only
// unique within it, and every operation runs synchronously to completion.
type Manager struct {
	store *figures.Store
	reg   *registry.Registry
	comps *component.Tracker

	figureRecords map[ids.ID]FigureDescriptor

	mode solve.Mode
	cfg  solve.Config
}

// NewManager returns an empty manager in GLOBAL solve mode with default
// solver tuning.
func NewManager() *Manager {
	store := figures.NewStore()
	return &Manager{
		store:         store,
		reg:           registry.New(store),
		comps:         component.New(),
		figureRecords: make(map[ids.ID]FigureDescriptor),
		mode:          solve.Global,
		cfg:           solve.DefaultConfig(),
	}
}

// SetSolverConfig overrides the default solver tuning (§10.4's fun.Prms
// binding story lives in solve.Config.Connect; the manager just holds
// whichever Config the caller hands it).
func (m *Manager) SetSolverConfig(cfg solve.Config) { m.cfg = cfg }

// registerPoint gives a freshly created point its own singleton component,
// matching addFigure's registerPoint lambda.
func (m *Manager) registerPoint(pid ids.ID, x, y float64) {
	m.figureRecords[pid] = FigureDescriptor{Kind: PointFigure, Coords: []float64{x, y}}
	c := m.comps.CreateComponent()
	m.comps.AddFigureToComponent(pid, c)
}

// AddFigure validates desc, creates the backing geometry (creating fresh
// points for any composite given by coordinates rather than existing point
// ids), places it in its own component, and merges that component with the
// components of every point it references.
func (m *Manager) AddFigure(desc FigureDescriptor) (ids.ID, error) {
	if err := validateFigureDescriptor(desc); err != nil {
		return ids.Unset, err
	}

	var figureID ids.ID
	var related []ids.ID
	stored := desc

	switch desc.Kind {
	case PointFigure:
		id, _ := m.store.CreatePoint(desc.Coords[0], desc.Coords[1])
		figureID = id

	case LineFigure:
		var p1, p2 ids.ID
		if len(desc.Coords) == 4 {
			p1, _ = m.store.CreatePoint(desc.Coords[0], desc.Coords[1])
			p2, _ = m.store.CreatePoint(desc.Coords[2], desc.Coords[3])
			m.registerPoint(p1, desc.Coords[0], desc.Coords[1])
			m.registerPoint(p2, desc.Coords[2], desc.Coords[3])
		} else {
			p1, p2 = desc.PointIDs[0], desc.PointIDs[1]
		}
		id, _, err := m.store.CreateLine(p1, p2)
		if err != nil {
			return ids.Unset, wrap(err)
		}
		figureID = id
		related = []ids.ID{p1, p2}
		stored.PointIDs = related

	case CircleFigure:
		var center ids.ID
		if len(desc.Coords) == 2 {
			center, _ = m.store.CreatePoint(desc.Coords[0], desc.Coords[1])
			m.registerPoint(center, desc.Coords[0], desc.Coords[1])
		} else {
			center = desc.PointIDs[0]
		}
		id, _, err := m.store.CreateCircle(center, desc.Radius)
		if err != nil {
			return ids.Unset, wrap(err)
		}
		figureID = id
		related = []ids.ID{center}
		stored.PointIDs = related

	case ArcFigure:
		var p1, p2, center ids.ID
		if len(desc.Coords) == 6 {
			p1, _ = m.store.CreatePoint(desc.Coords[0], desc.Coords[1])
			p2, _ = m.store.CreatePoint(desc.Coords[2], desc.Coords[3])
			center, _ = m.store.CreatePoint(desc.Coords[4], desc.Coords[5])
			m.registerPoint(p1, desc.Coords[0], desc.Coords[1])
			m.registerPoint(p2, desc.Coords[2], desc.Coords[3])
			m.registerPoint(center, desc.Coords[4], desc.Coords[5])
		} else {
			p1, p2, center = desc.PointIDs[0], desc.PointIDs[1], desc.PointIDs[2]
		}
		id, _, err := m.store.CreateArc(p1, p2, center)
		if err != nil {
			return ids.Unset, wrap(err)
		}
		figureID = id
		related = []ids.ID{p1, p2, center}
		stored.PointIDs = related

	default:
		return ids.Unset, invalidFigure(desc.Kind, "unknown figure kind")
	}

	m.figureRecords[figureID] = stored

	compID := m.comps.CreateComponent()
	m.comps.AddFigureToComponent(figureID, compID)
	if len(related) > 0 {
		m.comps.MergeComponents(append(append([]ids.ID{}, related...), figureID))
	}

	return figureID, nil
}

// RemoveFigure deletes a figure. With cascade=false, a figure that still has
// dependents fails with DependencyExists and nothing changes. With
// cascade=true, every requirement touching the figure or any of its
// dependents is removed first (so no requirement is ever left referencing a
// figure the store has dropped), then the store cascades the figure removal
// itself, and the component partition is fully rebuilt from what remains.
func (m *Manager) RemoveFigure(id ids.ID, cascade bool) error {
	if !m.store.Contains(id) {
		return &Error{Kind: NotFound, Err: chk.Err("figure %d not found", id)}
	}

	doomed := append([]ids.ID{id}, m.store.DependentClosure(id)...)
	if cascade {
		for _, fid := range doomed {
			for _, reqID := range m.requirementsForFigure(fid) {
				if err := m.reg.Remove(reqID); err != nil {
					return wrap(err)
				}
			}
		}
	}

	if err := m.store.Remove(id, cascade); err != nil {
		return wrap(err)
	}
	for _, fid := range doomed {
		delete(m.figureRecords, fid)
		m.comps.RemoveFigureFromComponent(fid)
	}
	m.rebuildComponents()
	return nil
}

func (m *Manager) requirementsForFigure(figureID ids.ID) []ids.ID {
	var out []ids.ID
	for _, e := range m.reg.All() {
		for _, oid := range e.Desc.ObjectIDs {
			if oid == figureID {
				out = append(out, e.ID)
				break
			}
		}
	}
	return out
}

// rebuildComponents discards the component partition and rebuilds it from
// scratch: one singleton component per live figure, then merged per the
// object ids of every live requirement — the same recomputation addFigure
// would have produced had every figure and requirement been added in
// current order, used after any removal that can only shrink components.
func (m *Manager) rebuildComponents() {
	m.comps.Clear()
	for _, e := range m.store.AllEntries() {
		c := m.comps.CreateComponent()
		m.comps.AddFigureToComponent(e.ID, c)
	}
	for _, e := range m.reg.All() {
		m.comps.MergeComponents(e.Desc.ObjectIDs)
	}
}

// UpdatePoint mutates a live point's coordinates, leaving whichever field is
// unset unchanged. In DRAG mode, a resettle of the point's component is
// triggered automatically.
func (m *Manager) UpdatePoint(id ids.ID, x, y *float64) error {
	p, err := m.store.GetPoint(id)
	if err != nil {
		return wrap(err)
	}
	if x != nil {
		p.X = *x
	}
	if y != nil {
		p.Y = *y
	}
	if m.mode == solve.Drag {
		if compID, ok := m.comps.ComponentOf(id); ok {
			m.solveComponent(compID)
		}
	}
	return nil
}

// UpdateCircle mutates a live circle's radius, with the same DRAG-mode
// auto-resettle as UpdatePoint.
func (m *Manager) UpdateCircle(id ids.ID, radius float64) error {
	c, err := m.store.GetCircle(id)
	if err != nil {
		return wrap(err)
	}
	c.R = radius
	if m.mode == solve.Drag {
		if compID, ok := m.comps.ComponentOf(id); ok {
			m.solveComponent(compID)
		}
	}
	return nil
}

// GetFigure reconstructs the descriptor of a live figure, with Coords (and
// Radius, for a circle) refreshed from the store's current scalars.
func (m *Manager) GetFigure(id ids.ID) (FigureDescriptor, error) {
	stored, ok := m.figureRecords[id]
	if !ok {
		return FigureDescriptor{}, &Error{Kind: NotFound, Err: chk.Err("figure %d not found", id)}
	}

	switch stored.Kind {
	case PointFigure:
		p, err := m.store.GetPoint(id)
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		stored.Coords = []float64{p.X, p.Y}

	case LineFigure:
		p1, err := m.store.GetPoint(stored.PointIDs[0])
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		p2, err := m.store.GetPoint(stored.PointIDs[1])
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		stored.Coords = []float64{p1.X, p1.Y, p2.X, p2.Y}

	case CircleFigure:
		center, err := m.store.GetPoint(stored.PointIDs[0])
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		circ, err := m.store.GetCircle(id)
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		stored.Coords = []float64{center.X, center.Y}
		stored.Radius = circ.R
		stored.HasRadius = true

	case ArcFigure:
		p1, err := m.store.GetPoint(stored.PointIDs[0])
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		p2, err := m.store.GetPoint(stored.PointIDs[1])
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		center, err := m.store.GetPoint(stored.PointIDs[2])
		if err != nil {
			return FigureDescriptor{}, wrap(err)
		}
		stored.Coords = []float64{p1.X, p1.Y, p2.X, p2.Y, center.X, center.Y}
	}

	return stored, nil
}

// HasFigure reports whether id names a live, recorded figure.
func (m *Manager) HasFigure(id ids.ID) bool {
	_, ok := m.figureRecords[id]
	return ok
}

// GetAllFigures returns every live figure's round-tripped descriptor. Order
// is unspecified, matching the source's unordered map iteration.
func (m *Manager) GetAllFigures() []FigureDescriptor {
	out := make([]FigureDescriptor, 0, len(m.figureRecords))
	for id := range m.figureRecords {
		desc, err := m.GetFigure(id)
		if err == nil {
			out = append(out, desc)
		}
	}
	return out
}

// AddRequirement validates and registers a constraint, merging the
// components of every figure it names.
func (m *Manager) AddRequirement(desc RequirementDescriptor) (ids.ID, error) {
	id, err := m.reg.Add(desc.toRegistry())
	if err != nil {
		return ids.Unset, wrap(err)
	}
	m.comps.MergeComponents(desc.ObjectIDs)
	return id, nil
}

// RemoveRequirement drops a constraint and rebuilds both the function
// system (inside the registry) and the component partition, since removing
// a requirement can only ever shrink a component, never grow one.
func (m *Manager) RemoveRequirement(id ids.ID) error {
	if err := m.reg.Remove(id); err != nil {
		return wrap(err)
	}
	m.rebuildComponents()
	return nil
}

// UpdateRequirementParam changes a constraint's driving parameter.
func (m *Manager) UpdateRequirementParam(id ids.ID, value float64) error {
	if err := m.reg.UpdateParam(id, value); err != nil {
		return wrap(err)
	}
	return nil
}

// GetRequirement returns the descriptor registered under id.
func (m *Manager) GetRequirement(id ids.ID) (RequirementDescriptor, error) {
	d, err := m.reg.Get(id)
	if err != nil {
		return RequirementDescriptor{}, wrap(err)
	}
	return fromRegistry(d), nil
}

// HasRequirement reports whether id names a live constraint.
func (m *Manager) HasRequirement(id ids.ID) bool { return m.reg.Has(id) }

// GetAllRequirements returns every live constraint's descriptor, in
// insertion order.
func (m *Manager) GetAllRequirements() []RequirementDescriptor {
	entries := m.reg.All()
	out := make([]RequirementDescriptor, 0, len(entries))
	for _, e := range entries {
		out = append(out, fromRegistry(e.Desc))
	}
	return out
}

// GetComponentCount returns the number of non-empty components.
func (m *Manager) GetComponentCount() int { return m.comps.Count() }

// GetComponentForFigure returns the component a live figure belongs to.
func (m *Manager) GetComponentForFigure(figureID ids.ID) (component.ID, bool) {
	return m.comps.ComponentOf(figureID)
}

// GetFiguresInComponent returns the figure ids in a component.
func (m *Manager) GetFiguresInComponent(compID component.ID) []ids.ID {
	return m.comps.FiguresInComponent(compID)
}

// GetRequirementsInComponent returns every requirement that names at least
// one figure in the given component.
func (m *Manager) GetRequirementsInComponent(compID component.ID) []ids.ID {
	figs := m.comps.FiguresInComponent(compID)
	if len(figs) == 0 {
		return nil
	}
	inComp := make(map[ids.ID]bool, len(figs))
	for _, f := range figs {
		inComp[f] = true
	}
	var out []ids.ID
	for _, e := range m.reg.All() {
		for _, oid := range e.Desc.ObjectIDs {
			if inComp[oid] {
				out = append(out, e.ID)
				break
			}
		}
	}
	return out
}

// GetAllComponents returns every non-empty component's figure set.
func (m *Manager) GetAllComponents() [][]ids.ID { return m.comps.AllComponents() }

// SetSolveMode changes which requirement set Solve operates over.
func (m *Manager) SetSolveMode(mode solve.Mode) { m.mode = mode }

// GetSolveMode returns the current solve mode.
func (m *Manager) GetSolveMode() solve.Mode { return m.mode }

// Solve drives the current mode's solver over the appropriate requirement
// set: GLOBAL solves every live requirement; LOCAL requires a component id
// and solves only that component's subsystem; DRAG solves the given
// component's subsystem if one is supplied, or falls back to the full
// system otherwise. It reports convergence as a plain bool — divergence is
// advisory, never an error — except for the one hard failure, ModeMismatch,
// when LOCAL is requested with no component id.
func (m *Manager) Solve(compID *component.ID) (bool, error) {
	if len(m.reg.All()) == 0 {
		return true, nil
	}

	var sys *system.FunctionSystem
	switch m.mode {
	case solve.Global:
		sys = m.reg.System()

	case solve.Local:
		if compID == nil {
			return false, &Error{Kind: ModeMismatch, Err: chk.Err("LOCAL mode requires a component id")}
		}
		var err error
		sys, err = m.reg.Subsystem(m.GetRequirementsInComponent(*compID))
		if err != nil {
			return false, wrap(err)
		}

	case solve.Drag:
		if compID != nil {
			var err error
			sys, err = m.reg.Subsystem(m.GetRequirementsInComponent(*compID))
			if err != nil {
				return false, wrap(err)
			}
		} else {
			sys = m.reg.System()
		}

	default:
		return false, &Error{Kind: ModeMismatch, Err: chk.Err("unknown solve mode %q", m.mode)}
	}

	if len(sys.Functions()) == 0 || len(sys.Vars()) == 0 {
		return true, nil
	}

	solver := solve.New(m.mode, m.cfg)
	return solver.Solve(sys), nil
}

// solveComponent is the DRAG-mode auto-resettle triggered by UpdatePoint/
// UpdateCircle; its convergence result is advisory and deliberately
// discarded, matching the source, which does not surface it to the caller
// of updatePoint/updateCircle.
func (m *Manager) solveComponent(compID component.ID) {
	_, _ = m.Solve(&compID)
}

// Clear drops every figure, requirement, and component, resetting the
// manager to its initial empty state.
func (m *Manager) Clear() {
	m.reg.Clear()
	m.store.Clear()
	m.comps.Clear()
	m.figureRecords = make(map[ids.ID]FigureDescriptor)
}
