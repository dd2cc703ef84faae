// Package component tracks the partition of live figures into connected
// components: which figures share at least one requirement (directly or
// transitively), via merge-on-add for additions and full-rebuild-on-removal
// for everything that can shrink a component.
package component

import "github.com/ourpaintteam/dcm/ids"

// ID identifies one component slot. Unlike ids.ID, component identifiers are
// plain array indices starting at 0: CreateComponent hands them out in
// increasing order and never reuses an emptied slot, but Clear restarts the
// numbering at 0, so an ID is only meaningful until the next Clear.
type ID int

// Tracker owns the figure <-> component partition for one geometry store.
// It has no knowledge of figures or requirements; callers (the dcm facade)
// drive CreateComponent/AddFigureToComponent/MergeComponents/
// RemoveFigureFromComponent from whatever figure and requirement state they
// hold.
type Tracker struct {
	components   []map[ids.ID]bool // index is ID; an emptied slot is left as an empty map, never removed
	figureToComp map[ids.ID]ID
	nextID       ID
	activeCount  int
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{figureToComp: make(map[ids.ID]ID)}
}

// CreateComponent allocates a new, empty component slot and returns its id.
func (t *Tracker) CreateComponent() ID {
	id := t.nextID
	t.nextID++
	if int(id) >= len(t.components) {
		t.components = append(t.components, make(map[ids.ID]bool))
	}
	t.activeCount++
	return id
}

// AddFigureToComponent places figureID into component compID, growing the
// component slab if compID was not already allocated via CreateComponent.
func (t *Tracker) AddFigureToComponent(figureID ids.ID, compID ID) {
	for int(compID) >= len(t.components) {
		t.components = append(t.components, make(map[ids.ID]bool))
	}
	t.components[compID][figureID] = true
	t.figureToComp[figureID] = compID
}

// RemoveFigureFromComponent detaches figureID from its component. If that
// was the component's last member, the active component count drops; the
// slot itself is left in place (possibly reused later by CreateComponent
// only in the sense that rebuilds start over from a cleared tracker).
func (t *Tracker) RemoveFigureFromComponent(figureID ids.ID) {
	compID, ok := t.figureToComp[figureID]
	if !ok {
		return
	}
	delete(t.components[compID], figureID)
	if len(t.components[compID]) == 0 {
		t.activeCount--
	}
	delete(t.figureToComp, figureID)
}

// MergeComponents merges every distinct component referenced by figureIDs
// into one. A descriptor naming figures from three different components
// costs two merges; naming figures from none or one component is a no-op.
func (t *Tracker) MergeComponents(figureIDs []ids.ID) {
	if len(figureIDs) == 0 {
		return
	}

	seen := make(map[ID]bool)
	var toMerge []ID
	for _, fid := range figureIDs {
		if compID, ok := t.figureToComp[fid]; ok && !seen[compID] {
			seen[compID] = true
			toMerge = append(toMerge, compID)
		}
	}
	if len(toMerge) <= 1 {
		return
	}

	target := toMerge[0]
	for _, src := range toMerge[1:] {
		for fid := range t.components[src] {
			t.components[target][fid] = true
			t.figureToComp[fid] = target
		}
		t.components[src] = make(map[ids.ID]bool)
		t.activeCount--
	}
}

// ComponentOf reports the component a live figure belongs to.
func (t *Tracker) ComponentOf(figureID ids.ID) (ID, bool) {
	compID, ok := t.figureToComp[figureID]
	return compID, ok
}

// FiguresInComponent returns the figure identifiers in compID, in no
// particular order, or nil if compID is out of range or empty.
func (t *Tracker) FiguresInComponent(compID ID) []ids.ID {
	if int(compID) < 0 || int(compID) >= len(t.components) {
		return nil
	}
	set := t.components[compID]
	if len(set) == 0 {
		return nil
	}
	out := make([]ids.ID, 0, len(set))
	for fid := range set {
		out = append(out, fid)
	}
	return out
}

// AllComponents returns every non-empty component's figure set.
func (t *Tracker) AllComponents() [][]ids.ID {
	out := make([][]ids.ID, 0, t.activeCount)
	for _, set := range t.components {
		if len(set) == 0 {
			continue
		}
		fids := make([]ids.ID, 0, len(set))
		for fid := range set {
			fids = append(fids, fid)
		}
		out = append(out, fids)
	}
	return out
}

// Count returns the number of currently non-empty components.
func (t *Tracker) Count() int { return t.activeCount }

// Clear drops every component and figure assignment, resetting id
// allocation to zero. Full-rebuild callers (dcm.Manager's rebuildComponents)
// use this to start a rebuild from scratch.
func (t *Tracker) Clear() {
	t.components = nil
	t.figureToComp = make(map[ids.ID]ID)
	t.nextID = 0
	t.activeCount = 0
}
