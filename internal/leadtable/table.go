// Package leadtable holds the sort and selection state behind the lead table
// and derives the order rows are painted in.
//
// A Table is not safe for concurrent use. Callers that share one between
// goroutines serialise access themselves (see the session package).
package leadtable

import (
	"iter"
	"slices"

	"github.com/xavierca1/sales-command/internal/entity"
)

type Table struct {
	leads    []entity.Lead
	index    map[entity.LeadID]int
	selected map[entity.LeadID]struct{}
	field    SortField
	dir      Direction
}

type Option func(*Table)

func WithInitialSort(field SortField) Option {
	return func(t *Table) {
		t.field = field
		t.dir = Ascending
	}
}

// New copies leads; the caller's slice is never touched afterwards.
// Duplicate ids keep the first occurrence for lookups.
func New(leads []entity.Lead, opts ...Option) *Table {
	t := &Table{
		leads:    slices.Clone(leads),
		index:    make(map[entity.LeadID]int, len(leads)),
		selected: make(map[entity.LeadID]struct{}),
		dir:      Ascending,
	}
	for i, l := range t.leads {
		if _, dup := t.index[l.ID]; !dup {
			t.index[l.ID] = i
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetSort flips the direction when field is already active, otherwise it
// switches to field ascending.
func (t *Table) SetSort(field SortField) {
	if t.field == field {
		if t.dir == Ascending {
			t.dir = Descending
		} else {
			t.dir = Ascending
		}
		return
	}
	t.field = field
	t.dir = Ascending
}

// ToggleSelectAll replaces the selection with every known id, or clears it.
func (t *Table) ToggleSelectAll(checked bool) {
	clear(t.selected)
	if !checked {
		return
	}
	for id := range t.index {
		t.selected[id] = struct{}{}
	}
}

// ToggleRowSelection ignores ids that are not part of the table.
func (t *Table) ToggleRowSelection(id entity.LeadID, checked bool) {
	if _, known := t.index[id]; !known {
		return
	}
	if checked {
		t.selected[id] = struct{}{}
	} else {
		delete(t.selected, id)
	}
}

// DeriveOrder captures the current sort and returns a sequence that sorts a
// fresh copy of the leads each time it is ranged over. Equal keys keep their
// source order in both directions.
func (t *Table) DeriveOrder() iter.Seq[entity.Lead] {
	compare := compareFor(t.field, t.dir)
	leads := t.leads
	return func(yield func(entity.Lead) bool) {
		ordered := slices.Clone(leads)
		slices.SortStableFunc(ordered, compare)
		for _, l := range ordered {
			if !yield(l) {
				return
			}
		}
	}
}

func (t *Table) Sort() (SortField, Direction) {
	return t.field, t.dir
}

func (t *Table) Lead(id entity.LeadID) (entity.Lead, bool) {
	i, ok := t.index[id]
	if !ok {
		return entity.Lead{}, false
	}
	return t.leads[i], true
}

func (t *Table) IsSelected(id entity.LeadID) bool {
	_, ok := t.selected[id]
	return ok
}

// Selected returns the selected ids in ascending order.
func (t *Table) Selected() []entity.LeadID {
	ids := make([]entity.LeadID, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (t *Table) SelectedCount() int {
	return len(t.selected)
}

// AllSelected drives the header checkbox.
func (t *Table) AllSelected() bool {
	return len(t.index) > 0 && len(t.selected) == len(t.index)
}

func (t *Table) Len() int {
	return len(t.leads)
}
