package leadtable

import (
	"cmp"
	"strings"

	"github.com/xavierca1/sales-command/internal/entity"
)

// SortField names a sortable column. SortNone keeps source order.
type SortField string

const (
	SortNone        SortField = ""
	SortByID        SortField = "id"
	SortByName      SortField = "name"
	SortByTitle     SortField = "title"
	SortByCompany   SortField = "company"
	SortByOwner     SortField = "owner"
	SortByAgent     SortField = "sdr_agent"
	SortByStatus    SortField = "status"
	SortByLastTouch SortField = "last_outreach"
	SortByNextTouch SortField = "next_outreach"
)

// Direction is the order of the active sort field.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type comparator func(a, b entity.Lead) int

var comparators = map[SortField]comparator{
	SortByID:        func(a, b entity.Lead) int { return cmp.Compare(a.ID, b.ID) },
	SortByName:      byString(func(l entity.Lead) string { return l.Name }),
	SortByTitle:     byString(func(l entity.Lead) string { return l.Title }),
	SortByCompany:   byString(func(l entity.Lead) string { return l.Company }),
	SortByOwner:     byString(func(l entity.Lead) string { return l.Owner.Name }),
	SortByAgent:     byString(func(l entity.Lead) string { return l.SDRAgent }),
	SortByStatus:    byString(func(l entity.Lead) string { return string(l.Status) }),
	SortByLastTouch: byString(func(l entity.Lead) string { return l.LastOutreach.Date }),
	SortByNextTouch: byString(func(l entity.Lead) string { return l.NextOutreach.Date }),
}

// Fields lists the sortable fields in column order.
func Fields() []SortField {
	return []SortField{
		SortByID, SortByName, SortByTitle, SortByCompany, SortByOwner,
		SortByAgent, SortByStatus, SortByLastTouch, SortByNextTouch,
	}
}

// ParseSortField normalizes s and reports whether it names a sortable field.
func ParseSortField(s string) (SortField, bool) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	_, ok := comparators[f]
	return f, ok
}

func byString(key func(entity.Lead) string) comparator {
	return func(a, b entity.Lead) int {
		return strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
	}
}

// compareFor never returns nil; unknown fields compare every pair as equal.
func compareFor(field SortField, dir Direction) comparator {
	c, ok := comparators[field]
	if !ok {
		return func(entity.Lead, entity.Lead) int { return 0 }
	}
	if dir == Descending {
		return func(a, b entity.Lead) int { return c(b, a) }
	}
	return c
}
