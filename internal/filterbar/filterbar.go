// Package filterbar keeps the quick-filter chips and dropdown choices shown
// above the lead table. It only records what the user picked; rows are never
// filtered by it.
package filterbar

import (
	"slices"
	"strings"
	"unicode"
)

type QuickFilter struct {
	Key     string
	Variant string
	Active  bool
}

// Label turns "needs_review" into "Needs Review".
func (q QuickFilter) Label() string {
	return Humanize(q.Key)
}

type Dropdown struct {
	Key     string
	Label   string
	Icon    string
	Options []string
	Value   string
}

type FilterBar struct {
	quick     []QuickFilter
	dropdowns []Dropdown
}

var Presets = []string{"All Data", "High Priority", "Recent Activity", "Stalled Leads", "Ready to Contact"}

func New() *FilterBar {
	return &FilterBar{
		quick: []QuickFilter{
			{Key: "errors", Variant: "error"},
			{Key: "needs_review", Variant: "warning", Active: true},
			{Key: "overdue", Variant: "warning"},
		},
		dropdowns: []Dropdown{
			{Key: "owner", Label: "Owner", Options: []string{"All Owners", "Sarah Johnson", "Mike Chen", "Lisa Park", "David Kim"}},
			{Key: "channel", Label: "Channel", Options: []string{"All Channels", "Email", "LinkedIn", "Phone", "Direct Mail"}},
			{Key: "campaign", Label: "Campaign", Options: []string{"All Campaigns", "Q1 Enterprise", "SMB Outreach", "Product Launch", "Re-engagement"}},
			{Key: "agent", Label: "Agent Config", Options: []string{"All Agents", "Agent A", "Agent B", "Agent C"}},
			{Key: "date_range", Label: "Date Range", Icon: "calendar", Options: []string{"Last 7 Days", "Last 30 Days", "Last 90 Days", "This Quarter", "Custom Range"}, Value: "Last 30 Days"},
		},
	}
}

// Toggle flips a quick filter. Unknown keys are ignored.
func (f *FilterBar) Toggle(key string) {
	for i := range f.quick {
		if f.quick[i].Key == key {
			f.quick[i].Active = !f.quick[i].Active
			return
		}
	}
}

// Select sets a dropdown to one of its listed options and reports whether
// anything changed.
func (f *FilterBar) Select(key, value string) bool {
	for i := range f.dropdowns {
		d := &f.dropdowns[i]
		if d.Key != key {
			continue
		}
		if !slices.Contains(d.Options, value) || d.current() == value {
			return false
		}
		d.Value = value
		return true
	}
	return false
}

func (f *FilterBar) QuickFilters() []QuickFilter {
	return slices.Clone(f.quick)
}

// Dropdowns returns copies with Value always populated.
func (f *FilterBar) Dropdowns() []Dropdown {
	out := make([]Dropdown, len(f.dropdowns))
	for i, d := range f.dropdowns {
		d.Value = d.current()
		d.Options = slices.Clone(d.Options)
		out[i] = d
	}
	return out
}

func (f *FilterBar) Value(key string) (string, bool) {
	for _, d := range f.dropdowns {
		if d.Key == key {
			return d.current(), true
		}
	}
	return "", false
}

func (f *FilterBar) ActiveLabels() []string {
	var labels []string
	for _, q := range f.quick {
		if q.Active {
			labels = append(labels, q.Label())
		}
	}
	return labels
}

func (f *FilterBar) AnyActive() bool {
	return slices.ContainsFunc(f.quick, func(q QuickFilter) bool { return q.Active })
}

func IsPreset(value string) bool {
	return slices.Contains(Presets, value)
}

func (d Dropdown) current() string {
	if d.Value == "" {
		return d.Options[0]
	}
	return d.Value
}

// Humanize accepts snake_case or camelCase keys.
func Humanize(key string) string {
	var b strings.Builder
	upperNext := true
	for i, r := range key {
		switch {
		case r == '_' || r == '-':
			b.WriteRune(' ')
			upperNext = true
			continue
		case unicode.IsUpper(r) && i > 0:
			b.WriteRune(' ')
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
