package leadtable_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/infra/mockdata"
	"github.com/xavierca1/sales-command/internal/leadtable"
)

func names(t *leadtable.Table) []string {
	var out []string
	for l := range t.DeriveOrder() {
		out = append(out, l.Name)
	}
	return out
}

func ids(t *leadtable.Table) []entity.LeadID {
	var out []entity.LeadID
	for l := range t.DeriveOrder() {
		out = append(out, l.ID)
	}
	return out
}

// ============ ORDERING ============

// TestDeriveOrderKeepsEveryLead - every field yields each id exactly once
func TestDeriveOrderKeepsEveryLead(t *testing.T) {
	fields := append(leadtable.Fields(), leadtable.SortNone, leadtable.SortField("shoe_size"))

	for _, f := range fields {
		for _, desc := range []bool{false, true} {
			table := leadtable.New(mockdata.Leads())
			table.SetSort(f)
			if desc {
				table.SetSort(f)
			}

			got := ids(table)
			slices.Sort(got)
			assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, got, "field %q desc=%v", f, desc)
		}
	}
}

// TestSortByNameAscending - case-insensitive lexical order on the sample leads
func TestSortByNameAscending(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.SetSort(leadtable.SortByName)

	assert.Equal(t, []string{"Amanda Thompson", "Emily Davis", "John Smith", "Robert Wilson"}, names(table))
}

func TestSortByNameDescending(t *testing.T) {
	table := leadtable.New(mockdata.Leads(), leadtable.WithInitialSort(leadtable.SortByName))
	table.SetSort(leadtable.SortByName)

	assert.Equal(t, []string{"Robert Wilson", "John Smith", "Emily Davis", "Amanda Thompson"}, names(table))
}

func TestSortIgnoresCase(t *testing.T) {
	leads := []entity.Lead{
		{ID: 1, Company: "beta"},
		{ID: 2, Company: "Alpha"},
		{ID: 3, Company: "gamma"},
	}
	table := leadtable.New(leads)
	table.SetSort(leadtable.SortByCompany)

	assert.Equal(t, []entity.LeadID{2, 1, 3}, ids(table))
}

func TestSortByNestedFields(t *testing.T) {
	table := leadtable.New(mockdata.Leads())

	table.SetSort(leadtable.SortByOwner)
	assert.Equal(t, []entity.LeadID{4, 3, 2, 1}, ids(table))

	table.SetSort(leadtable.SortByNextTouch)
	assert.Equal(t, []entity.LeadID{3, 2, 1, 4}, ids(table))
}

// TestUnknownFieldKeepsSourceOrder - unrecognised fields compare as equal
func TestUnknownFieldKeepsSourceOrder(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.SetSort(leadtable.SortField("favourite_colour"))

	assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, ids(table))

	table.SetSort(leadtable.SortField("favourite_colour"))
	assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, ids(table))
}

// TestEqualKeysStableInBothDirections - ties keep source order asc and desc
func TestEqualKeysStableInBothDirections(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.SetSort(leadtable.SortByAgent)
	assert.Equal(t, []entity.LeadID{1, 4, 2, 3}, ids(table))

	table.SetSort(leadtable.SortByAgent)
	assert.Equal(t, []entity.LeadID{3, 2, 1, 4}, ids(table))
}

func TestDeriveOrderDoesNotMutateSource(t *testing.T) {
	source := mockdata.Leads()
	table := leadtable.New(source)
	table.SetSort(leadtable.SortByName)
	_ = names(table)

	assert.Equal(t, mockdata.Leads(), source)

	table.SetSort(leadtable.SortNone)
	assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, ids(table))
}

// TestDeriveOrderIsRestartable - ranging twice yields the same sequence
func TestDeriveOrderIsRestartable(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.SetSort(leadtable.SortByTitle)
	seq := table.DeriveOrder()

	var first, second []entity.LeadID
	for l := range seq {
		first = append(first, l.ID)
	}
	for l := range seq {
		second = append(second, l.ID)
	}
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestDeriveOrderCapturesSortAtCall(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.SetSort(leadtable.SortByName)
	seq := table.DeriveOrder()

	table.SetSort(leadtable.SortByName)

	var got []string
	for l := range seq {
		got = append(got, l.Name)
	}
	assert.Equal(t, "Amanda Thompson", got[0])
}

func TestDeriveOrderStopsEarly(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	count := 0
	for range table.DeriveOrder() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

// ============ SORT STATE ============

// TestSetSortSameFieldFlipsDirection - asc, desc, asc
func TestSetSortSameFieldFlipsDirection(t *testing.T) {
	table := leadtable.New(mockdata.Leads())

	field, dir := table.Sort()
	assert.Equal(t, leadtable.SortNone, field)
	assert.Equal(t, leadtable.Ascending, dir)

	table.SetSort(leadtable.SortByName)
	_, dir = table.Sort()
	assert.Equal(t, leadtable.Ascending, dir)

	table.SetSort(leadtable.SortByName)
	_, dir = table.Sort()
	assert.Equal(t, leadtable.Descending, dir)

	table.SetSort(leadtable.SortByName)
	_, dir = table.Sort()
	assert.Equal(t, leadtable.Ascending, dir)
}

func TestSetSortNewFieldResetsToAscending(t *testing.T) {
	table := leadtable.New(mockdata.Leads(), leadtable.WithInitialSort(leadtable.SortByName))
	table.SetSort(leadtable.SortByName)

	table.SetSort(leadtable.SortByCompany)
	field, dir := table.Sort()
	assert.Equal(t, leadtable.SortByCompany, field)
	assert.Equal(t, leadtable.Ascending, dir)
}

func TestParseSortField(t *testing.T) {
	f, ok := leadtable.ParseSortField(" Name ")
	assert.True(t, ok)
	assert.Equal(t, leadtable.SortByName, f)

	_, ok = leadtable.ParseSortField("owner.name")
	assert.False(t, ok)

	_, ok = leadtable.ParseSortField("")
	assert.False(t, ok)
}

// ============ SELECTION ============

func TestToggleSelectAllThenNone(t *testing.T) {
	table := leadtable.New(mockdata.Leads())

	table.ToggleSelectAll(true)
	assert.Equal(t, 4, table.SelectedCount())
	assert.True(t, table.AllSelected())

	table.ToggleSelectAll(false)
	assert.Empty(t, table.Selected())
	assert.False(t, table.AllSelected())
}

func TestToggleSelectAllIsIdempotent(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.ToggleSelectAll(true)
	table.ToggleSelectAll(true)
	assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, table.Selected())

	table.ToggleSelectAll(false)
	table.ToggleSelectAll(false)
	assert.Empty(t, table.Selected())
}

// TestSelectAllReplacesPartialSelection - full replace, not union
func TestSelectAllReplacesPartialSelection(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.ToggleRowSelection(1, true)
	table.ToggleRowSelection(3, true)
	require.Equal(t, []entity.LeadID{1, 3}, table.Selected())

	table.ToggleSelectAll(true)
	assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, table.Selected())
}

// TestToggleUnknownRowIsNoop - ids outside the table are never inserted
func TestToggleUnknownRowIsNoop(t *testing.T) {
	table := leadtable.New(mockdata.Leads())
	table.ToggleRowSelection(2, true)

	table.ToggleRowSelection(99, true)
	assert.Equal(t, []entity.LeadID{2}, table.Selected())
	assert.False(t, table.IsSelected(99))

	table.ToggleRowSelection(99, false)
	assert.Equal(t, []entity.LeadID{2}, table.Selected())
}

func TestToggleRowSelection(t *testing.T) {
	table := leadtable.New(mockdata.Leads())

	table.ToggleRowSelection(4, true)
	table.ToggleRowSelection(4, true)
	assert.Equal(t, []entity.LeadID{4}, table.Selected())
	assert.True(t, table.IsSelected(4))

	table.ToggleRowSelection(4, false)
	table.ToggleRowSelection(4, false)
	assert.Empty(t, table.Selected())
}

func TestAllSelectedOnEmptyTable(t *testing.T) {
	table := leadtable.New(nil)
	table.ToggleSelectAll(true)

	assert.False(t, table.AllSelected())
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, names(table))
}

func TestLeadLookup(t *testing.T) {
	table := leadtable.New(mockdata.Leads())

	l, ok := table.Lead(3)
	require.True(t, ok)
	assert.Equal(t, "Robert Wilson", l.Name)

	_, ok = table.Lead(0)
	assert.False(t, ok)
}
