package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/infra/mockdata"
	"github.com/xavierca1/sales-command/internal/leadtable"
)

func order(t *leadtable.Table) []entity.LeadID {
	var ids []entity.LeadID
	for l := range t.DeriveOrder() {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestBuildTableReplaysFlags(t *testing.T) {
	tbl, err := buildTable(mockdata.Leads(), leadsOptions{sort: "name", desc: true, selectIDs: []int{1, 3, 99}})
	require.NoError(t, err)

	field, dir := tbl.Sort()
	assert.Equal(t, leadtable.SortByName, field)
	assert.Equal(t, leadtable.Descending, dir)
	assert.Equal(t, []entity.LeadID{3, 1, 2, 4}, order(tbl))
	assert.Equal(t, []entity.LeadID{1, 3}, tbl.Selected())
}

func TestBuildTableWithoutSortKeepsSourceOrder(t *testing.T) {
	tbl, err := buildTable(mockdata.Leads(), leadsOptions{})
	require.NoError(t, err)

	assert.Equal(t, []entity.LeadID{1, 2, 3, 4}, order(tbl))
}

func TestBuildTableRejectsBadFlags(t *testing.T) {
	_, err := buildTable(mockdata.Leads(), leadsOptions{sort: "revenue"})
	assert.ErrorContains(t, err, "unknown sort field")

	_, err = buildTable(mockdata.Leads(), leadsOptions{desc: true})
	assert.Error(t, err)
}

func TestRenderLeadTable(t *testing.T) {
	tbl, err := buildTable(mockdata.Leads(), leadsOptions{sort: "company", selectIDs: []int{2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderLeadTable(&buf, tbl))

	out := buf.String()
	assert.Contains(t, out, "LEAD NAME")
	assert.Contains(t, out, "1 selected of 4, sorted by company asc")
	assert.Less(t, strings.Index(out, "GrowthLabs"), strings.Index(out, "TechCorp Inc"))
}

func TestLeadsCommand(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AMQP_URL", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"leads", "--sort", "name", "--config", "missing.yaml"})

	require.NoError(t, root.Execute())
	assert.Less(t, strings.Index(out.String(), "Amanda Thompson"), strings.Index(out.String(), "Robert Wilson"))
	assert.Contains(t, out.String(), "4 total leads, sorted by name asc")
}

func TestEventsCommandNeedsBroker(t *testing.T) {
	t.Setenv("AMQP_URL", "")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"events", "--config", "missing.yaml"})

	assert.ErrorContains(t, root.Execute(), "AMQP_URL")
}
