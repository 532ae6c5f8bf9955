package usecase

import (
	"strconv"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/filterbar"
	"github.com/xavierca1/sales-command/internal/leadtable"
)

type NavItem struct {
	Name    string
	Icon    string
	Current bool
}

type SidebarSection struct {
	Title   string
	Name    string
	Options []string
}

type FilterBarView struct {
	QuickFilters []filterbar.QuickFilter
	Dropdowns    []filterbar.Dropdown
	Presets      []string
	ActiveLabels []string
}

type RowView struct {
	Lead     entity.Lead
	Selected bool
	Striped  bool
}

type TableView struct {
	Rows          []RowView
	SortField     leadtable.SortField
	SortDirection leadtable.Direction
	SelectedCount int
	Total         int
	AllSelected   bool
}

// Caption is the text next to the table title.
func (t TableView) Caption() string {
	if t.SelectedCount > 0 {
		return strconv.Itoa(t.SelectedCount) + " selected"
	}
	return strconv.Itoa(t.Total) + " total leads"
}

func (t TableView) Footer() string {
	if t.Total == 0 {
		return "Showing 0 results"
	}
	return "Showing 1 to " + strconv.Itoa(t.Total) + " of " + strconv.Itoa(t.Total) + " results"
}

type PanelView struct {
	Lead          entity.Lead
	Upcoming      []entity.OutreachEvent
	Completed     []entity.OutreachEvent
	ShowUpcoming  bool
	ShowCompleted bool
	Overlap       string
}

type DashboardView struct {
	Navigation []NavItem
	Sidebar    []SidebarSection
	Filters    FilterBarView
	KPIs       []entity.KPISection
	Table      TableView
	Panel      *PanelView
}

type SortStateDTO struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type LeadListOutput struct {
	Sort     SortStateDTO    `json:"sort"`
	Selected []entity.LeadID `json:"selected"`
	Total    int             `json:"total"`
	Leads    []entity.Lead   `json:"leads"`
}

type LeadDetailOutput struct {
	Lead     entity.Lead            `json:"lead"`
	Selected bool                   `json:"selected"`
	Outreach []entity.OutreachEvent `json:"outreach"`
}
