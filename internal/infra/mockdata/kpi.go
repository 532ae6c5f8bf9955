package mockdata

import (
	"context"

	"github.com/xavierca1/sales-command/internal/entity"
)

func KPISections() []entity.KPISection {
	return []entity.KPISection{
		{
			Title:   "Not Started",
			Variant: entity.VariantInfo,
			Cards: []entity.KPICard{
				{Title: "Records Assigned", Count: 45, Leads: 35, Variant: entity.VariantInfo, Tooltip: "Total outreach records assigned vs unique leads"},
				{Title: "First Touch Scheduled", Count: 23, Leads: 18, Variant: entity.VariantInfo, Tooltip: "Outreach scheduled for first contact"},
				{Title: "Queue Backlog", Count: 12, Leads: 12, Variant: entity.VariantWarning, Tooltip: "Outreach waiting to be sent"},
				{Title: "Needs Review", Count: 8, Leads: 7, Variant: entity.VariantWarning, Tooltip: "Outreach requiring manual review"},
			},
		},
		{
			Title:   "In Progress",
			Variant: entity.VariantDefault,
			Cards: []entity.KPICard{
				{Title: "Sent", Count: 156, Leads: 89, Tooltip: "Outreach successfully sent"},
				{Title: "Waiting Reply", Count: 67, Leads: 52, Tooltip: "Outreach sent, waiting for response"},
				{Title: "Paused", Count: 15, Leads: 12, Variant: entity.VariantWarning, Tooltip: "Outreach temporarily paused"},
			},
		},
		{
			Title:   "Completed",
			Variant: entity.VariantDefault,
			Cards: []entity.KPICard{
				{Title: "Meeting Booked", Count: 34, Leads: 28, Variant: entity.VariantSuccess, Tooltip: "Successful outreach - meetings scheduled"},
				{Title: "No Response", Count: 78, Leads: 65, Tooltip: "Outreach completed without response"},
				{Title: "Opted Out", Count: 12, Leads: 12, Tooltip: "Leads who opted out of outreach"},
				{Title: "Errors", Count: 9, Leads: 8, Variant: entity.VariantWarning, Tooltip: "Outreach failed due to errors"},
			},
		},
	}
}

func (r *Repository) Sections(ctx context.Context) ([]entity.KPISection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return KPISections(), nil
}
