// Package mockdata is the built-in lead, KPI and outreach source used when no
// database is configured.
package mockdata

import (
	"context"
	"slices"

	"github.com/xavierca1/sales-command/internal/entity"
)

func Leads() []entity.Lead {
	return []entity.Lead{
		{
			ID:              1,
			Name:            "John Smith",
			Title:           "VP of Sales",
			Company:         "TechCorp Inc",
			Owner:           entity.Owner{Name: "Sarah Johnson", Avatar: "SJ"},
			SDRAgent:        "Agent A",
			OutreachSummary: entity.OutreachSummary{Sent: 3, Queued: 1, Errors: 0},
			LastOutreach:    entity.Touchpoint{Channel: entity.ChannelEmail, Date: "2024-01-15"},
			NextOutreach:    entity.Touchpoint{Channel: entity.ChannelLinkedIn, Date: "2024-01-20"},
			Status:          entity.StatusInProgress,
		},
		{
			ID:              2,
			Name:            "Emily Davis",
			Title:           "Marketing Director",
			Company:         "GrowthLabs",
			Owner:           entity.Owner{Name: "Mike Chen", Avatar: "MC"},
			SDRAgent:        "Agent B",
			OutreachSummary: entity.OutreachSummary{Sent: 5, Queued: 0, Errors: 1},
			LastOutreach:    entity.Touchpoint{Channel: entity.ChannelEmail, Date: "2024-01-14"},
			NextOutreach:    entity.Touchpoint{Channel: entity.ChannelPhone, Date: "2024-01-19"},
			Status:          entity.StatusNeedsReview,
		},
		{
			ID:              3,
			Name:            "Robert Wilson",
			Title:           "CTO",
			Company:         "InnovateTech",
			Owner:           entity.Owner{Name: "Lisa Park", Avatar: "LP"},
			SDRAgent:        "Agent C",
			OutreachSummary: entity.OutreachSummary{Sent: 2, Queued: 2, Errors: 0},
			LastOutreach:    entity.Touchpoint{Channel: entity.ChannelLinkedIn, Date: "2024-01-13"},
			NextOutreach:    entity.Touchpoint{Channel: entity.ChannelEmail, Date: "2024-01-18"},
			Status:          entity.StatusFirstTouchScheduled,
		},
		{
			ID:              4,
			Name:            "Amanda Thompson",
			Title:           "Head of Operations",
			Company:         "ScaleUp Solutions",
			Owner:           entity.Owner{Name: "David Kim", Avatar: "DK"},
			SDRAgent:        "Agent A",
			OutreachSummary: entity.OutreachSummary{Sent: 4, Queued: 0, Errors: 0},
			LastOutreach:    entity.Touchpoint{Channel: entity.ChannelPhone, Date: "2024-01-12"},
			NextOutreach:    entity.Touchpoint{Channel: entity.ChannelEmail, Date: "2024-01-22"},
			Status:          entity.StatusMeetingBooked,
		},
	}
}

// Repository serves leads, KPI sections and outreach history from memory.
type Repository struct {
	leads []entity.Lead
}

func NewRepository() *Repository {
	return &Repository{leads: Leads()}
}

func NewRepositoryWith(leads []entity.Lead) *Repository {
	return &Repository{leads: slices.Clone(leads)}
}

func (r *Repository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.leads), nil
}
