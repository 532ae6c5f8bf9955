package mockdata

import (
	"context"

	"github.com/xavierca1/sales-command/internal/entity"
)

// OutreachHistory is the same timeline for every lead.
func OutreachHistory() []entity.OutreachEvent {
	return []entity.OutreachEvent{
		{
			ID:        1,
			Channel:   entity.ChannelEmail,
			Status:    entity.OutreachSent,
			Timestamp: "2024-01-15 09:30",
			Template:  "Initial Outreach - Q1 Enterprise",
			Approval:  entity.ApprovalAuto,
			Subject:   "Quick question about your sales tech stack",
		},
		{
			ID:        2,
			Channel:   entity.ChannelLinkedIn,
			Status:    entity.OutreachSent,
			Timestamp: "2024-01-13 14:15",
			Template:  "LinkedIn Connection Request",
			Approval:  entity.ApprovalAuto,
			Subject:   "Connection request with personalized message",
		},
		{
			ID:        3,
			Channel:   entity.ChannelEmail,
			Status:    entity.OutreachQueued,
			Timestamp: "2024-01-20 10:00",
			Template:  "Follow-up - Day 5",
			Approval:  entity.ApprovalPending,
			Subject:   "Following up on my previous email",
			Upcoming:  true,
		},
		{
			ID:        4,
			Channel:   entity.ChannelPhone,
			Status:    entity.OutreachScheduled,
			Timestamp: "2024-01-22 15:00",
			Template:  "Phone Call - Sequence Step 3",
			Approval:  entity.ApprovalAuto,
			Subject:   "Outbound call attempt",
			Upcoming:  true,
		},
	}
}

func (r *Repository) HistoryFor(ctx context.Context, _ entity.LeadID) ([]entity.OutreachEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return OutreachHistory(), nil
}
