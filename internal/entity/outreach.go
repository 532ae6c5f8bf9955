package entity

import "context"

type OutreachStatus string

const (
	OutreachSent      OutreachStatus = "sent"
	OutreachQueued    OutreachStatus = "queued"
	OutreachScheduled OutreachStatus = "scheduled"
	OutreachError     OutreachStatus = "error"
	OutreachPaused    OutreachStatus = "paused"
)

const (
	ApprovalAuto    = "auto-approved"
	ApprovalPending = "pending"
)

type OutreachEvent struct {
	ID        int            `json:"id"`
	Channel   Channel        `json:"channel"`
	Status    OutreachStatus `json:"status"`
	Timestamp string         `json:"timestamp"`
	Template  string         `json:"template"`
	Approval  string         `json:"approval"`
	Subject   string         `json:"subject"`
	Upcoming  bool           `json:"upcoming"`
}

func (e OutreachEvent) AutoApproved() bool {
	return e.Approval == ApprovalAuto
}

// SplitOutreach keeps the history order inside each group.
func SplitOutreach(history []OutreachEvent) (upcoming, completed []OutreachEvent) {
	for _, e := range history {
		if e.Upcoming {
			upcoming = append(upcoming, e)
		} else {
			completed = append(completed, e)
		}
	}
	return upcoming, completed
}

type OutreachHistoryProvider interface {
	HistoryFor(ctx context.Context, id LeadID) ([]OutreachEvent, error)
}
