package entity

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidLead = errors.New("invalid lead")

type LeadID int

type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelPhone    Channel = "phone"
	ChannelLinkedIn Channel = "linkedin"
)

func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelPhone, ChannelLinkedIn:
		return true
	}
	return false
}

type LeadStatus string

const (
	StatusInProgress          LeadStatus = "In Progress"
	StatusNeedsReview         LeadStatus = "Needs Review"
	StatusFirstTouchScheduled LeadStatus = "First Touch Scheduled"
	StatusMeetingBooked       LeadStatus = "Meeting Booked"
	StatusNoResponse          LeadStatus = "No Response"
	StatusOptedOut            LeadStatus = "Opted Out"
	StatusError               LeadStatus = "Error"
)

var leadStatuses = []LeadStatus{
	StatusInProgress,
	StatusNeedsReview,
	StatusFirstTouchScheduled,
	StatusMeetingBooked,
	StatusNoResponse,
	StatusOptedOut,
	StatusError,
}

// ParseLeadStatus accepts the display label exactly as stored.
func ParseLeadStatus(s string) (LeadStatus, error) {
	for _, st := range leadStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidLead, s)
}

type Owner struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type OutreachSummary struct {
	Sent   int `json:"sent"`
	Queued int `json:"queued"`
	Errors int `json:"errors"`
}

type Touchpoint struct {
	Channel Channel `json:"channel"`
	Date    string  `json:"date"`
}

type Lead struct {
	ID              LeadID          `json:"id"`
	Name            string          `json:"name"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Owner           Owner           `json:"owner"`
	SDRAgent        string          `json:"sdr_agent"`
	OutreachSummary OutreachSummary `json:"outreach_summary"`
	LastOutreach    Touchpoint      `json:"last_outreach"`
	NextOutreach    Touchpoint      `json:"next_outreach"`
	Status          LeadStatus      `json:"status"`
}

// Validate is applied to leads read from external sources.
func (l Lead) Validate() error {
	s := l.OutreachSummary
	if s.Sent < 0 || s.Queued < 0 || s.Errors < 0 {
		return fmt.Errorf("%w: lead %d has negative outreach counts", ErrInvalidLead, l.ID)
	}
	if !l.LastOutreach.Channel.Valid() {
		return fmt.Errorf("%w: lead %d last outreach channel %q", ErrInvalidLead, l.ID, l.LastOutreach.Channel)
	}
	if !l.NextOutreach.Channel.Valid() {
		return fmt.Errorf("%w: lead %d next outreach channel %q", ErrInvalidLead, l.ID, l.NextOutreach.Channel)
	}
	if _, err := ParseLeadStatus(string(l.Status)); err != nil {
		return err
	}
	return nil
}

type LeadRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Lead, error)
}
