package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/sales-command/internal/entity"
)

const findAllLeadsQuery = `
	SELECT
		id, name, title, company,
		owner_name, owner_avatar, sdr_agent,
		sent_count, queued_count, error_count,
		last_outreach_channel, last_outreach_date,
		next_outreach_channel, next_outreach_date,
		status
	FROM leads
	ORDER BY id
`

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, findAllLeadsQuery)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}

	return leads, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(s scanner) (entity.Lead, error) {
	var (
		l                        entity.Lead
		lastChannel, nextChannel string
		status                   string
	)

	err := s.Scan(
		&l.ID, &l.Name, &l.Title, &l.Company,
		&l.Owner.Name, &l.Owner.Avatar, &l.SDRAgent,
		&l.OutreachSummary.Sent, &l.OutreachSummary.Queued, &l.OutreachSummary.Errors,
		&lastChannel, &l.LastOutreach.Date,
		&nextChannel, &l.NextOutreach.Date,
		&status,
	)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("scan lead: %w", err)
	}

	l.LastOutreach.Channel = entity.Channel(lastChannel)
	l.NextOutreach.Channel = entity.Channel(nextChannel)
	l.Status = entity.LeadStatus(status)

	if err := l.Validate(); err != nil {
		return entity.Lead{}, err
	}
	return l, nil
}
