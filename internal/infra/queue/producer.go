package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	EventLeadActivated  = "lead.activated"
	EventKPISelected    = "kpi.selected"
	EventPresetSelected = "preset.selected"
)

type DashboardEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	SessionID  string    `json:"session_id"`
	LeadID     int       `json:"lead_id,omitempty"`
	Value      string    `json:"value,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event DashboardEvent) error
}

// channelPublisher is the part of *amqp.Channel the producer needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch channelPublisher
}

func NewProducer(ch channelPublisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) Publish(ctx context.Context, event DashboardEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Type:         event.Type,
			Timestamp:    event.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s to rabbitmq: %w", event.Type, err)
	}

	return nil
}

// LogPublisher writes events to the log when no broker is configured.
type LogPublisher struct {
	Logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event DashboardEvent) error {
	p.Logger.Info("dashboard event",
		zap.String("event_id", event.ID),
		zap.String("type", event.Type),
		zap.String("session_id", event.SessionID),
		zap.Int("lead_id", event.LeadID),
		zap.String("value", event.Value),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
