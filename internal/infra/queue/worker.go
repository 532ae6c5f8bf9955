package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type EventHandler interface {
	Handle(ctx context.Context, event DashboardEvent) error
}

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel consumer
	Handler EventHandler
	Logger  *zap.Logger
}

func NewWorker(ch consumer, handler EventHandler, logger *zap.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Handler: handler,
		Logger:  logger,
	}
}

// Start consumes queueName until ctx is cancelled or the delivery channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer on %s: %w", queueName, err)
	}

	w.Logger.Info("worker waiting for events", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var event DashboardEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		w.Logger.Warn("dropping malformed event", zap.Error(err))
		// No requeue: a bad body would loop forever. It lands in the DLQ.
		d.Nack(false, false)
		return
	}

	if err := w.Handler.Handle(ctx, event); err != nil {
		w.Logger.Error("event handler failed",
			zap.String("type", event.Type),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		d.Nack(false, false)
		return
	}

	d.Ack(false)
}

// LoggingHandler records each event it receives.
type LoggingHandler struct {
	Logger *zap.Logger
}

func (h LoggingHandler) Handle(_ context.Context, event DashboardEvent) error {
	h.Logger.Info("dashboard event received",
		zap.String("type", event.Type),
		zap.String("session_id", event.SessionID),
		zap.Int("lead_id", event.LeadID),
		zap.String("value", event.Value),
	)
	return nil
}
