package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/infra/queue"
)

func newEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Consume dashboard events from RabbitMQ and log them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.AMQPURL == "" {
				return fmt.Errorf("AMQP_URL is not set")
			}

			rmq, err := queue.NewRabbitMQ(a.cfg.AMQPURL)
			if err != nil {
				return err
			}
			defer rmq.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := queue.NewWorker(rmq.Ch, queue.LoggingHandler{Logger: a.logger}, a.logger)
			a.logger.Info("consuming dashboard events", zap.String("queue", queue.QueueName))
			return w.Start(ctx, queue.QueueName)
		},
	}
}
