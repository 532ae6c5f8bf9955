package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/infra/database"
	"github.com/xavierca1/sales-command/internal/infra/http/handlers"
	"github.com/xavierca1/sales-command/internal/infra/http/middleware"
	"github.com/xavierca1/sales-command/internal/infra/http/server"
	"github.com/xavierca1/sales-command/internal/infra/mockdata"
	"github.com/xavierca1/sales-command/internal/infra/queue"
	"github.com/xavierca1/sales-command/internal/infra/worker"
	"github.com/xavierca1/sales-command/internal/session"
	"github.com/xavierca1/sales-command/internal/usecase"
	"github.com/xavierca1/sales-command/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg, log := a.cfg, a.logger

	// 1. Lead source
	db, err := openDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	mock := mockdata.NewRepository()
	leads := leadSource(db, mock)

	// 2. Event bus
	rmq, events, err := openEventBus(cfg.AMQPURL, log)
	if err != nil {
		return err
	}
	if rmq != nil {
		defer rmq.Close()
	}

	// 3. Use case and sessions
	dashboard := usecase.NewDashboardUseCase(leads, mock, mock, events, cfg.DefaultSort, log)
	sessions := session.NewStore(cfg.SessionTTL, dashboard.NewSessionState)
	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	middleware.RegisterSessionGauge(sessions)

	// 4. Sweeper
	sweeper := worker.NewSweepWorker(cfg.SweepInterval, log,
		worker.Target{Name: "sessions", Sweepable: sessions},
		worker.Target{Name: "rate_limiter", Sweepable: limiter},
	)
	go sweeper.Start(ctx)

	// 5. Router
	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	var (
		pinger handlers.Pinger
		broker handlers.Closer
	)
	if db != nil {
		pinger = db
	}
	if rmq != nil {
		broker = rmq
	}

	router := server.NewRouter(server.Deps{
		Dashboard:      dashboard,
		Sessions:       sessions,
		Renderer:       renderer,
		Health:         handlers.NewHealthHandler(pinger, broker),
		RateLimiter:    limiter,
		AllowedOrigins: cfg.AllowedOrigins,
		Port:           cfg.Port,
		Logger:         log,
	})

	log.Info("sales command center starting",
		zap.String("env", cfg.Env),
		zap.Int("port", cfg.Port),
		zap.Bool("database", db != nil),
		zap.Bool("rabbitmq", rmq != nil),
	)
	return server.Run(ctx, cfg.Addr(), router, log)
}

// openDatabase returns nil when no URL is configured.
func openDatabase(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		return nil, nil
	}
	db, err := database.NewDBConnection(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func leadSource(db *sql.DB, fallback entity.LeadRepositoryInterface) entity.LeadRepositoryInterface {
	if db == nil {
		return fallback
	}
	return database.NewLeadRepository(db)
}

// openEventBus falls back to logging events when no broker is configured.
func openEventBus(url string, log *zap.Logger) (*queue.RabbitMQ, queue.EventPublisher, error) {
	if url == "" {
		return nil, queue.NewLogPublisher(log), nil
	}
	rmq, err := queue.NewRabbitMQ(url)
	if err != nil {
		return nil, nil, err
	}
	return rmq, queue.NewProducer(rmq.Ch), nil
}
