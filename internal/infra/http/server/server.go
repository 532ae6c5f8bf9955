// Package server wires the chi router and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/infra/http/handlers"
	"github.com/xavierca1/sales-command/internal/infra/http/middleware"
	"github.com/xavierca1/sales-command/internal/session"
	"github.com/xavierca1/sales-command/internal/usecase"
	"github.com/xavierca1/sales-command/internal/web"
)

const shutdownTimeout = 10 * time.Second

type Deps struct {
	Dashboard      *usecase.DashboardUseCase
	Sessions       *session.Store
	Renderer       *web.Renderer
	Health         *handlers.HealthHandler
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	Port           int
	Logger         *zap.Logger
}

func NewRouter(d Deps) http.Handler {
	dashboard := handlers.NewDashboardHandler(d.Dashboard, d.Renderer, d.Logger)
	api := handlers.NewLeadAPIHandler(d.Dashboard, d.Logger)
	pages := handlers.NewPagesHandler(d.Renderer, d.Port, d.Logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)

	r.Get("/health", d.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	r.Get("/", pages.Home)
	r.Get("/button", pages.Button)

	// The limiter and CORS answer before a session exists, so rejected
	// writes and preflights never reach the session factory.
	sessions := middleware.Sessions(d.Sessions, d.Logger)

	r.Group(func(r chi.Router) {
		r.Use(d.RateLimiter.LimitWrites)

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(sessions)
			r.Get("/", dashboard.Show)
			r.Post("/sort", dashboard.Sort)
			r.Post("/selection", dashboard.SelectAll)
			r.Post("/rows/{id}/selection", dashboard.SelectRow)
			r.Post("/leads/{id}/open", dashboard.OpenLead)
			r.Post("/panel/close", dashboard.ClosePanel)
			r.Post("/panel/{group}/toggle", dashboard.TogglePanelGroup)
			r.Post("/filters/{key}/toggle", dashboard.ToggleFilter)
			r.Post("/filters/{key}/select", dashboard.SelectFilter)
			r.Post("/presets", dashboard.SelectPreset)
			r.Post("/kpis", dashboard.SelectKPI)
		})

		r.Route("/api/v1", func(r chi.Router) {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   d.AllowedOrigins,
				AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
				AllowCredentials: true,
				MaxAge:           300,
			}))
			r.Use(sessions)
			r.Get("/leads", api.List)
			r.Post("/leads/sort", api.Sort)
			r.Post("/leads/selection", api.SelectAll)
			r.Post("/leads/{id}/selection", api.SelectRow)
			r.Get("/leads/{id}", api.Detail)
		})
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
