package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Closer is satisfied by *queue.RabbitMQ.
type Closer interface {
	IsClosed() bool
}

type HealthHandler struct {
	DB        Pinger
	RabbitMQ  Closer
	StartTime time.Time
	now       func() time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    string            `json:"timestamp"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler accepts nil dependencies; they are reported as not configured.
func NewHealthHandler(db Pinger, rabbitMQ Closer) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		RabbitMQ:  rabbitMQ,
		StartTime: time.Now(),
		now:       time.Now,
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	status := StatusOK
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = StatusDegraded
			break
		}
	}

	now := h.now()
	response := HealthResponse{
		Status:       status,
		Timestamp:    now.UTC().Format(time.RFC3339),
		Uptime:       now.Sub(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	code := http.StatusOK
	if status == StatusDegraded {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, response)
}
