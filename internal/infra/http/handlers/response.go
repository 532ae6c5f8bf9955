package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/infra/http/middleware"
	"github.com/xavierca1/sales-command/internal/session"
	"github.com/xavierca1/sales-command/internal/usecase"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps use case errors onto HTTP. Technical details stay in the log.
func statusFor(err error) (int, ErrorResponse) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		if de.Code == usecase.CodeLeadNotFound {
			return http.StatusNotFound, ErrorResponse{Code: de.Code, Message: de.Message}
		}
		return http.StatusBadRequest, ErrorResponse{Code: de.Code, Message: de.Message}
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		return http.StatusInternalServerError, ErrorResponse{Code: te.Code, Message: te.Message}
	}
	return http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL", Message: "internal error"}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("code", body.Code), zap.Error(err))
	}
	writeJSON(w, status, body)
}

// writeHTMLError answers a form post or page load with plain text.
func writeHTMLError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status, body := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("code", body.Code), zap.Error(err))
	}
	http.Error(w, body.Message, status)
}

func sessionOf(r *http.Request) (*session.Session, error) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		return nil, &usecase.TechnicalError{Code: "SESSION_MISSING", Message: "no session on request"}
	}
	return sess, nil
}

func invalidRequest(msg string) error {
	return &usecase.DomainError{Code: usecase.CodeInvalidRequest, Message: msg}
}
