package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/infra/http/middleware"
	"github.com/xavierca1/sales-command/internal/usecase"
)

type SortRequest struct {
	Field string `json:"field"`
}

type SelectionRequest struct {
	Checked bool `json:"checked"`
}

// LeadAPIHandler exposes the same session state as the dashboard as JSON.
type LeadAPIHandler struct {
	uc     *usecase.DashboardUseCase
	logger *zap.Logger
}

func NewLeadAPIHandler(uc *usecase.DashboardUseCase, logger *zap.Logger) *LeadAPIHandler {
	return &LeadAPIHandler{uc: uc, logger: logger}
}

func (h *LeadAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, h.uc.ListLeads(sess))
}

func (h *LeadAPIHandler) Sort(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, invalidRequest("invalid JSON"))
		return
	}

	field, err := h.uc.SetSort(sess, req.Field)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	middleware.RecordSortChange(string(field))
	writeJSON(w, http.StatusOK, h.uc.ListLeads(sess))
}

func (h *LeadAPIHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, invalidRequest("invalid JSON"))
		return
	}

	h.uc.ToggleSelectAll(sess, req.Checked)
	middleware.RecordSelectionChange("all")
	writeJSON(w, http.StatusOK, h.uc.ListLeads(sess))
}

// SelectRow answers 200 even for ids outside the collection; the selection
// simply stays as it was.
func (h *LeadAPIHandler) SelectRow(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	id, err := leadIDParam(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, invalidRequest("invalid JSON"))
		return
	}

	h.uc.ToggleRowSelection(sess, id, req.Checked)
	middleware.RecordSelectionChange("row")
	writeJSON(w, http.StatusOK, h.uc.ListLeads(sess))
}

func (h *LeadAPIHandler) Detail(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	id, err := leadIDParam(r)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out, err := h.uc.LeadDetail(r.Context(), sess, id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
