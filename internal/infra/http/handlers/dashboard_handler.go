package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/entity"
	"github.com/xavierca1/sales-command/internal/infra/http/middleware"
	"github.com/xavierca1/sales-command/internal/session"
	"github.com/xavierca1/sales-command/internal/usecase"
	"github.com/xavierca1/sales-command/internal/web"
)

const dashboardPath = "/dashboard"

// DashboardHandler serves the server-rendered dashboard. Every action is a
// form post answered with a redirect back to the page.
type DashboardHandler struct {
	uc       *usecase.DashboardUseCase
	renderer *web.Renderer
	logger   *zap.Logger
}

func NewDashboardHandler(uc *usecase.DashboardUseCase, renderer *web.Renderer, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, renderer: renderer, logger: logger}
}

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeHTMLError(w, h.logger, err)
		return
	}

	view, err := h.uc.BuildDashboard(r.Context(), sess)
	if err != nil {
		writeHTMLError(w, h.logger, err)
		return
	}
	renderHTML(w, h.renderer, h.logger, "dashboard", view)
}

func (h *DashboardHandler) Sort(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		field, err := h.uc.SetSort(sess, r.FormValue("field"))
		if err != nil {
			return err
		}
		middleware.RecordSortChange(string(field))
		return nil
	})
}

func (h *DashboardHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		checked, err := strconv.ParseBool(r.FormValue("checked"))
		if err != nil {
			return invalidRequest("checked must be true or false")
		}
		h.uc.ToggleSelectAll(sess, checked)
		middleware.RecordSelectionChange("all")
		return nil
	})
}

func (h *DashboardHandler) SelectRow(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		id, err := leadIDParam(r)
		if err != nil {
			return err
		}
		checked, err := strconv.ParseBool(r.FormValue("checked"))
		if err != nil {
			return invalidRequest("checked must be true or false")
		}
		h.uc.ToggleRowSelection(sess, id, checked)
		middleware.RecordSelectionChange("row")
		return nil
	})
}

func (h *DashboardHandler) OpenLead(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		id, err := leadIDParam(r)
		if err != nil {
			return err
		}
		if err := h.uc.ActivateLead(r.Context(), sess, id); err != nil {
			return err
		}
		middleware.RecordLeadActivation()
		return nil
	})
}

func (h *DashboardHandler) ClosePanel(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		h.uc.ClosePanel(sess)
		return nil
	})
}

func (h *DashboardHandler) TogglePanelGroup(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		group := session.PanelGroup(chi.URLParam(r, "group"))
		if group != session.GroupUpcoming && group != session.GroupCompleted {
			return invalidRequest("unknown panel group " + strconv.Quote(string(group)))
		}
		h.uc.TogglePanelGroup(sess, group)
		return nil
	})
}

func (h *DashboardHandler) ToggleFilter(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		h.uc.ToggleFilter(sess, chi.URLParam(r, "key"))
		return nil
	})
}

func (h *DashboardHandler) SelectFilter(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		key, value := chi.URLParam(r, "key"), r.FormValue("value")
		if !h.uc.SelectDropdown(sess, key, value) {
			h.logger.Debug("dropdown unchanged", zap.String("key", key), zap.String("value", value))
		}
		return nil
	})
}

func (h *DashboardHandler) SelectPreset(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		return h.uc.SelectPreset(r.Context(), sess, r.FormValue("value"))
	})
}

func (h *DashboardHandler) SelectKPI(w http.ResponseWriter, r *http.Request) {
	h.action(w, r, func(sess *session.Session) error {
		return h.uc.SelectKPI(r.Context(), sess, r.FormValue("title"))
	})
}

func (h *DashboardHandler) action(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	sess, err := sessionOf(r)
	if err != nil {
		writeHTMLError(w, h.logger, err)
		return
	}
	if err := fn(sess); err != nil {
		writeHTMLError(w, h.logger, err)
		return
	}
	http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
}

func leadIDParam(r *http.Request) (entity.LeadID, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidRequest("invalid lead id " + strconv.Quote(raw))
	}
	return entity.LeadID(id), nil
}

func renderHTML(w http.ResponseWriter, renderer *web.Renderer, logger *zap.Logger, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, data); err != nil {
		writeHTMLError(w, logger, &usecase.TechnicalError{Code: usecase.CodeRenderFailed, Message: "render page", Err: err})
	}
}
