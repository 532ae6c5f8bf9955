package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/sales-command/internal/web"
)

type PagesHandler struct {
	renderer *web.Renderer
	port     int
	logger   *zap.Logger
}

func NewPagesHandler(renderer *web.Renderer, port int, logger *zap.Logger) *PagesHandler {
	return &PagesHandler{renderer: renderer, port: port, logger: logger}
}

func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, h.logger, "home", web.HomePage{Port: h.port})
}

func (h *PagesHandler) Button(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, h.logger, "button", web.ButtonDemo())
}
