package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/ebalci/pazaryeri/internal/session"
)

// PagesHandler serves the static-ish pages that carry no form logic.
type PagesHandler struct {
	sessions  *session.Manager
	templates *template.Template
	logger    *slog.Logger
}

func NewPagesHandler(sessions *session.Manager, logger *slog.Logger) *PagesHandler {
	return &PagesHandler{
		sessions:  sessions,
		templates: parseTemplates(),
		logger:    logger,
	}
}

func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	render(w, h.templates, "dashboard.html", pageData{
		Title:   "Dashboard",
		Session: h.sessions.Check(r),
		Flash:   popFlash(w, r),
	}, h.logger)
}

// NotFound answers any path the route table does not know. The root
// path itself never lands here; the guard redirects it first.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}
