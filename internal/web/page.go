// Package web serves the dashboard page. The element IDs in the template
// (dashboard-root, total-balance, day-change, holdings-table,
// refresh-button) are a stable contract relied on by the browser smoke
// tests; renaming them breaks the page's automated checks.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"foliodash/internal/portfolio"
)

//go:embed templates/dashboard.html.tmpl
var templatesFS embed.FS

// ViewSource provides the current render model.
type ViewSource interface {
	View() portfolio.View
}

// Handler renders the dashboard page from the current valuation.
type Handler struct {
	svc  ViewSource
	tmpl *template.Template
}

// NewHandler parses the embedded template and binds it to the view source.
func NewHandler(svc ViewSource) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/dashboard.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	return &Handler{svc: svc, tmpl: tmpl}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, h.svc.View()); err != nil {
		slog.Error("dashboard render failed", "error", err)
	}
}
