// Package web renders the portal's HTML pages from embedded templates.
package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/eduportal/eduportal-go/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the data every template receives. Flash messages are
// one-shot: the handler pops them off the session before rendering.
type PageData struct {
	Student         *model.StudentResponse
	SuccessMessages []string
	ErrorMessages   []string
}

// Renderer executes named page templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named page. Template failures after the header is
// written can only be logged.
func (r *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
	}
}
