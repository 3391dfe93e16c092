package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/eduportal/eduportal-go/internal/middleware"
	"github.com/eduportal/eduportal-go/internal/session"
	"github.com/eduportal/eduportal-go/internal/web"
)

// PageHandler serves the portal's rendered pages.
type PageHandler struct {
	sessions *session.Manager
	render   *web.Renderer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(sessions *session.Manager, render *web.Renderer) *PageHandler {
	return &PageHandler{sessions: sessions, render: render}
}

// HandleIndex handles GET / requests.
func (h *PageHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderWithFlashes(w, r, "index.html")
}

// HandleLoginPage handles GET /login requests.
func (h *PageHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderWithFlashes(w, r, "login.html")
}

// HandleSignupPage handles GET /signup requests.
func (h *PageHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderWithFlashes(w, r, "signup.html")
}

// HandleCourses handles GET /courses requests.
func (h *PageHandler) HandleCourses(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "courses.html", web.PageData{})
}

// HandleCourseDetail handles GET /courses-detail requests.
func (h *PageHandler) HandleCourseDetail(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "course_detail.html", web.PageData{})
}

// HandleMessage handles GET /message requests (gated).
func (h *PageHandler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := web.PageData{}
	if s, ok := middleware.SessionFromContext(ctx); ok {
		data.SuccessMessages, data.ErrorMessages = popFlashes(ctx, h.sessions, s)
	}

	h.render.Render(w, "message.html", data)
}

func (h *PageHandler) renderWithFlashes(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()

	data := web.PageData{}
	s, err := h.sessions.Resolve(ctx, r)
	if err != nil {
		slog.Error("session resolve failed", "error", err)
	}
	if s != nil {
		data.SuccessMessages, data.ErrorMessages = popFlashes(ctx, h.sessions, s)
	}

	h.render.Render(w, name, data)
}

// popFlashes drains the session's flash queue and persists the
// now-empty queue, so each message renders exactly once.
func popFlashes(ctx context.Context, sessions *session.Manager, s *session.Session) (successes, errs []string) {
	flashes := s.TakeFlashes()
	if len(flashes) == 0 {
		return nil, nil
	}
	if err := sessions.Save(ctx, s); err != nil {
		slog.Error("session save failed", "error", err)
	}
	return flashes[session.FlashSuccess], flashes[session.FlashError]
}
