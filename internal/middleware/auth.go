package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/eduportal/eduportal-go/internal/session"
)

// unexported, collision-proof context key
type sessionContextKeyType struct{}

var sessionKey = sessionContextKeyType{}

// SessionFromContext extracts the resolved session from context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

// EmailFromContext extracts the authenticated identity from context.
func EmailFromContext(ctx context.Context) (string, bool) {
	s, ok := SessionFromContext(ctx)
	if !ok || !s.Authenticated() {
		return "", false
	}
	return s.Email, true
}

// Gate is the single authentication check composed in front of
// protected routes. Page routes fail with a flash message and a
// redirect to /login; JSON routes fail with 401.
type Gate struct {
	sessions *session.Manager
}

func NewGate(sessions *session.Manager) *Gate {
	return &Gate{sessions: sessions}
}

// RequirePage gates a page route. Unauthenticated requests are
// redirected to the login page; the wrapped handler is never invoked.
func (g *Gate) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := g.sessions.Resolve(r.Context(), r)
		if err != nil {
			slog.Error("session resolve failed", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if !s.Authenticated() {
			g.redirectToLogin(w, r, s)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

// RequireJSON gates a JSON route with a 401 instead of a redirect.
func (g *Gate) RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := g.sessions.Resolve(r.Context(), r)
		if err != nil {
			slog.Error("session resolve failed", "error", err)
			writeGateError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		if !s.Authenticated() {
			writeGateError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

func (g *Gate) redirectToLogin(w http.ResponseWriter, r *http.Request, s *session.Session) {
	ctx := r.Context()

	// Queue the flash on an anonymous session so the login page can
	// surface it after the redirect.
	if s == nil {
		var err error
		s, err = g.sessions.Create(ctx, w, "")
		if err != nil {
			slog.Error("anonymous session create failed", "error", err)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
	}

	s.AddFlash(session.FlashError, "You must log in first to access this page.")
	if err := g.sessions.Save(ctx, s); err != nil {
		slog.Error("session save failed", "error", err)
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func withSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

func writeGateError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": msg})
}
