package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eduportal/eduportal-go/internal/model"
	"github.com/eduportal/eduportal-go/internal/service"
	"github.com/eduportal/eduportal-go/internal/session"
)

// AuthHandler handles login, signup and logout.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{service: svc, sessions: sessions}
}

// HandleLogin handles POST /login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failure("Invalid request body"))
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, failure("Invalid request body"))
			return
		}
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}

	student, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, failure("Please enter both email and password"))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, failure("Invalid email or password"))
		default:
			slog.Error("login failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, failure("Server error"))
		}
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, student.Email); err != nil {
		slog.Error("session create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, failure("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, success("Login successful"))
}

// HandleSignup handles POST /signup requests. A successful signup
// logs the student in.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignupRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, failure("Invalid request body"))
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, failure("Invalid request body"))
			return
		}
		req.Name = r.PostFormValue("name")
		req.Email = r.PostFormValue("email")
		req.Password = r.PostFormValue("password")
	}

	student, err := h.service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, failure("Please provide all required fields"))
		case errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, failure("Email already registered"))
		default:
			slog.Error("signup failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, failure("Server error"))
		}
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, student.Email); err != nil {
		slog.Error("session create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, failure("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, success("Signup successful"))
}

// HandleLogout handles POST /logout requests: the session is destroyed
// server-side and the cookie cleared.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.Destroy(ctx, w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}

	// Fresh anonymous session carries the confirmation flash.
	if s, err := h.sessions.Create(ctx, w, ""); err == nil {
		s.AddFlash(session.FlashSuccess, "You have been logged out.")
		if err := h.sessions.Save(ctx, s); err != nil {
			slog.Error("session save failed", "error", err)
		}
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}
