package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/eduportal/eduportal-go/internal/middleware"
	"github.com/eduportal/eduportal-go/internal/service"
	"github.com/eduportal/eduportal-go/internal/session"
	"github.com/eduportal/eduportal-go/internal/web"
)

// ProfileHandler handles the profile page and profile picture routes.
type ProfileHandler struct {
	auth     *service.AuthService
	profile  *service.ProfileService
	sessions *session.Manager
	render   *web.Renderer

	pictureContentType string
	maxUploadBytes     int64
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(
	auth *service.AuthService,
	profile *service.ProfileService,
	sessions *session.Manager,
	render *web.Renderer,
	pictureContentType string,
	maxUploadBytes int64,
) *ProfileHandler {
	return &ProfileHandler{
		auth:               auth,
		profile:            profile,
		sessions:           sessions,
		render:             render,
		pictureContentType: pictureContentType,
		maxUploadBytes:     maxUploadBytes,
	}
}

// HandleProfilePage handles GET /profile requests (gated).
func (h *ProfileHandler) HandleProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email, ok := middleware.EmailFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	student, err := h.auth.Profile(ctx, email)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			// Stale session: the account is gone, so the session goes too.
			if err := h.sessions.Destroy(ctx, w, r); err != nil {
				slog.Error("session destroy failed", "error", err)
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		slog.Error("profile lookup failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := web.PageData{Student: &student}
	if s, ok := middleware.SessionFromContext(ctx); ok {
		data.SuccessMessages, data.ErrorMessages = popFlashes(ctx, h.sessions, s)
	}

	h.render.Render(w, "profile.html", data)
}

// HandleUploadPicture handles POST /upload-profile-picture requests
// (gated, JSON). The stored blob is replaced entirely.
func (h *ProfileHandler) HandleUploadPicture(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failure("User not authenticated"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, _, err := r.FormFile("profile_picture")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failure("No image uploaded"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, failure("No image uploaded"))
		return
	}

	if err := h.profile.UploadPicture(r.Context(), email, data); err != nil {
		if errors.Is(err, service.ErrNoImage) {
			writeJSON(w, http.StatusBadRequest, failure("No image uploaded"))
			return
		}
		slog.Error("picture upload failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, failure("Server error"))
		return
	}

	writeJSON(w, http.StatusOK, success("Profile picture updated successfully"))
}

// HandlePicture handles GET /profile-picture requests (gated). The
// content type is configuration, not sniffed from the stored bytes.
func (h *ProfileHandler) HandlePicture(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, failure("User not authenticated"))
		return
	}

	data, err := h.profile.GetPicture(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrPictureNotFound) {
			writeJSON(w, http.StatusNotFound, failure("Image not found"))
			return
		}
		slog.Error("picture fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, failure("Server error"))
		return
	}

	w.Header().Set("Content-Type", h.pictureContentType)
	w.Write(data)
}
