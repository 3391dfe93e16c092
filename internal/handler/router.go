package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/eduportal/eduportal-go/internal/config"
	"github.com/eduportal/eduportal-go/internal/middleware"
)

// NewRouter builds the portal's route table. Protected routes are
// composed behind the shared gate; credential endpoints carry the
// per-IP rate limiter.
func NewRouter(
	cfg config.Config,
	auth *AuthHandler,
	profile *ProfileHandler,
	pages *PageHandler,
	gate *middleware.Gate,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowCredentials: true,
	}))

	r.Get("/", pages.HandleIndex)
	r.Get("/login", pages.HandleLoginPage)
	r.Get("/signup", pages.HandleSignupPage)
	r.Get("/courses", pages.HandleCourses)
	r.Get("/courses-detail", pages.HandleCourseDetail)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/login", auth.HandleLogin)
		r.Post("/signup", auth.HandleSignup)
	})

	r.Post("/logout", auth.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(gate.RequirePage)
		r.Get("/profile", profile.HandleProfilePage)
		r.Get("/profile-picture", profile.HandlePicture)
		r.Get("/message", pages.HandleMessage)
	})

	r.Group(func(r chi.Router) {
		r.Use(gate.RequireJSON)
		r.Post("/upload-profile-picture", profile.HandleUploadPicture)
	})

	return r
}
