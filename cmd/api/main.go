package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/eduportal/eduportal-go/internal/config"
	"github.com/eduportal/eduportal-go/internal/handler"
	"github.com/eduportal/eduportal-go/internal/middleware"
	"github.com/eduportal/eduportal-go/internal/repository"
	"github.com/eduportal/eduportal-go/internal/service"
	"github.com/eduportal/eduportal-go/internal/session"
	"github.com/eduportal/eduportal-go/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	studentRepo := repository.NewStudentRepository(db)
	authService := service.NewAuthService(studentRepo)
	profileService := service.NewProfileService(studentRepo)

	sessionStore := newSessionStore(cfg)
	sessions := session.NewManager(sessionStore, cfg.SessionTTL, cfg.SessionIdleTTL, session.CookieOptions{
		HttpOnly: true,
	})
	gate := middleware.NewGate(sessions)

	render, err := web.NewRenderer()
	if err != nil {
		slog.Error("template setup failed", "error", err)
		os.Exit(1)
	}

	authHandler := handler.NewAuthHandler(authService, sessions)
	profileHandler := handler.NewProfileHandler(
		authService, profileService, sessions, render,
		cfg.PictureContentType, cfg.MaxUploadBytes,
	)
	pageHandler := handler.NewPageHandler(sessions, render)

	router := handler.NewRouter(cfg, authHandler, profileHandler, pageHandler, gate)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newSessionStore selects the session backend: Redis when configured,
// otherwise the process-local store.
func newSessionStore(cfg config.Config) session.Store {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("redis ping failed — falling back to in-memory sessions", "error", err)
		return session.NewMemoryStore()
	}

	slog.Info("using redis session store", "addr", cfg.RedisAddr)
	return session.NewRedisStore(client)
}
