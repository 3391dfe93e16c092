package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string
	Env  string

	DatabaseDSN string

	// RedisAddr selects the Redis-backed session store when set.
	// Empty means sessions live in process memory.
	RedisAddr     string
	RedisPassword string

	SessionTTL     time.Duration
	SessionIdleTTL time.Duration

	CORSOrigin string

	// PictureContentType is the Content-Type served for profile pictures.
	// It is configuration, not derived from the stored bytes.
	PictureContentType string
	MaxUploadBytes     int64
}

func Load() Config {
	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		DatabaseDSN:        getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/eduportal?parseTime=true"),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		SessionTTL:         getDuration("SESSION_TTL", 24*time.Hour),
		SessionIdleTTL:     getDuration("SESSION_IDLE_TTL", 2*time.Hour),
		CORSOrigin:         getEnv("CORS_ORIGIN", "http://localhost:8080"),
		PictureContentType: getEnv("PICTURE_CONTENT_TYPE", "image/png"),
		MaxUploadBytes:     getInt64("MAX_UPLOAD_BYTES", 10<<20),
	}

	if cfg.Env == "production" && cfg.DatabaseDSN == "root:password@tcp(127.0.0.1:3306)/eduportal?parseTime=true" {
		slog.Error("DATABASE_DSN must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using fallback", "key", key, "value", v)
		return fallback
	}
	return d
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("invalid integer, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}
