package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed — continuing without DB", "error", err)
		return db, nil
	}

	if err := bootstrapSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

// bootstrapSchema creates the students table if it does not exist.
// The unique key on email enforces the one-account-per-email invariant
// at the store level; application-side checks are an early exit only.
func bootstrapSchema(db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS students (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		profile_picture LONGBLOB,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_students_email (email)
	)`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("bootstrapping schema: %w", err)
	}
	return nil
}
