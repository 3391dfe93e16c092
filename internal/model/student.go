package model

import "time"

// Student represents a student record in the database.
type Student struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	ProfilePicture []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SignupRequest represents a student registration submission.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login submission.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StudentResponse represents student data safe for views and API
// responses (no password hash, no picture bytes).
type StudentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Response is the body shape of every JSON endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
