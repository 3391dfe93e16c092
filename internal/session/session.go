package session

import (
	"context"
	"errors"
	"time"
)

// Flash message kinds surfaced to rendered pages.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

var ErrNotFound = errors.New("session not found")

// Session is the server-side record a cookie token resolves to.
// A non-empty Email is the sole authentication signal; sessions with an
// empty Email exist only to carry flash messages across a redirect.
type Session struct {
	ID         string              `json:"id"`
	Email      string              `json:"email"`
	Flashes    map[string][]string `json:"flashes,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	LastSeenAt time.Time           `json:"last_seen_at"`
	ExpiresAt  time.Time           `json:"expires_at"`
}

// Authenticated reports whether the session is bound to an identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.Email != ""
}

// AddFlash queues a one-shot message for the next rendered page.
func (s *Session) AddFlash(kind, text string) {
	if s.Flashes == nil {
		s.Flashes = make(map[string][]string)
	}
	s.Flashes[kind] = append(s.Flashes[kind], text)
}

// TakeFlashes returns all queued messages and clears the queue.
func (s *Session) TakeFlashes() map[string][]string {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Store defines how session records are stored and retrieved.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, sessionID string) error
}
