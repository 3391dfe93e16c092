package session

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Manager binds identities to sessions and resolves them on later
// requests. It owns token generation, cookie issuance, and the expiry
// policy (absolute TTL plus sliding idle timeout).
type Manager struct {
	store   Store
	ttl     time.Duration
	idleTTL time.Duration
	cookie  CookieOptions
}

// NewManager creates a session manager over the given store.
// An idleTTL of zero disables the idle timeout.
func NewManager(store Store, ttl, idleTTL time.Duration, cookie CookieOptions) *Manager {
	return &Manager{
		store:   store,
		ttl:     ttl,
		idleTTL: idleTTL,
		cookie:  cookie,
	}
}

// Create establishes a new session bound to email and sets the session
// cookie on the response. An empty email creates an anonymous session
// used only to carry flash messages.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, email string) (*Session, error) {
	id, err := generateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s := &Session{
		ID:         id,
		Email:      email,
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}

	setCookie(w, s.ID, s.ExpiresAt, m.cookie)
	return s, nil
}

// Resolve returns the current request's session, or nil when no valid
// session exists. Expired and idle-timed-out sessions are dropped from
// the store. Resolving twice on the same request is a no-op beyond the
// idle-timestamp touch.
func (m *Manager) Resolve(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	s, err := m.store.Get(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := time.Now()
	if now.After(s.ExpiresAt) {
		_ = m.store.Delete(ctx, s.ID)
		return nil, nil
	}
	if m.idleTTL > 0 && now.After(s.LastSeenAt.Add(m.idleTTL)) {
		_ = m.store.Delete(ctx, s.ID)
		return nil, nil
	}

	s.LastSeenAt = now
	if err := m.store.Update(ctx, s); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s, nil
}

// Destroy invalidates the current request's session and clears the
// cookie. Destroying an absent session is not an error.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer clearCookie(w, m.cookie)

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return m.store.Delete(ctx, cookie.Value)
}

// Ensure resolves the current session, creating an anonymous one when
// none exists, so there is always a record to queue flashes on.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	s, err := m.Resolve(ctx, r)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	return m.Create(ctx, w, "")
}

// Save persists session mutations (flash queue changes).
func (m *Manager) Save(ctx context.Context, s *Session) error {
	return m.store.Update(ctx, s)
}
