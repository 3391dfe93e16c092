package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestManager(ttl, idleTTL time.Duration) *Manager {
	return NewManager(newMemoryStoreNoJanitor(), ttl, idleTTL, CookieOptions{HttpOnly: true})
}

// requestWithCookies copies the session cookie from a recorded
// response onto a fresh request, as a browser would.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			continue
		}
		r.AddCookie(c)
	}
	return r
}

func TestManager_CreateAndResolve(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(time.Hour, 0)

	rec := httptest.NewRecorder()
	created, err := m.Create(ctx, rec, "ada@x.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Authenticated() {
		t.Fatal("created session should be authenticated")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected one %s cookie, got %v", CookieName, cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	s, err := m.Resolve(ctx, requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s == nil || s.Email != "ada@x.com" {
		t.Fatalf("expected session for ada@x.com, got %+v", s)
	}
}

func TestManager_ResolveWithoutCookie(t *testing.T) {
	m := newTestManager(time.Hour, 0)

	s, err := m.Resolve(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s != nil {
		t.Errorf("expected no session, got %+v", s)
	}
}

func TestManager_ResolveUnknownToken(t *testing.T) {
	m := newTestManager(time.Hour, 0)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "forged-token"})

	s, err := m.Resolve(context.Background(), r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s != nil {
		t.Errorf("expected no session for forged token, got %+v", s)
	}
}

func TestManager_Destroy(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(time.Hour, 0)

	rec := httptest.NewRecorder()
	if _, err := m.Create(ctx, rec, "ada@x.com"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	r := requestWithCookies(t, rec)
	destroyRec := httptest.NewRecorder()
	if err := m.Destroy(ctx, destroyRec, r); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	cleared := destroyRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Errorf("expected clearing cookie, got %v", cleared)
	}

	s, err := m.Resolve(ctx, r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s != nil {
		t.Errorf("expected destroyed session to be unresolvable, got %+v", s)
	}
}

func TestManager_IdleExpiry(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStoreNoJanitor()
	m := NewManager(store, time.Hour, 10*time.Minute, CookieOptions{})

	rec := httptest.NewRecorder()
	created, err := m.Create(ctx, rec, "ada@x.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Backdate the idle timestamp past the idle timeout.
	created.LastSeenAt = time.Now().Add(-time.Hour)
	if err := store.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	s, err := m.Resolve(ctx, requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s != nil {
		t.Errorf("expected idle session to be dropped, got %+v", s)
	}
}

func TestManager_ResolveTouchesLastSeen(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStoreNoJanitor()
	m := NewManager(store, time.Hour, 30*time.Minute, CookieOptions{})

	rec := httptest.NewRecorder()
	created, err := m.Create(ctx, rec, "ada@x.com")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Just inside the idle window; a resolve should slide it forward.
	created.LastSeenAt = time.Now().Add(-20 * time.Minute)
	if err := store.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	s, err := m.Resolve(ctx, requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s == nil {
		t.Fatal("expected session inside idle window to resolve")
	}
	if time.Since(s.LastSeenAt) > time.Minute {
		t.Errorf("expected LastSeenAt touched, got %v", s.LastSeenAt)
	}
}

func TestManager_Ensure(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(time.Hour, 0)

	rec := httptest.NewRecorder()
	s, err := m.Ensure(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if s == nil {
		t.Fatal("expected anonymous session")
	}
	if s.Authenticated() {
		t.Error("ensured session must be anonymous")
	}

	// Ensure with an existing session returns it instead of minting.
	again, err := m.Ensure(ctx, httptest.NewRecorder(), requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if again.ID != s.ID {
		t.Errorf("expected existing session %s, got %s", s.ID, again.ID)
	}
}

func TestManager_FlashSurvivesSave(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(time.Hour, 0)

	rec := httptest.NewRecorder()
	s, err := m.Create(ctx, rec, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s.AddFlash(FlashError, "You must log in first to access this page.")
	if err := m.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	resolved, err := m.Resolve(ctx, requestWithCookies(t, rec))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	flashes := resolved.TakeFlashes()
	if len(flashes[FlashError]) != 1 {
		t.Fatalf("expected one error flash, got %v", flashes)
	}
	if flashes[FlashError][0] != "You must log in first to access this page." {
		t.Errorf("unexpected flash text %q", flashes[FlashError][0])
	}
}
