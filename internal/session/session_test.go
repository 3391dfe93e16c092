package session

import "testing"

func TestAuthenticated(t *testing.T) {
	var nilSession *Session
	if nilSession.Authenticated() {
		t.Error("nil session must not be authenticated")
	}

	anon := &Session{ID: "abc"}
	if anon.Authenticated() {
		t.Error("session without identity must not be authenticated")
	}

	bound := &Session{ID: "abc", Email: "ada@x.com"}
	if !bound.Authenticated() {
		t.Error("session with identity must be authenticated")
	}
}

func TestFlashes_OneShot(t *testing.T) {
	s := &Session{ID: "abc"}

	s.AddFlash(FlashError, "first")
	s.AddFlash(FlashError, "second")
	s.AddFlash(FlashSuccess, "done")

	flashes := s.TakeFlashes()
	if got := len(flashes[FlashError]); got != 2 {
		t.Errorf("expected 2 error flashes, got %d", got)
	}
	if got := len(flashes[FlashSuccess]); got != 1 {
		t.Errorf("expected 1 success flash, got %d", got)
	}
	if flashes[FlashError][0] != "first" {
		t.Errorf("unexpected flash order: %v", flashes[FlashError])
	}

	if again := s.TakeFlashes(); len(again) != 0 {
		t.Errorf("expected cleared queue on second take, got %v", again)
	}
}
