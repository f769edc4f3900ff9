package session

import "testing"

// TestAuthenticate_CorrectPassword verifies the right password grants
// access.
func TestAuthenticate_CorrectPassword(t *testing.T) {
	s := New("secret")
	if !s.Authenticate("secret") {
		t.Fatalf("expected authentication to succeed")
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected session to be authenticated")
	}
}

// TestAuthenticate_WrongPassword verifies a wrong password clears any
// previous authentication.
func TestAuthenticate_WrongPassword(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	if s.Authenticate("nope") {
		t.Fatalf("expected authentication to fail")
	}
	if s.IsAuthenticated() {
		t.Fatalf("expected session to be unauthenticated")
	}
}

// TestAuthenticate_EmptyPassword verifies an empty password never matches.
func TestAuthenticate_EmptyPassword(t *testing.T) {
	s := New("")
	if s.Authenticate("") {
		t.Fatalf("expected empty credentials to fail")
	}
}

// TestInputEnabled_Toggle verifies the injection gate toggles and shows up
// in snapshots.
func TestInputEnabled_Toggle(t *testing.T) {
	s := New("secret")
	if !s.InputEnabled() {
		t.Fatalf("expected input enabled by default")
	}
	s.SetInputEnabled(false)
	if s.InputEnabled() {
		t.Fatalf("expected input disabled")
	}
	if snap := s.State(); snap.InputEnabled {
		t.Fatalf("expected snapshot to reflect the gate, got %+v", snap)
	}
}
