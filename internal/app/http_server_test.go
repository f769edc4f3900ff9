package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frudas24/veildesk/internal/config"
	"github.com/frudas24/veildesk/internal/overlay"
	"github.com/frudas24/veildesk/internal/session"
	"github.com/frudas24/veildesk/internal/testutil"
)

// newTestApp returns an App wired around fakes.
func newTestApp(t *testing.T, cfg config.Config, sess *session.Session) *App {
	t.Helper()
	overlays := overlay.NewManager(&testutil.FakeBackend{}, testutil.FixedBounds(0, 0, 1920, 1080))
	app, err := New(cfg, sess, &testutil.FakeInjector{}, overlays)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app
}

// TestHandleLogin_Success verifies the right password authenticates.
func TestHandleLogin_Success(t *testing.T) {
	sess := session.New("pw")
	app := newTestApp(t, config.Config{}, sess)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"password":"pw"}`))
	rec := httptest.NewRecorder()
	app.handleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
}

// TestHandleLogin_WrongPassword verifies a bad password is rejected.
func TestHandleLogin_WrongPassword(t *testing.T) {
	sess := session.New("pw")
	app := newTestApp(t, config.Config{}, sess)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"password":"nope"}`))
	rec := httptest.NewRecorder()
	app.handleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestHandleState_Unauthorized verifies /api/state requires
// authentication.
func TestHandleState_Unauthorized(t *testing.T) {
	app := newTestApp(t, config.Config{}, session.New("pw"))

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	app.handleState(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestHandleState_ReportsOverlays verifies the state endpoint reflects the
// overlay registry.
func TestHandleState_ReportsOverlays(t *testing.T) {
	sess := session.New("pw")
	if !sess.Authenticate("pw") {
		t.Fatalf("expected authenticate success")
	}
	cfg := config.Config{OverlayText: "Loading...", OverlayTickMs: 50}
	app := newTestApp(t, cfg, sess)
	if err := app.overlays.Create(); err != nil {
		t.Fatalf("create overlay: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	app.handleState(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp stateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Authenticated || !resp.OverlaySupported || resp.Overlays != 1 {
		t.Fatalf("unexpected state: %+v", resp)
	}
	if len(resp.CaptureExcluded) != 1 || !resp.CaptureExcluded[0] {
		t.Fatalf("expected capture exclusion reported, got %+v", resp.CaptureExcluded)
	}
	if resp.OverlayText != "Loading..." || resp.OverlayTickMs != 50 {
		t.Fatalf("expected overlay config surfaced, got %+v", resp)
	}
}

// TestHandleLogout verifies logout clears authentication.
func TestHandleLogout(t *testing.T) {
	sess := session.New("pw")
	sess.Authenticate("pw")
	app := newTestApp(t, config.Config{}, sess)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	app.handleLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if sess.IsAuthenticated() {
		t.Fatalf("expected session cleared")
	}
}

// TestShutdown_DestroysOverlays verifies Shutdown drains the overlay
// registry.
func TestShutdown_DestroysOverlays(t *testing.T) {
	app := newTestApp(t, config.Config{}, session.New("pw"))
	if err := app.overlays.Create(); err != nil {
		t.Fatalf("create overlay: %v", err)
	}
	app.Shutdown()
	if n := app.overlays.Count(); n != 0 {
		t.Fatalf("expected empty registry after shutdown, got %d", n)
	}
}

// TestNew_RequiresDependencies verifies nil dependencies are rejected.
func TestNew_RequiresDependencies(t *testing.T) {
	overlays := overlay.NewManager(&testutil.FakeBackend{}, testutil.FixedBounds(0, 0, 1, 1))
	if _, err := New(config.Config{}, nil, &testutil.FakeInjector{}, overlays); err == nil {
		t.Fatalf("expected error for nil session")
	}
	if _, err := New(config.Config{}, session.New("pw"), nil, overlays); err == nil {
		t.Fatalf("expected error for nil injector")
	}
	if _, err := New(config.Config{}, session.New("pw"), &testutil.FakeInjector{}, nil); err == nil {
		t.Fatalf("expected error for nil overlay manager")
	}
}
