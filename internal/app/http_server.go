// Package app wires the HTTP API, control socket, and overlay state
// together.
package app

import (
	"encoding/json"
	"net/http"
)

// RegisterRoutes wires API handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated    bool   `json:"authenticated"`
	InputEnabled     bool   `json:"inputEnabled"`
	OverlaySupported bool   `json:"overlaySupported"`
	Overlays         int    `json:"overlays"`
	CaptureExcluded  []bool `json:"captureExcluded"`
	OverlayText      string `json:"overlayText"`
	OverlayTickMs    int    `json:"overlayTickMs"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns the current session and overlay state.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.State()
	resp := stateResponse{
		Authenticated:    snap.Authenticated,
		InputEnabled:     snap.InputEnabled,
		OverlaySupported: a.overlays.Supported(),
		Overlays:         a.overlays.Count(),
		CaptureExcluded:  a.overlays.CaptureExclusion(),
		OverlayText:      a.cfg.OverlayText,
		OverlayTickMs:    a.cfg.OverlayTickMs,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// requireAuth returns false and writes an error if the session is not
// authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
