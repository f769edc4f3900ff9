// Package app wires the HTTP API, control socket, and overlay state
// together.
package app

import (
	"errors"

	"github.com/frudas24/veildesk/internal/config"
	"github.com/frudas24/veildesk/internal/control"
	"github.com/frudas24/veildesk/internal/inject"
	"github.com/frudas24/veildesk/internal/overlay"
	"github.com/frudas24/veildesk/internal/session"
)

// App coordinates the HTTP API and the control websocket.
type App struct {
	cfg      config.Config
	session  *session.Session
	overlays *overlay.Manager
	control  *control.Server
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, injector inject.Injector, overlays *overlay.Manager) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if injector == nil {
		return nil, errors.New("injector is required")
	}
	if overlays == nil {
		return nil, errors.New("overlay manager is required")
	}

	app := &App{
		cfg:      cfg,
		session:  sess,
		overlays: overlays,
	}
	app.control = control.NewServer(sess, injector, overlays)
	return app, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Shutdown tears down every live overlay.
func (a *App) Shutdown() {
	a.overlays.DestroyAll()
}
