// Package main starts the Veildesk agent.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/veildesk/internal/app"
	"github.com/frudas24/veildesk/internal/config"
	"github.com/frudas24/veildesk/internal/inject"
	"github.com/frudas24/veildesk/internal/keymap"
	"github.com/frudas24/veildesk/internal/monitor"
	"github.com/frudas24/veildesk/internal/overlay"
	"github.com/frudas24/veildesk/internal/session"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	keys, err := loadKeymap(cfg.KeymapPath)
	if err != nil {
		return err
	}

	injector, err := inject.NewInjector(keys)
	if err != nil {
		if !errors.Is(err, inject.ErrUnsupported) {
			return err
		}
		log.Printf("input injection unavailable on this platform")
	}

	backend := overlay.NewBackend(overlay.Config{
		TickMS: cfg.OverlayTickMs,
		Label:  cfg.OverlayText,
	})
	overlays := overlay.NewManager(backend, primaryDisplayBounds)
	sess := session.New(cfg.UIPassword)

	appInstance, err := app.New(cfg, sess, injector, overlays)
	if err != nil {
		return err
	}
	defer appInstance.Shutdown()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// loadKeymap builds the key table from the defaults plus any overrides
// file.
func loadKeymap(path string) (*keymap.Table, error) {
	keys := keymap.Default()
	overrides, err := keymap.LoadOverrides(path)
	if err != nil {
		return nil, fmt.Errorf("keymap overrides: %w", err)
	}
	if len(overrides) > 0 {
		keys.Merge(overrides)
		log.Printf("keymap: %d overrides loaded (%s)", len(overrides), path)
	}
	return keys, nil
}

// primaryDisplayBounds reports the rectangle new overlays should cover.
func primaryDisplayBounds() (int, int, int, int, error) {
	monitors, err := monitor.ListMonitors()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	m, ok := monitor.Primary(monitors)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("no display found")
	}
	return m.X, m.Y, m.W, m.H, nil
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("Veildesk starting")
	logEnvStatus(cfg)
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
