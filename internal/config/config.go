// Package config loads environment configuration for Veildesk.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr    = "127.0.0.1:8787"
	defaultDataDir       = "./data"
	defaultOverlayTickMs = 50
	defaultOverlayText   = "Loading..."
)

// Config holds runtime configuration values.
type Config struct {
	ListenAddr    string
	UIPassword    string
	DataDir       string
	KeymapPath    string
	OverlayTickMs int
	OverlayText   string
}

// Load reads configuration from ./data/.env and environment variables.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:    defaultListenAddr,
		DataDir:       defaultDataDir,
		KeymapPath:    filepath.Join(defaultDataDir, "keymap.yaml"),
		OverlayTickMs: defaultOverlayTickMs,
		OverlayText:   defaultOverlayText,
	}

	if err := loadEnvFile(filepath.Join(cfg.DataDir, ".env")); err != nil {
		return Config{}, err
	}

	cfg.ListenAddr = envString("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DataDir = envString("DATA_DIR", cfg.DataDir)
	cfg.KeymapPath = envString("KEYMAP_PATH", filepath.Join(cfg.DataDir, "keymap.yaml"))
	cfg.OverlayText = envString("OVERLAY_TEXT", cfg.OverlayText)
	cfg.UIPassword = strings.TrimSpace(os.Getenv("UI_PASSWORD"))

	tick, err := envInt("OVERLAY_TICK_MS", cfg.OverlayTickMs)
	if err != nil {
		return Config{}, err
	}
	if tick <= 0 {
		return Config{}, fmt.Errorf("OVERLAY_TICK_MS must be > 0")
	}
	cfg.OverlayTickMs = tick

	if cfg.UIPassword == "" {
		return Config{}, errors.New("UI_PASSWORD is required")
	}

	return cfg, nil
}

// envString returns an env override when present, otherwise a default.
func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// loadEnvFile loads KEY=VALUE pairs from a .env file.
func loadEnvFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseEnvLine parses a single .env line into key/value.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	if strings.HasPrefix(line, "export ") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
	}
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(value, `"'`)
	return key, value, true
}
