//go:build !windows && !darwin

// Package inject synthesizes native mouse and keyboard input.
package inject

import "github.com/frudas24/veildesk/internal/keymap"

// NoopInjector is the placeholder injector for unsupported platforms.
type NoopInjector struct{}

// NewInjector returns a non-functional injector together with
// ErrUnsupported; callers may keep the injector and surface the error per
// command instead of failing startup.
func NewInjector(keys *keymap.Table) (Injector, error) {
	_ = keys
	return &NoopInjector{}, ErrUnsupported
}

// MoveMouse returns ErrUnsupported.
func (n *NoopInjector) MoveMouse(x, y int) error {
	_, _ = x, y
	return ErrUnsupported
}

// Click returns ErrUnsupported.
func (n *NoopInjector) Click(button string) error {
	_ = button
	return ErrUnsupported
}

// TypeText returns ErrUnsupported.
func (n *NoopInjector) TypeText(text string) error {
	_ = text
	return ErrUnsupported
}

// KeyEvent returns ErrUnsupported.
func (n *NoopInjector) KeyEvent(action, key, code string, mods Modifiers) error {
	_, _, _, _ = action, key, code, mods
	return ErrUnsupported
}
