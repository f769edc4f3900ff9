// Package overlay manages native capture-excluded, click-through windows.
package overlay

import "errors"

// ErrWindowCreationFailed indicates the native subsystem refused to create
// a window.
var ErrWindowCreationFailed = errors.New("native window creation failed")

// ErrOverlayCreationFailed indicates a privacy overlay could not be set up.
var ErrOverlayCreationFailed = errors.New("overlay creation failed")

// ErrUnsupported indicates privacy overlays have no implementation for the
// current platform.
var ErrUnsupported = errors.New("privacy overlays are not supported on this platform")

// Config carries tuning for the platform backend. Only the animated
// Windows backend reads the tick and label.
type Config struct {
	// TickMS is the redraw timer period in milliseconds.
	TickMS int
	// Label is the status text painted on the overlay.
	Label string
}

// Handle is one live native overlay window. A handle is valid from
// successful creation until Destroy returns and must not be used afterward.
type Handle interface {
	// ApplyPrivacy marks the window as excluded from screen capture.
	// Best-effort and idempotent: on OS versions without support the window
	// stays capturable and CaptureExcluded reports false.
	ApplyPrivacy()
	// MakeClickThrough passes pointer events through to whatever is beneath
	// the window while it stays visible and topmost. Idempotent.
	MakeClickThrough()
	// CaptureExcluded reports whether the OS accepted capture exclusion.
	CaptureExcluded() bool
	// Valid reports whether the native window still exists.
	Valid() bool
	// Destroy tears down the native window and blocks until it is gone.
	// Destroying an already-destroyed handle is a no-op.
	Destroy() error
}

// Backend creates native overlay windows for one platform.
type Backend interface {
	// CreateOverlay creates a borderless, topmost, visible window covering
	// the given rectangle.
	CreateOverlay(x, y, w, h int) (Handle, error)
	// Supported reports whether this platform can create overlays.
	Supported() bool
}

// BoundsFunc reports the rectangle a new overlay should cover.
type BoundsFunc func() (x, y, w, h int, err error)
