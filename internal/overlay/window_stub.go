//go:build !windows && !darwin

// Package overlay manages native capture-excluded, click-through windows.
package overlay

// stubBackend is the generic fallback for platforms without overlay support.
type stubBackend struct{}

// NewBackend returns a non-functional backend on unsupported platforms.
func NewBackend(cfg Config) Backend {
	_ = cfg
	return &stubBackend{}
}

// Supported reports that this platform cannot create overlays.
func (b *stubBackend) Supported() bool {
	return false
}

// CreateOverlay returns ErrUnsupported.
func (b *stubBackend) CreateOverlay(x, y, w, h int) (Handle, error) {
	_, _, _, _ = x, y, w, h
	return nil, ErrUnsupported
}
