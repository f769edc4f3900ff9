// Package overlay manages native capture-excluded, click-through windows.
package overlay

import (
	"fmt"
	"log"
	"sync"
)

// Manager is the single source of truth for live overlay windows. The
// registry mutates only under the lock; the slow native create and destroy
// calls run outside it.
type Manager struct {
	mu      sync.Mutex
	backend Backend
	bounds  BoundsFunc
	handles []Handle
}

// NewManager returns a manager creating overlays through backend at the
// bounds the BoundsFunc reports.
func NewManager(backend Backend, bounds BoundsFunc) *Manager {
	return &Manager{backend: backend, bounds: bounds}
}

// Supported reports whether the platform can create privacy overlays.
func (m *Manager) Supported() bool {
	return m.backend.Supported()
}

// Create makes one new full-display overlay, applies capture exclusion and
// click-through, and tracks the handle.
func (m *Manager) Create() error {
	if !m.backend.Supported() {
		return ErrUnsupported
	}
	x, y, w, h, err := m.bounds()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOverlayCreationFailed, err)
	}
	handle, err := m.backend.CreateOverlay(x, y, w, h)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOverlayCreationFailed, err)
	}
	handle.ApplyPrivacy()
	handle.MakeClickThrough()

	m.mu.Lock()
	m.handles = append(m.handles, handle)
	m.mu.Unlock()
	return nil
}

// DestroyAll tears down every tracked overlay. The registry is drained
// atomically under the lock; destruction happens outside it. Destroying
// zero overlays is a no-op, never an error.
func (m *Manager) DestroyAll() {
	m.mu.Lock()
	handles := m.handles
	m.handles = nil
	m.mu.Unlock()

	for _, h := range handles {
		if err := h.Destroy(); err != nil {
			log.Printf("overlay: destroy: %v", err)
		}
	}
}

// Count returns the number of tracked overlays.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}

// CaptureExclusion reports, per tracked overlay, whether the OS accepted
// the capture-exclusion request.
func (m *Manager) CaptureExclusion() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]bool, len(m.handles))
	for i, h := range m.handles {
		out[i] = h.CaptureExcluded()
	}
	return out
}
