package testutil

import (
	"sync"

	"github.com/frudas24/veildesk/internal/overlay"
)

// FakeHandle is an in-memory overlay window for tests.
type FakeHandle struct {
	mu        sync.Mutex
	valid     bool
	excluded  bool
	clickThru bool
	destroys  int
}

// ApplyPrivacy marks the handle as capture excluded.
func (h *FakeHandle) ApplyPrivacy() {
	h.mu.Lock()
	h.excluded = true
	h.mu.Unlock()
}

// MakeClickThrough marks the handle as click-through.
func (h *FakeHandle) MakeClickThrough() {
	h.mu.Lock()
	h.clickThru = true
	h.mu.Unlock()
}

// CaptureExcluded reports whether privacy was applied.
func (h *FakeHandle) CaptureExcluded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.excluded
}

// Valid reports whether the handle has been destroyed.
func (h *FakeHandle) Valid() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.valid
}

// Destroy invalidates the handle.
func (h *FakeHandle) Destroy() error {
	h.mu.Lock()
	h.valid = false
	h.destroys++
	h.mu.Unlock()
	return nil
}

// Destroys returns how many times Destroy was called.
func (h *FakeHandle) Destroys() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.destroys
}

// FakeBackend creates FakeHandles and remembers them.
type FakeBackend struct {
	mu      sync.Mutex
	handles []*FakeHandle

	// Err is returned by CreateOverlay when set.
	Err error
}

// CreateOverlay returns a fresh fake handle.
func (b *FakeBackend) CreateOverlay(x, y, w, h int) (overlay.Handle, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	handle := &FakeHandle{valid: true}
	b.mu.Lock()
	b.handles = append(b.handles, handle)
	b.mu.Unlock()
	return handle, nil
}

// Supported always reports true for the fake.
func (b *FakeBackend) Supported() bool { return true }

// Handles returns every handle the backend created.
func (b *FakeBackend) Handles() []*FakeHandle {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*FakeHandle, len(b.handles))
	copy(out, b.handles)
	return out
}

// FixedBounds returns an overlay.BoundsFunc covering the given rectangle.
func FixedBounds(x, y, w, h int) overlay.BoundsFunc {
	return func() (int, int, int, int, error) {
		return x, y, w, h, nil
	}
}
