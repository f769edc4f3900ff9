package overlay

import (
	"errors"
	"sync"
	"testing"
)

// fakeHandle implements Handle in memory for manager tests.
type fakeHandle struct {
	mu           sync.Mutex
	valid        bool
	excluded     bool
	clickThrough bool
	destroys     int
}

func (h *fakeHandle) ApplyPrivacy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.excluded = true
}

func (h *fakeHandle) MakeClickThrough() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clickThrough = true
}

func (h *fakeHandle) CaptureExcluded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.excluded
}

func (h *fakeHandle) Valid() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.valid
}

func (h *fakeHandle) Destroy() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.valid = false
	h.destroys++
	return nil
}

// fakeBackend implements Backend and records every created handle.
type fakeBackend struct {
	mu        sync.Mutex
	supported bool
	failNext  error
	created   []*fakeHandle
}

func (b *fakeBackend) Supported() bool {
	return b.supported
}

func (b *fakeBackend) CreateOverlay(x, y, w, h int) (Handle, error) {
	_, _, _, _ = x, y, w, h
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failNext != nil {
		err := b.failNext
		b.failNext = nil
		return nil, err
	}
	handle := &fakeHandle{valid: true}
	b.created = append(b.created, handle)
	return handle, nil
}

// fullDisplay is a fixed bounds provider for tests.
func fullDisplay() (int, int, int, int, error) {
	return 0, 0, 1920, 1080, nil
}

// TestCreate_TracksAndPreparesHandle verifies create applies privacy and
// click-through and registers the handle.
func TestCreate_TracksAndPreparesHandle(t *testing.T) {
	backend := &fakeBackend{supported: true}
	m := NewManager(backend, fullDisplay)
	if err := m.Create(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 tracked overlay, got %d", m.Count())
	}
	h := backend.created[0]
	if !h.excluded || !h.clickThrough {
		t.Fatalf("expected privacy and click-through applied, got %+v", h)
	}
}

// TestCreateThenDestroy_LeavesNothing verifies a create/destroy pair leaves
// an empty registry and no live native handle.
func TestCreateThenDestroy_LeavesNothing(t *testing.T) {
	backend := &fakeBackend{supported: true}
	m := NewManager(backend, fullDisplay)
	if err := m.Create(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.DestroyAll()
	if m.Count() != 0 {
		t.Fatalf("expected empty registry, got %d", m.Count())
	}
	if backend.created[0].Valid() {
		t.Fatalf("expected the native window to be gone")
	}
}

// TestDestroyAll_WithoutCreate verifies destroying zero overlays is a no-op.
func TestDestroyAll_WithoutCreate(t *testing.T) {
	m := NewManager(&fakeBackend{supported: true}, fullDisplay)
	m.DestroyAll()
	if m.Count() != 0 {
		t.Fatalf("expected empty registry, got %d", m.Count())
	}
}

// TestDestroyAll_DestroysEachHandleOnce verifies repeated teardown never
// touches a handle twice.
func TestDestroyAll_DestroysEachHandleOnce(t *testing.T) {
	backend := &fakeBackend{supported: true}
	m := NewManager(backend, fullDisplay)
	for i := 0; i < 3; i++ {
		if err := m.Create(); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	m.DestroyAll()
	m.DestroyAll()
	for i, h := range backend.created {
		if h.destroys != 1 {
			t.Fatalf("handle %d destroyed %d times", i, h.destroys)
		}
	}
}

// TestCreate_Concurrent verifies concurrent creates both land in the
// registry without overwriting each other.
func TestCreate_Concurrent(t *testing.T) {
	backend := &fakeBackend{supported: true}
	m := NewManager(backend, fullDisplay)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.Create()
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if m.Count() != n {
		t.Fatalf("expected %d tracked overlays, got %d", n, m.Count())
	}
}

// TestCreate_Unsupported verifies unsupported platforms fail without a
// native call.
func TestCreate_Unsupported(t *testing.T) {
	backend := &fakeBackend{supported: false}
	m := NewManager(backend, fullDisplay)
	if err := m.Create(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if len(backend.created) != 0 {
		t.Fatalf("expected no native window attempt")
	}
}

// TestCreate_BackendFailure verifies window creation failures surface as
// OverlayCreationFailed with the platform diagnostic attached.
func TestCreate_BackendFailure(t *testing.T) {
	backend := &fakeBackend{supported: true, failNext: ErrWindowCreationFailed}
	m := NewManager(backend, fullDisplay)
	err := m.Create()
	if !errors.Is(err, ErrOverlayCreationFailed) {
		t.Fatalf("expected ErrOverlayCreationFailed, got %v", err)
	}
	if m.Count() != 0 {
		t.Fatalf("expected nothing tracked after a failure, got %d", m.Count())
	}
}

// TestCaptureExclusion_ReportsPerOverlay verifies the capability flags are
// exposed per tracked overlay.
func TestCaptureExclusion_ReportsPerOverlay(t *testing.T) {
	backend := &fakeBackend{supported: true}
	m := NewManager(backend, fullDisplay)
	if err := m.Create(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flags := m.CaptureExclusion()
	if len(flags) != 1 || !flags[0] {
		t.Fatalf("expected one excluded overlay, got %v", flags)
	}
}
