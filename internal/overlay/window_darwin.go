//go:build darwin

// Package overlay manages native capture-excluded, click-through windows.
package overlay

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa

#import <Cocoa/Cocoa.h>

// Every window is confined to the OS thread that created it; that thread
// pumps its own run loop between marshaled calls. None of these helpers
// touch the GCD main queue, which nothing in this process drains.

static void *overlayCreate(double x, double y, double w, double h) {
	NSRect frame = NSMakeRect(x, y, w, h);
	NSWindow *window = [[NSWindow alloc] initWithContentRect:frame
	                                               styleMask:NSWindowStyleMaskBorderless
	                                                 backing:NSBackingStoreBuffered
	                                                   defer:NO];
	[window setLevel:NSFloatingWindowLevel];
	[window setOpaque:YES];
	[window setBackgroundColor:[NSColor blackColor]];
	[window setReleasedWhenClosed:YES];
	[window setCollectionBehavior:NSWindowCollectionBehaviorCanJoinAllSpaces |
	                              NSWindowCollectionBehaviorStationary];
	[window makeKeyAndOrderFront:nil];
	return (void *)window;
}

static void overlayApplyPrivacy(void *ptr) {
	// Screen-capture consumers receive no content for this window.
	// Available since 10.15.
	[(NSWindow *)ptr setSharingType:NSWindowSharingNone];
}

static void overlayClickThrough(void *ptr) {
	NSWindow *window = (NSWindow *)ptr;
	[window setIgnoresMouseEvents:YES];
	[window setAlphaValue:1.0];
}

static bool overlayVisible(void *ptr) {
	return [(NSWindow *)ptr isVisible];
}

static void overlayDestroy(void *ptr) {
	NSWindow *window = (NSWindow *)ptr;
	[window orderOut:nil];
	[window close];
}

static void pumpRunLoop(double seconds) {
	CFRunLoopRunInMode(kCFRunLoopDefaultMode, seconds, true);
}
*/
import "C"

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"
)

// macBackend creates static black capture-excluded NSWindows, one owning
// OS thread per window.
type macBackend struct{}

// NewBackend returns the macOS overlay backend. The animated paint loop is
// Windows-only; the config tick and label are unused here.
func NewBackend(cfg Config) Backend {
	_ = cfg
	return &macBackend{}
}

// Supported reports that macOS can create overlays.
func (b *macBackend) Supported() bool {
	return true
}

// CreateOverlay creates the window on a dedicated OS thread which then
// services marshaled calls between run loop slices. Creation, property
// changes, and destruction for one window all happen on that thread.
func (b *macBackend) CreateOverlay(x, y, w, h int) (Handle, error) {
	type created struct {
		ptr unsafe.Pointer
		err error
	}
	svc := newService()
	res := make(chan created, 1)

	go func() {
		runtime.LockOSThread()
		ptr := C.overlayCreate(C.double(x), C.double(y), C.double(w), C.double(h))
		if ptr == nil {
			close(svc.done)
			res <- created{err: fmt.Errorf("%w: NSWindow allocation failed", ErrWindowCreationFailed)}
			return
		}
		res <- created{ptr: ptr}
		svc.run(func() { C.pumpRunLoop(0.05) })
	}()

	c := <-res
	if c.err != nil {
		return nil, c.err
	}
	return &macHandle{svc: svc, ptr: c.ptr}, nil
}

// macHandle owns one NSWindow through the service loop of its owning
// thread. The pointer is only dereferenced inside marshaled calls.
type macHandle struct {
	mu        sync.Mutex
	svc       *service
	ptr       unsafe.Pointer
	excluded  bool
	destroyed bool
}

// ApplyPrivacy excludes the window from screen capture. NSWindowSharingNone
// is honored on every supported macOS version, so a serviced call is
// recorded as accepted.
func (h *macHandle) ApplyPrivacy() {
	if h.closed() {
		return
	}
	_, ok := h.svc.call(func() bool {
		C.overlayApplyPrivacy(h.ptr)
		return true
	}, false)
	if ok {
		h.mu.Lock()
		h.excluded = true
		h.mu.Unlock()
	}
}

// MakeClickThrough lets pointer events pass through the window.
func (h *macHandle) MakeClickThrough() {
	if h.closed() {
		return
	}
	h.svc.call(func() bool {
		C.overlayClickThrough(h.ptr)
		return true
	}, false)
}

// CaptureExcluded reports whether capture exclusion was applied.
func (h *macHandle) CaptureExcluded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.excluded
}

// Valid reports whether the window is still on screen.
func (h *macHandle) Valid() bool {
	if h.closed() {
		return false
	}
	visible, ok := h.svc.call(func() bool {
		return bool(C.overlayVisible(h.ptr))
	}, false)
	return ok && visible
}

// Destroy closes the window on its owning thread and waits for that
// thread's service loop to exit. Destroying twice is a no-op.
func (h *macHandle) Destroy() error {
	h.mu.Lock()
	if h.destroyed {
		h.mu.Unlock()
		return nil
	}
	h.destroyed = true
	h.mu.Unlock()

	h.svc.call(func() bool {
		C.overlayDestroy(h.ptr)
		return true
	}, true)
	<-h.svc.done
	return nil
}

// closed reports whether Destroy has begun.
func (h *macHandle) closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.destroyed
}
