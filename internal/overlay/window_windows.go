//go:build windows

// Package overlay manages native capture-excluded, click-through windows.
package overlay

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
)

const overlayClass = "VeildeskOverlay"

const spinnerTimerID = 1

const spinnerRadius = 20

// painter holds the paint settings the shared wndproc needs per window.
type painter struct {
	tick  uint32
	label []uint16
}

// painters maps live window handles to their paint settings.
var painters sync.Map

// createMu serializes native window creation so the pending painter is
// unambiguous while CreateWindowEx dispatches the first messages.
var (
	createMu    sync.Mutex
	nextPainter *painter
	classOnce   sync.Once
)

// winBackend creates animated overlay windows, one message pump per window.
type winBackend struct {
	cfg Config
}

// NewBackend returns the Windows overlay backend.
func NewBackend(cfg Config) Backend {
	if cfg.TickMS <= 0 {
		cfg.TickMS = 50
	}
	if cfg.Label == "" {
		cfg.Label = "Loading..."
	}
	return &winBackend{cfg: cfg}
}

// Supported reports that Windows can create overlays.
func (b *winBackend) Supported() bool {
	return true
}

// CreateOverlay creates the window on a dedicated OS thread which then owns
// its message pump. Creation, painting, and destruction for one window all
// happen on that thread; other threads only post messages to it.
func (b *winBackend) CreateOverlay(x, y, w, h int) (Handle, error) {
	type created struct {
		hwnd win.HWND
		err  error
	}
	res := make(chan created, 1)
	done := make(chan struct{})

	go func() {
		runtime.LockOSThread()
		defer close(done)

		p := &painter{
			tick:  uint32(b.cfg.TickMS),
			label: syscall.StringToUTF16(b.cfg.Label),
		}
		hwnd, err := createOverlayWindow(x, y, w, h, p)
		res <- created{hwnd: hwnd, err: err}
		if err != nil {
			return
		}

		var msg win.MSG
		for win.GetMessage(&msg, 0, 0, 0) > 0 {
			win.TranslateMessage(&msg)
			win.DispatchMessage(&msg)
		}
	}()

	c := <-res
	if c.err != nil {
		return nil, c.err
	}
	return &winHandle{hwnd: c.hwnd, done: done}, nil
}

// createOverlayWindow registers the class on first use and creates one
// borderless topmost popup window.
func createOverlayWindow(x, y, w, h int, p *painter) (win.HWND, error) {
	createMu.Lock()
	defer createMu.Unlock()

	classOnce.Do(registerClass)
	nextPainter = p
	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|win.WS_EX_TOOLWINDOW,
		syscall.StringToUTF16Ptr(overlayClass),
		nil,
		win.WS_POPUP|win.WS_VISIBLE,
		int32(x), int32(y), int32(w), int32(h),
		0, 0, win.GetModuleHandle(nil), nil)
	nextPainter = nil
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: CreateWindowEx returned NULL", ErrWindowCreationFailed)
	}
	win.InvalidateRect(hwnd, nil, true)
	return hwnd, nil
}

// registerClass registers the overlay window class once per process.
func registerClass() {
	var wc win.WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = syscall.NewCallback(wndProc)
	wc.HInstance = win.GetModuleHandle(nil)
	wc.HbrBackground = createSolidBrush(0)
	wc.LpszClassName = syscall.StringToUTF16Ptr(overlayClass)
	win.RegisterClassEx(&wc)
}

// wndProc drives the paint and timer loop for every overlay window.
func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	h := win.HWND(hwnd)
	switch uint32(msg) {
	case win.WM_CREATE:
		// Creation is serialized under createMu on this same thread, so
		// the pending painter belongs to this window.
		if nextPainter != nil {
			painters.Store(h, nextPainter)
		}
		return 0
	case win.WM_PAINT:
		if v, ok := painters.Load(h); ok {
			p := v.(*painter)
			paintOverlay(h, p)
			// Re-arm the redraw timer for the next frame.
			win.SetTimer(h, spinnerTimerID, p.tick, 0)
			return 0
		}
	case win.WM_TIMER:
		win.InvalidateRect(h, nil, false)
		return 0
	case win.WM_ERASEBKGND:
		// The full repaint covers erasure; answering here avoids a flash
		// between erase and repaint.
		return 1
	case win.WM_DESTROY:
		// Timer cancellation strictly precedes handle release.
		win.KillTimer(h, spinnerTimerID)
		painters.Delete(h)
		win.PostQuitMessage(0)
		return 0
	}
	return win.DefWindowProc(h, uint32(msg), wParam, lParam)
}

// paintOverlay renders one frame into a memory DC sized to the client area
// and blits it in a single operation to avoid tearing.
func paintOverlay(hwnd win.HWND, p *painter) {
	var ps win.PAINTSTRUCT
	hdc := win.BeginPaint(hwnd, &ps)
	defer win.EndPaint(hwnd, &ps)

	var rect win.RECT
	win.GetClientRect(hwnd, &rect)
	width := rect.Right - rect.Left
	height := rect.Bottom - rect.Top

	memDC := win.CreateCompatibleDC(hdc)
	defer win.DeleteDC(memDC)
	bitmap := win.CreateCompatibleBitmap(hdc, width, height)
	defer win.DeleteObject(win.HGDIOBJ(bitmap))
	oldBitmap := win.SelectObject(memDC, win.HGDIOBJ(bitmap))
	defer win.SelectObject(memDC, oldBitmap)

	// Opaque black background.
	brush := createSolidBrush(0)
	win.FillRect(memDC, &rect, brush)
	win.DeleteObject(win.HGDIOBJ(brush))

	// Status text below the spinner.
	textRect := rect
	textRect.Top = height/2 + 30
	textRect.Bottom = textRect.Top + 30
	win.SetTextColor(memDC, win.COLORREF(0x00FFFFFF))
	win.SetBkMode(memDC, win.TRANSPARENT)
	drawTextCentered(memDC, p.label, &textRect)

	// Spinner ring with a radial indicator line.
	cx := width / 2
	cy := height / 2
	pen := createPen(psSolid, 3, 0x00FFFFFF)
	oldPen := win.SelectObject(memDC, win.HGDIOBJ(pen))
	oldBrush := win.SelectObject(memDC, win.GetStockObject(stockNullBrush))
	ellipse(memDC, cx-spinnerRadius, cy-spinnerRadius, cx+spinnerRadius, cy+spinnerRadius)

	angle := Angle(time.Now().UnixMilli())
	dx, dy := TipOffset(spinnerRadius, angle)
	moveTo(memDC, cx, cy)
	lineTo(memDC, cx+int32(dx), cy+int32(dy))

	win.SelectObject(memDC, oldPen)
	win.SelectObject(memDC, oldBrush)
	win.DeleteObject(win.HGDIOBJ(pen))

	win.BitBlt(hdc, 0, 0, width, height, memDC, 0, 0, win.SRCCOPY)
}

// winHandle owns one overlay window and its message pump thread.
type winHandle struct {
	mu       sync.Mutex
	hwnd     win.HWND
	done     chan struct{}
	excluded bool
}

// ApplyPrivacy asks the OS to exclude the window from screen capture.
// Unsupported OS versions ignore the request; the outcome is readable via
// CaptureExcluded.
func (h *winHandle) ApplyPrivacy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hwnd == 0 {
		return
	}
	h.excluded = setWindowDisplayAffinity(h.hwnd, wdaExcludeFromCapture)
}

// MakeClickThrough passes pointer events through to windows beneath and
// re-pins the window topmost, since an ex-style change can drop z-order.
func (h *winHandle) MakeClickThrough() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hwnd == 0 {
		return
	}
	style := win.GetWindowLong(h.hwnd, win.GWL_EXSTYLE)
	win.SetWindowLong(h.hwnd, win.GWL_EXSTYLE,
		style|win.WS_EX_LAYERED|win.WS_EX_TRANSPARENT|win.WS_EX_NOACTIVATE|win.WS_EX_TOOLWINDOW)
	win.SetWindowPos(h.hwnd, win.HWND_TOPMOST, 0, 0, 0, 0,
		win.SWP_NOMOVE|win.SWP_NOSIZE|win.SWP_NOACTIVATE)
}

// CaptureExcluded reports whether the OS accepted capture exclusion.
func (h *winHandle) CaptureExcluded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.excluded
}

// Valid reports whether the native window still exists.
func (h *winHandle) Valid() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hwnd != 0 && isWindow(h.hwnd)
}

// Destroy marshals teardown to the window thread and waits for its pump to
// exit. DestroyWindow must run on the creating thread, so teardown goes
// through WM_CLOSE instead of a direct cross-thread call.
func (h *winHandle) Destroy() error {
	h.mu.Lock()
	hwnd := h.hwnd
	h.hwnd = 0
	h.mu.Unlock()
	if hwnd == 0 {
		return nil
	}
	win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
	<-h.done
	return nil
}
