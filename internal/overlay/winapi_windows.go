//go:build windows

// Package overlay manages native capture-excluded, click-through windows.
package overlay

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// Procs that github.com/lxn/win does not export.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procSetWindowDisplayAffinity = user32.NewProc("SetWindowDisplayAffinity")
	procIsWindow                 = user32.NewProc("IsWindow")
	procDrawTextW                = user32.NewProc("DrawTextW")
	procCreateSolidBrush         = gdi32.NewProc("CreateSolidBrush")
	procCreatePen                = gdi32.NewProc("CreatePen")
	procEllipse                  = gdi32.NewProc("Ellipse")
	procMoveToEx                 = gdi32.NewProc("MoveToEx")
	procLineTo                   = gdi32.NewProc("LineTo")
)

const (
	// WDA_EXCLUDEFROMCAPTURE, Windows 10 2004+. Earlier versions reject it.
	wdaExcludeFromCapture = 0x00000011

	psSolid        = 0
	stockNullBrush = 5

	dtCenter     = 0x0001
	dtVCenter    = 0x0004
	dtSingleLine = 0x0020
)

// setWindowDisplayAffinity asks the OS to exclude the window from capture
// and reports whether the request was accepted.
func setWindowDisplayAffinity(hwnd win.HWND, affinity uint32) bool {
	ret, _, _ := procSetWindowDisplayAffinity.Call(uintptr(hwnd), uintptr(affinity))
	return ret != 0
}

// isWindow reports whether a native window handle refers to a live window.
func isWindow(hwnd win.HWND) bool {
	ret, _, _ := procIsWindow.Call(uintptr(hwnd))
	return ret != 0
}

// drawTextCentered draws UTF-16 text centered in rect on one line.
func drawTextCentered(hdc win.HDC, text []uint16, rect *win.RECT) {
	n := len(text)
	for n > 0 && text[n-1] == 0 {
		n--
	}
	if n == 0 {
		return
	}
	procDrawTextW.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(&text[0])),
		uintptr(n),
		uintptr(unsafe.Pointer(rect)),
		dtCenter|dtVCenter|dtSingleLine)
}

// createSolidBrush creates a solid brush of the given 0x00BBGGRR color.
func createSolidBrush(color uint32) win.HBRUSH {
	ret, _, _ := procCreateSolidBrush.Call(uintptr(color))
	return win.HBRUSH(ret)
}

// createPen creates a pen for the spinner outline.
func createPen(style, width int, color uint32) win.HPEN {
	ret, _, _ := procCreatePen.Call(uintptr(style), uintptr(width), uintptr(color))
	return win.HPEN(ret)
}

// ellipse outlines an ellipse with the current pen.
func ellipse(hdc win.HDC, left, top, right, bottom int32) {
	procEllipse.Call(uintptr(hdc), uintptr(left), uintptr(top), uintptr(right), uintptr(bottom))
}

// moveTo moves the current drawing position.
func moveTo(hdc win.HDC, x, y int32) {
	procMoveToEx.Call(uintptr(hdc), uintptr(x), uintptr(y), 0)
}

// lineTo draws a line from the current position with the current pen.
func lineTo(hdc win.HDC, x, y int32) {
	procLineTo.Call(uintptr(hdc), uintptr(x), uintptr(y))
}
