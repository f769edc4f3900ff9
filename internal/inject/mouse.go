//go:build windows

// Package inject synthesizes native mouse and keyboard input.
package inject

import "github.com/lxn/win"

// MoveMouse moves the pointer to an absolute screen pixel coordinate,
// rescaled against the primary display dimensions.
func (w *WinInjector) MoveMouse(x, y int) error {
	nx := normalizeAbs(x, int(win.GetSystemMetrics(win.SM_CXSCREEN)))
	ny := normalizeAbs(y, int(win.GetSystemMetrics(win.SM_CYSCREEN)))
	return sendBatch([]win.INPUT{
		mouseInput(win.MOUSEEVENTF_MOVE|win.MOUSEEVENTF_ABSOLUTE, nx, ny),
	})
}

// Click submits the down and up transitions as one batch so no observer
// sees a stuck button between the phases.
func (w *WinInjector) Click(button string) error {
	b, err := ParseButton(button)
	if err != nil {
		return err
	}
	var down, up uint32
	switch b {
	case ButtonRight:
		down, up = win.MOUSEEVENTF_RIGHTDOWN, win.MOUSEEVENTF_RIGHTUP
	case ButtonMiddle:
		down, up = win.MOUSEEVENTF_MIDDLEDOWN, win.MOUSEEVENTF_MIDDLEUP
	default:
		down, up = win.MOUSEEVENTF_LEFTDOWN, win.MOUSEEVENTF_LEFTUP
	}
	return sendBatch([]win.INPUT{
		mouseInput(down, 0, 0),
		mouseInput(up, 0, 0),
	})
}
