//go:build windows

// Package monitor describes display geometry and enumeration.
package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// ListMonitors enumerates the attached displays. When enumeration yields
// nothing it falls back to the primary display metrics so a single-monitor
// host still reports usable bounds.
func ListMonitors() ([]Monitor, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(state.list) == 0 {
		w := int(win.GetSystemMetrics(win.SM_CXSCREEN))
		h := int(win.GetSystemMetrics(win.SM_CYSCREEN))
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("no monitors detected")
		}
		return []Monitor{{Index: 1, W: w, H: h, Primary: true}}, nil
	}
	return state.list, nil
}

type enumState struct {
	list  []Monitor
	index int
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	bounds := info.RcMonitor
	s.index++
	s.list = append(s.list, Monitor{
		Index:   s.index,
		X:       int(bounds.Left),
		Y:       int(bounds.Top),
		W:       int(bounds.Right - bounds.Left),
		H:       int(bounds.Bottom - bounds.Top),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}
