//go:build darwin

// Package monitor describes display geometry and enumeration.
package monitor

/*
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>
*/
import "C"

import "fmt"

// maxDisplays bounds the CGGetActiveDisplayList query.
const maxDisplays = 16

// ListMonitors enumerates the active displays through CoreGraphics.
func ListMonitors() ([]Monitor, error) {
	var ids [maxDisplays]C.CGDirectDisplayID
	var count C.uint32_t
	if C.CGGetActiveDisplayList(maxDisplays, &ids[0], &count) != C.kCGErrorSuccess {
		return nil, fmt.Errorf("CGGetActiveDisplayList failed")
	}
	if count == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}

	main := C.CGMainDisplayID()
	list := make([]Monitor, 0, int(count))
	for i := 0; i < int(count); i++ {
		bounds := C.CGDisplayBounds(ids[i])
		list = append(list, Monitor{
			Index:   i + 1,
			X:       int(bounds.origin.x),
			Y:       int(bounds.origin.y),
			W:       int(bounds.size.width),
			H:       int(bounds.size.height),
			Primary: ids[i] == main,
		})
	}
	return list, nil
}
