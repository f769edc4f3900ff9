// Package monitor describes display geometry and enumeration.
package monitor

// Monitor describes a display and its bounds in screen pixels.
type Monitor struct {
	Index   int
	X       int
	Y       int
	W       int
	H       int
	Primary bool
}

// Primary returns the primary display, falling back to the first entry
// when no display carries the primary flag.
func Primary(list []Monitor) (Monitor, bool) {
	for _, m := range list {
		if m.Primary {
			return m, true
		}
	}
	if len(list) > 0 {
		return list[0], true
	}
	return Monitor{}, false
}
