//go:build !windows && !darwin

// Package monitor describes display geometry and enumeration.
package monitor

import "fmt"

// ListMonitors returns an error on platforms without display enumeration.
func ListMonitors() ([]Monitor, error) {
	return nil, fmt.Errorf("display enumeration is not supported on this platform")
}
