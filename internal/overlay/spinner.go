// Package overlay manages native capture-excluded, click-through windows.
package overlay

import "math"

// Angle returns the spinner indicator angle in degrees for a wall-clock
// time in milliseconds: one full revolution every 3.6 seconds.
func Angle(elapsedMS int64) int {
	return int((elapsedMS / 10) % 360)
}

// TipOffset returns the endpoint offset of the indicator line for a ring
// radius and an angle measured clockwise from 12 o'clock.
func TipOffset(radius, angleDeg int) (dx, dy int) {
	rad := float64(angleDeg) * math.Pi / 180
	dx = int(math.Round(float64(radius) * math.Sin(rad)))
	dy = -int(math.Round(float64(radius) * math.Cos(rad)))
	return dx, dy
}
