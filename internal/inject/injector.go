// Package inject synthesizes native mouse and keyboard input.
package inject

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownButton indicates an unrecognized mouse button name.
var ErrUnknownButton = errors.New("unknown mouse button")

// ErrInjectionFailed indicates the native input queue rejected events.
var ErrInjectionFailed = errors.New("input injection failed")

// ErrUnsupported indicates input injection is not available on this platform.
var ErrUnsupported = errors.New("input injection is not supported on this platform")

// KeyDown is the key_event action for a key press.
const KeyDown = "down"

// KeyUp is the key_event action for a key release.
const KeyUp = "up"

// Modifiers holds the modifier state accompanying a key event. All sixteen
// combinations are legal.
type Modifiers struct {
	Alt   bool `json:"alt"`
	Ctrl  bool `json:"ctrl"`
	Shift bool `json:"shift"`
	Meta  bool `json:"meta"`
}

// Button identifies a mouse button.
type Button int

// Mouse buttons accepted by Click.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// ParseButton maps a case-insensitive button name to a Button.
func ParseButton(name string) (Button, error) {
	switch strings.ToLower(name) {
	case "left":
		return ButtonLeft, nil
	case "right":
		return ButtonRight, nil
	case "middle":
		return ButtonMiddle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownButton, name)
	}
}

// Injector translates symbolic input requests into native OS input events.
type Injector interface {
	// MoveMouse moves the pointer to an absolute screen pixel coordinate.
	MoveMouse(x, y int) error
	// Click presses and releases one button; left, right, or middle.
	Click(button string) error
	// TypeText synthesizes one key click per character of text.
	TypeText(text string) error
	// KeyEvent synthesizes a single key transition with modifiers.
	KeyEvent(action, key, code string, mods Modifiers) error
}

// normalizeAbs rescales a pixel coordinate into the 0..65535 absolute range
// the native pointer API expects. An off-by-one here puts the cursor on the
// wrong pixel, so the mapping rounds rather than truncates.
func normalizeAbs(v, span int) int32 {
	if span <= 0 {
		return 0
	}
	return int32(math.Round(float64(v) / float64(span) * 65535))
}
