// Package inject synthesizes native mouse and keyboard input.
package inject

import (
	"fmt"

	"github.com/frudas24/veildesk/internal/keymap"
)

// Stroke is one native key transition planned for submission.
type Stroke struct {
	Key keymap.Mapping
	Up  bool
}

// Modifier mappings emitted around a primary key. Meta is accepted on the
// wire but never synthesized; the native pipelines only arm ctrl/shift/alt.
var (
	modCtrl  = keymap.Mapping{VK: keymap.VKControl, Extended: true}
	modShift = keymap.Mapping{VK: keymap.VKShift}
	modAlt   = keymap.Mapping{VK: keymap.VKMenu, Extended: true}
)

// BuildKeyStrokes expands one key event into ordered native strokes. Active
// modifiers go down as ctrl, shift, alt before the key's down event; they
// come up in reverse after the key's up event, so down/up nesting balances.
// The receiving pipeline reads modifier state from events already enqueued
// when the primary key event is processed.
func BuildKeyStrokes(action string, key keymap.Mapping, mods Modifiers) ([]Stroke, error) {
	switch action {
	case KeyDown, KeyUp:
	default:
		return nil, fmt.Errorf("unknown key action %q", action)
	}

	up := action == KeyUp
	active := activeModifiers(mods)
	strokes := make([]Stroke, 0, len(active)+1)

	if !up {
		for _, m := range active {
			strokes = append(strokes, Stroke{Key: m})
		}
	}
	strokes = append(strokes, Stroke{Key: key, Up: up})
	if up {
		for i := len(active) - 1; i >= 0; i-- {
			strokes = append(strokes, Stroke{Key: active[i], Up: true})
		}
	}
	return strokes, nil
}

// activeModifiers returns the armed modifiers in down order.
func activeModifiers(mods Modifiers) []keymap.Mapping {
	var out []keymap.Mapping
	if mods.Ctrl {
		out = append(out, modCtrl)
	}
	if mods.Shift {
		out = append(out, modShift)
	}
	if mods.Alt {
		out = append(out, modAlt)
	}
	return out
}
