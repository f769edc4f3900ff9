//go:build windows

// Package inject synthesizes native mouse and keyboard input.
package inject

import (
	"log"
	"unicode/utf16"

	"github.com/lxn/win"
)

// TypeText types text into the focused window, one unicode key click per
// UTF-16 code unit.
func (w *WinInjector) TypeText(text string) error {
	for _, code := range utf16.Encode([]rune(text)) {
		batch := []win.INPUT{
			{Type: win.INPUT_KEYBOARD, Ki: win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE}},
			{Type: win.INPUT_KEYBOARD, Ki: win.KEYBDINPUT{WScan: code, DwFlags: win.KEYEVENTF_UNICODE | win.KEYEVENTF_KEYUP}},
		}
		if err := sendBatch(batch); err != nil {
			return err
		}
	}
	return nil
}

// KeyEvent synthesizes one key transition with its modifier envelope. An
// unmapped key is a no-op so an unrecognized key cannot break the rest of a
// key sequence.
func (w *WinInjector) KeyEvent(action, key, code string, mods Modifiers) error {
	m, ok := w.keys.Resolve(key, code)
	if !ok {
		log.Printf("inject: no mapping for key=%q code=%q", key, code)
		return nil
	}
	strokes, err := BuildKeyStrokes(action, m, mods)
	if err != nil {
		return err
	}
	inputs := make([]win.INPUT, 0, len(strokes))
	for _, s := range strokes {
		inputs = append(inputs, keyboardInput(s.Key.VK, s.Up, s.Key.Extended))
	}
	return sendBatch(inputs)
}
