//go:build windows

// Package inject synthesizes native mouse and keyboard input.
package inject

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"

	"github.com/frudas24/veildesk/internal/keymap"
)

// WinInjector injects mouse and keyboard input through SendInput.
type WinInjector struct {
	keys *keymap.Table
}

// NewInjector returns the Windows input injector.
func NewInjector(keys *keymap.Table) (Injector, error) {
	return &WinInjector{keys: keys}, nil
}

// sendBatch submits every event in one SendInput call so observers never
// see a partially applied sequence.
func sendBatch(inputs []win.INPUT) error {
	if len(inputs) == 0 {
		return nil
	}
	sent := win.SendInput(uint32(len(inputs)), &inputs[0], int32(unsafe.Sizeof(inputs[0])))
	if int(sent) != len(inputs) {
		return fmt.Errorf("%w: SendInput accepted %d of %d events", ErrInjectionFailed, sent, len(inputs))
	}
	return nil
}

// mouseInput builds one mouse INPUT entry.
func mouseInput(flags uint32, dx, dy int32) win.INPUT {
	return win.INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:      dx,
			Dy:      dy,
			DwFlags: flags,
		},
	}
}

// keyboardInput builds one keyboard INPUT entry.
func keyboardInput(vk uint16, up, extended bool) win.INPUT {
	var flags uint32
	if up {
		flags |= win.KEYEVENTF_KEYUP
	}
	if extended {
		flags |= win.KEYEVENTF_EXTENDEDKEY
	}
	return win.INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki: win.KEYBDINPUT{
			WVk:     vk,
			DwFlags: flags,
		},
	}
}
