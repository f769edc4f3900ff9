//go:build darwin

// Package inject synthesizes native mouse and keyboard input.
package inject

import "github.com/frudas24/veildesk/internal/keymap"

// vkToMac translates the keymap's Windows virtual-key codes to macOS
// CGKeyCodes (kVK_ANSI_* layout).
var vkToMac = map[uint16]uint16{
	// Letters.
	'A': 0x00, 'B': 0x0B, 'C': 0x08, 'D': 0x02, 'E': 0x0E,
	'F': 0x03, 'G': 0x05, 'H': 0x04, 'I': 0x22, 'J': 0x26,
	'K': 0x28, 'L': 0x25, 'M': 0x2E, 'N': 0x2D, 'O': 0x1F,
	'P': 0x23, 'Q': 0x0C, 'R': 0x0F, 'S': 0x01, 'T': 0x11,
	'U': 0x20, 'V': 0x09, 'W': 0x0D, 'X': 0x07, 'Y': 0x10,
	'Z': 0x06,

	// Digit row.
	'0': 0x1D, '1': 0x12, '2': 0x13, '3': 0x14, '4': 0x15,
	'5': 0x17, '6': 0x16, '7': 0x1A, '8': 0x1C, '9': 0x19,

	// Editing and navigation.
	keymap.VKBack:   0x33,
	keymap.VKTab:    0x30,
	keymap.VKReturn: 0x24,
	keymap.VKEscape: 0x35,
	keymap.VKSpace:  0x31,
	keymap.VKPrior:  0x74,
	keymap.VKNext:   0x79,
	keymap.VKEnd:    0x77,
	keymap.VKHome:   0x73,
	keymap.VKLeft:   0x7B,
	keymap.VKUp:     0x7E,
	keymap.VKRight:  0x7C,
	keymap.VKDown:   0x7D,
	keymap.VKDelete: 0x75,

	// Numpad.
	keymap.VKNumpad0:  0x52,
	keymap.VKNumpad1:  0x53,
	keymap.VKNumpad2:  0x54,
	keymap.VKNumpad3:  0x55,
	keymap.VKNumpad4:  0x56,
	keymap.VKNumpad5:  0x57,
	keymap.VKNumpad6:  0x58,
	keymap.VKNumpad7:  0x59,
	keymap.VKNumpad8:  0x5B,
	keymap.VKNumpad9:  0x5C,
	keymap.VKMultiply: 0x43,
	keymap.VKAdd:      0x45,
	keymap.VKSubtract: 0x4E,
	keymap.VKDecimal:  0x41,
	keymap.VKDivide:   0x4B,

	// Modifiers.
	keymap.VKShift:   0x38,
	keymap.VKControl: 0x3B,
	keymap.VKMenu:    0x3A,
}

// macKeyCode translates a virtual-key code to a CGKeyCode.
func macKeyCode(vk uint16) (uint16, bool) {
	mac, ok := vkToMac[vk]
	return mac, ok
}
