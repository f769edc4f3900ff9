// Package keymap resolves symbolic key identifiers to native virtual keys.
package keymap

import "strings"

// Virtual-key codes used by the default table. Values are Windows VK codes;
// the darwin shim translates them to CGKeyCodes through its own table.
const (
	VKBack     uint16 = 0x08
	VKTab      uint16 = 0x09
	VKReturn   uint16 = 0x0D
	VKShift    uint16 = 0x10
	VKControl  uint16 = 0x11
	VKMenu     uint16 = 0x12
	VKEscape   uint16 = 0x1B
	VKSpace    uint16 = 0x20
	VKPrior    uint16 = 0x21
	VKNext     uint16 = 0x22
	VKEnd      uint16 = 0x23
	VKHome     uint16 = 0x24
	VKLeft     uint16 = 0x25
	VKUp       uint16 = 0x26
	VKRight    uint16 = 0x27
	VKDown     uint16 = 0x28
	VKInsert   uint16 = 0x2D
	VKDelete   uint16 = 0x2E
	VKNumpad0  uint16 = 0x60
	VKNumpad1  uint16 = 0x61
	VKNumpad2  uint16 = 0x62
	VKNumpad3  uint16 = 0x63
	VKNumpad4  uint16 = 0x64
	VKNumpad5  uint16 = 0x65
	VKNumpad6  uint16 = 0x66
	VKNumpad7  uint16 = 0x67
	VKNumpad8  uint16 = 0x68
	VKNumpad9  uint16 = 0x69
	VKMultiply uint16 = 0x6A
	VKAdd      uint16 = 0x6B
	VKSubtract uint16 = 0x6D
	VKDecimal  uint16 = 0x6E
	VKDivide   uint16 = 0x6F
)

// Mapping is the native key code resolved for one symbolic key.
type Mapping struct {
	VK       uint16 `yaml:"vk"`
	Extended bool   `yaml:"extended"`
}

// Table resolves (key name, physical code) pairs to native mappings.
type Table struct {
	codes map[string]Mapping
	names map[string]Mapping
}

// Default returns a table covering navigation, editing, and numpad codes
// plus the modifier key names.
func Default() *Table {
	return &Table{
		codes: map[string]Mapping{
			// Navigation / editing. Arrow and nav cluster keys share VK
			// codes with the numpad and need the extended flag.
			"ArrowLeft":   {VK: VKLeft, Extended: true},
			"ArrowRight":  {VK: VKRight, Extended: true},
			"ArrowUp":     {VK: VKUp, Extended: true},
			"ArrowDown":   {VK: VKDown, Extended: true},
			"Home":        {VK: VKHome, Extended: true},
			"End":         {VK: VKEnd, Extended: true},
			"PageUp":      {VK: VKPrior, Extended: true},
			"PageDown":    {VK: VKNext, Extended: true},
			"Insert":      {VK: VKInsert, Extended: true},
			"Delete":      {VK: VKDelete, Extended: true},
			"Backspace":   {VK: VKBack},
			"Enter":       {VK: VKReturn},
			"NumpadEnter": {VK: VKReturn},
			"Tab":         {VK: VKTab},
			"Escape":      {VK: VKEscape},
			"Space":       {VK: VKSpace},

			// Numpad digits and operators.
			"Numpad0":        {VK: VKNumpad0},
			"Numpad1":        {VK: VKNumpad1},
			"Numpad2":        {VK: VKNumpad2},
			"Numpad3":        {VK: VKNumpad3},
			"Numpad4":        {VK: VKNumpad4},
			"Numpad5":        {VK: VKNumpad5},
			"Numpad6":        {VK: VKNumpad6},
			"Numpad7":        {VK: VKNumpad7},
			"Numpad8":        {VK: VKNumpad8},
			"Numpad9":        {VK: VKNumpad9},
			"NumpadAdd":      {VK: VKAdd},
			"NumpadSubtract": {VK: VKSubtract},
			"NumpadMultiply": {VK: VKMultiply},
			"NumpadDivide":   {VK: VKDivide, Extended: true},
			"NumpadDecimal":  {VK: VKDecimal},
		},
		names: map[string]Mapping{
			"Control": {VK: VKControl, Extended: true},
			"Shift":   {VK: VKShift},
			"Alt":     {VK: VKMenu, Extended: true},
		},
	}
}

// Resolve looks up the physical code first, then falls back to the symbolic
// name. Single alphanumerics map to the VK of their uppercase form. A miss
// returns false; callers treat unmapped keys as a no-op.
func (t *Table) Resolve(key, code string) (Mapping, bool) {
	if m, ok := t.codes[code]; ok {
		return m, true
	}
	if m, ok := t.names[key]; ok {
		return m, true
	}
	upper := strings.ToUpper(key)
	if len(upper) == 1 {
		ch := upper[0]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			return Mapping{VK: uint16(ch)}, true
		}
	}
	return Mapping{}, false
}

// Merge installs additional physical-code mappings, overriding defaults.
func (t *Table) Merge(overrides map[string]Mapping) {
	for code, m := range overrides {
		t.codes[code] = m
	}
}
