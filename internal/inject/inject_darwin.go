//go:build darwin

// Package inject synthesizes native mouse and keyboard input.
package inject

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices

#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <ApplicationServices/ApplicationServices.h>

static CGPoint currentCursor(void) {
	CGEventRef ev = CGEventCreate(NULL);
	CGPoint p = CGEventGetLocation(ev);
	CFRelease(ev);
	return p;
}

static void injectMouseMove(double x, double y) {
	CGEventRef ev = CGEventCreateMouseEvent(NULL, kCGEventMouseMoved, CGPointMake(x, y), kCGMouseButtonLeft);
	CGEventPost(kCGSessionEventTap, ev);
	CFRelease(ev);
}

static void injectMouseButton(int button, bool down) {
	CGMouseButton cgButton;
	CGEventType eventType;

	switch (button) {
	case 1:
		cgButton = kCGMouseButtonLeft;
		eventType = down ? kCGEventLeftMouseDown : kCGEventLeftMouseUp;
		break;
	case 2:
		cgButton = kCGMouseButtonRight;
		eventType = down ? kCGEventRightMouseDown : kCGEventRightMouseUp;
		break;
	case 3:
		cgButton = kCGMouseButtonCenter;
		eventType = down ? kCGEventOtherMouseDown : kCGEventOtherMouseUp;
		break;
	default:
		return;
	}

	CGEventRef ev = CGEventCreateMouseEvent(NULL, eventType, currentCursor(), cgButton);
	CGEventPost(kCGSessionEventTap, ev);
	CFRelease(ev);
}

static void injectKey(unsigned short keyCode, bool down) {
	CGEventRef ev = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)keyCode, down);
	CGEventPost(kCGSessionEventTap, ev);
	CFRelease(ev);
}

static void injectUnicode(unsigned short unit, bool down) {
	CGEventRef ev = CGEventCreateKeyboardEvent(NULL, (CGKeyCode)0, down);
	UniChar ch = unit;
	CGEventKeyboardSetUnicodeString(ev, 1, &ch);
	CGEventPost(kCGSessionEventTap, ev);
	CFRelease(ev);
}
*/
import "C"

import (
	"log"
	"unicode/utf16"

	"github.com/frudas24/veildesk/internal/keymap"
)

// macInjector posts CGEvents into the session event tap.
type macInjector struct {
	keys *keymap.Table
}

// NewInjector returns the CoreGraphics-backed injector.
func NewInjector(keys *keymap.Table) (Injector, error) {
	return &macInjector{keys: keys}, nil
}

// MoveMouse moves the pointer to an absolute screen pixel coordinate. The
// CGEvent API takes pixel coordinates directly; no rescaling is needed.
func (m *macInjector) MoveMouse(x, y int) error {
	C.injectMouseMove(C.double(x), C.double(y))
	return nil
}

// Click presses and releases one button at the current cursor position.
func (m *macInjector) Click(button string) error {
	b, err := ParseButton(button)
	if err != nil {
		return err
	}
	var native C.int
	switch b {
	case ButtonRight:
		native = 2
	case ButtonMiddle:
		native = 3
	default:
		native = 1
	}
	C.injectMouseButton(native, C.bool(true))
	C.injectMouseButton(native, C.bool(false))
	return nil
}

// TypeText types text into the focused window, one unicode key click per
// UTF-16 code unit.
func (m *macInjector) TypeText(text string) error {
	for _, unit := range utf16.Encode([]rune(text)) {
		C.injectUnicode(C.ushort(unit), C.bool(true))
		C.injectUnicode(C.ushort(unit), C.bool(false))
	}
	return nil
}

// KeyEvent synthesizes one key transition with its modifier envelope. Keys
// without a CGKeyCode translation are a no-op, matching the unmapped-key
// behavior of the Windows path.
func (m *macInjector) KeyEvent(action, key, code string, mods Modifiers) error {
	mapping, ok := m.keys.Resolve(key, code)
	if !ok {
		log.Printf("inject: no mapping for key=%q code=%q", key, code)
		return nil
	}
	strokes, err := BuildKeyStrokes(action, mapping, mods)
	if err != nil {
		return err
	}
	for _, s := range strokes {
		mac, ok := macKeyCode(s.Key.VK)
		if !ok {
			continue
		}
		C.injectKey(C.ushort(mac), C.bool(!s.Up))
	}
	return nil
}
