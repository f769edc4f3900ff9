// Package testutil provides fakes shared by boundary-level tests.
package testutil

import (
	"sync"

	"github.com/frudas24/veildesk/internal/inject"
)

// Call records a single injector invocation.
type Call struct {
	Op     string
	X, Y   int
	Button string
	Text   string
	Action string
	Key    string
	Code   string
	Mods   inject.Modifiers
}

// FakeInjector records calls and returns a configurable error.
type FakeInjector struct {
	mu    sync.Mutex
	calls []Call

	// Err is returned by every method when set.
	Err error
}

// MoveMouse records an absolute mouse move.
func (f *FakeInjector) MoveMouse(x, y int) error {
	f.record(Call{Op: "move", X: x, Y: y})
	return f.Err
}

// Click records a button click.
func (f *FakeInjector) Click(button string) error {
	f.record(Call{Op: "click", Button: button})
	return f.Err
}

// TypeText records typed text.
func (f *FakeInjector) TypeText(text string) error {
	f.record(Call{Op: "type", Text: text})
	return f.Err
}

// KeyEvent records a key transition.
func (f *FakeInjector) KeyEvent(action, key, code string, mods inject.Modifiers) error {
	f.record(Call{Op: "key", Action: action, Key: key, Code: code, Mods: mods})
	return f.Err
}

// Calls returns a copy of the recorded calls.
func (f *FakeInjector) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeInjector) record(c Call) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}
