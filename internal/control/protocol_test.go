package control

import (
	"encoding/json"
	"fmt"
	"testing"
)

// TestMessage_Decode verifies a key_event payload decodes with its
// modifier flags.
func TestMessage_Decode(t *testing.T) {
	raw := `{"t":"key_event","action":"down","key":"a","code":"KeyA","mods":{"ctrl":true,"shift":true}}`
	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.T != CmdKeyEvent || msg.Action != "down" || msg.Key != "a" || msg.Code != "KeyA" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if !msg.Mods.Ctrl || !msg.Mods.Shift || msg.Mods.Alt || msg.Mods.Meta {
		t.Fatalf("unexpected modifiers: %+v", msg.Mods)
	}
}

// TestResultFor_Success verifies a nil error produces an ok result
// without an error string.
func TestResultFor_Success(t *testing.T) {
	res := resultFor(CmdMouseMove, nil)
	if !res.OK || res.Error != "" || res.Cmd != CmdMouseMove || res.T != "result" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// TestResultFor_Error verifies a failed command carries its message.
func TestResultFor_Error(t *testing.T) {
	res := resultFor(CmdMouseClick, fmt.Errorf("unknown button"))
	if res.OK || res.Error != "unknown button" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// TestResult_EncodeOmitsEmptyError verifies the acknowledgement wire form
// drops the error field on success.
func TestResult_EncodeOmitsEmptyError(t *testing.T) {
	data, err := json.Marshal(resultFor(CmdKeyPress, nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := decoded["error"]; present {
		t.Fatalf("expected error field to be omitted, got %s", data)
	}
}
