// Package control exposes the websocket command surface for input
// injection and privacy overlays.
package control

import "github.com/frudas24/veildesk/internal/inject"

// Command names accepted on the control socket.
const (
	CmdMouseMove      = "mouse_move"
	CmdMouseClick     = "mouse_click"
	CmdKeyPress       = "key_press"
	CmdKeyEvent       = "key_event"
	CmdCreateOverlay  = "create_privacy_overlay"
	CmdDestroyOverlay = "destroy_privacy_overlay"
	CmdSetInput       = "set_input_enabled"
)

// Message is a control websocket payload.
type Message struct {
	T       string           `json:"t"`
	X       int              `json:"x,omitempty"`
	Y       int              `json:"y,omitempty"`
	Button  string           `json:"button,omitempty"`
	Text    string           `json:"text,omitempty"`
	Action  string           `json:"action,omitempty"`
	Key     string           `json:"key,omitempty"`
	Code    string           `json:"code,omitempty"`
	Mods    inject.Modifiers `json:"mods"`
	Enabled *bool            `json:"enabled,omitempty"`
}

// Result acknowledges a single command. Error is empty when OK is true.
type Result struct {
	T     string `json:"t"`
	Cmd   string `json:"cmd"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// resultFor builds the acknowledgement for a processed command.
func resultFor(cmd string, err error) Result {
	res := Result{T: "result", Cmd: cmd, OK: err == nil}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
