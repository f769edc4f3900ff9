// Package control exposes the websocket command surface for input
// injection and privacy overlays.
package control

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/frudas24/veildesk/internal/inject"
	"github.com/frudas24/veildesk/internal/overlay"
	"github.com/frudas24/veildesk/internal/session"
)

var errInputDisabled = fmt.Errorf("input injection is disabled")

// Server handles websocket control commands.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	injector inject.Injector
	overlays *overlay.Manager
	conn     *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, injector inject.Injector, overlays *overlay.Manager) *Server {
	return &Server{
		session:  sess,
		injector: injector,
		overlays: overlays,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control commands until
// the client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		res := s.Handle(msg)
		if err := conn.WriteJSON(res); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// Handle dispatches a single command and returns its acknowledgement.
func (s *Server) Handle(msg Message) Result {
	err := s.dispatch(msg)
	if err != nil {
		log.Printf("control: %s failed: %v", msg.T, err)
	}
	return resultFor(msg.T, err)
}

// dispatch executes one command. Injection commands respect the session
// input gate; overlay commands do not, so the host can always cover or
// uncover the screen.
func (s *Server) dispatch(msg Message) error {
	switch msg.T {
	case CmdMouseMove:
		if !s.session.InputEnabled() {
			return errInputDisabled
		}
		return s.injector.MoveMouse(msg.X, msg.Y)
	case CmdMouseClick:
		if !s.session.InputEnabled() {
			return errInputDisabled
		}
		return s.injector.Click(msg.Button)
	case CmdKeyPress:
		if !s.session.InputEnabled() {
			return errInputDisabled
		}
		return s.injector.TypeText(msg.Text)
	case CmdKeyEvent:
		if !s.session.InputEnabled() {
			return errInputDisabled
		}
		return s.injector.KeyEvent(msg.Action, msg.Key, msg.Code, msg.Mods)
	case CmdCreateOverlay:
		return s.overlays.Create()
	case CmdDestroyOverlay:
		s.overlays.DestroyAll()
		return nil
	case CmdSetInput:
		if msg.Enabled == nil {
			return fmt.Errorf("missing enabled flag")
		}
		s.session.SetInputEnabled(*msg.Enabled)
		return nil
	default:
		return fmt.Errorf("unknown command %q", msg.T)
	}
}
