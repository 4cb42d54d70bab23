// File: server/handlers.go
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/net/websocket"

	"github.com/pong3d/pong3d/game"
)

// commandEnvelope is the wire form of one client input.
type commandEnvelope struct {
	Command string `json:"command"`
}

// HandleSubscribe registers the connection with the broadcaster so it
// receives every tick's snapshot, then reads input commands from it until
// it closes.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		connectionAddr := ws.RemoteAddr().String()
		fmt.Printf("HandleSubscribe: new connection from %s\n", connectionAddr)

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", connectionAddr, r, string(debug.Stack()))
			}
			s.engine.Send(s.broadcasterPID, game.RemoveClient{Conn: ws}, nil)
			_ = ws.Close()
		}()

		s.engine.Send(s.broadcasterPID, game.AddClient{Conn: ws}, nil)
		s.readLoop(ws)
	}
}

// readLoop parses command envelopes off one connection and forwards them to
// the match actor. Unknown commands are logged and dropped; the connection
// stays up.
func (s *Server) readLoop(conn *websocket.Conn) {
	connectionAddr := conn.RemoteAddr().String()

	for {
		var env commandEnvelope
		if err := websocket.JSON.Receive(conn, &env); err != nil {
			isClosedErr := err == io.EOF ||
				strings.Contains(err.Error(), "use of closed network connection") ||
				strings.Contains(err.Error(), "closed")
			if !isClosedErr {
				fmt.Printf("ReadLoop: error receiving from %s: %v\n", connectionAddr, err)
			}
			return
		}

		cmd, err := game.ParseCommand(env.Command)
		if err != nil {
			fmt.Printf("ReadLoop: dropping input from %s: %v\n", connectionAddr, err)
			continue
		}
		s.engine.Send(s.matchPID, game.CommandMessage{Cmd: cmd}, nil)
	}
}

// HandleState serves the current snapshot via HTTP GET by asking the match
// actor.
func (s *Server) HandleState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fmt.Printf("PANIC recovered in HandleState: %v\nStack trace:\n%s\n", rec, string(debug.Stack()))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		reply, err := s.engine.Ask(s.matchPID, game.GetSnapshotRequest{}, 2*time.Second)
		if err != nil {
			http.Error(w, "simulation unavailable", http.StatusServiceUnavailable)
			return
		}
		resp, ok := reply.(game.SnapshotResponse)
		if !ok {
			http.Error(w, "unexpected reply", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp.Snapshot); err != nil {
			fmt.Println("Error writing HTTP snapshot:", err)
		}
	}
}

// HandleHealth reports process liveness.
func (s *Server) HandleHealth() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
