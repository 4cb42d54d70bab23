// File: server/server.go

// Package server exposes the simulation over HTTP and WebSocket: a state
// endpoint, a health check, and a subscribe socket that streams snapshots
// and accepts input commands.
package server

import (
	"github.com/lguibr/bollywood"
)

// Server holds the actor handles the HTTP handlers need.
type Server struct {
	engine         *bollywood.Engine
	matchPID       *bollywood.PID
	broadcasterPID *bollywood.PID
}

// NewServer wires a server to the running match and broadcaster actors.
func NewServer(engine *bollywood.Engine, matchPID, broadcasterPID *bollywood.PID) *Server {
	return &Server{
		engine:         engine,
		matchPID:       matchPID,
		broadcasterPID: broadcasterPID,
	}
}
