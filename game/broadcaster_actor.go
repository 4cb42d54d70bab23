// File: game/broadcaster_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/lguibr/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor fans out per-tick snapshots to subscribed websocket
// clients. It never touches simulation state; it only forwards what the
// MatchActor hands it.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex // protects the clients map
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			clients: make(map[*websocket.Conn]bool),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			pidStr := "unknown"
			if a.selfPID != nil {
				pidStr = a.selfPID.String()
			}
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", pidStr, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddClient:
		if msg.Conn != nil {
			a.mu.Lock()
			a.clients[msg.Conn] = true
			a.mu.Unlock()
		}

	case RemoveClient:
		if msg.Conn != nil {
			a.mu.Lock()
			delete(a.clients, msg.Conn)
			a.mu.Unlock()
		}

	case BroadcastSnapshotCommand:
		a.broadcastSnapshot(msg.Snapshot)

	case bollywood.Stopping:
		a.closeAllConnections()

	case bollywood.Stopped:

	default:
		fmt.Printf("BroadcasterActor %s: unknown message type %T\n", a.selfPID, msg)
	}
}

// broadcastSnapshot sends the snapshot to every registered client using
// JSON encoding, pruning connections that turn out to be dead.
func (a *BroadcasterActor) broadcastSnapshot(snap Snapshot) {
	a.mu.RLock()
	clientsToSend := make([]*websocket.Conn, 0, len(a.clients))
	for conn := range a.clients {
		clientsToSend = append(clientsToSend, conn)
	}
	a.mu.RUnlock()

	if len(clientsToSend) == 0 {
		return
	}

	disconnected := []*websocket.Conn{}
	for _, ws := range clientsToSend {
		if err := websocket.JSON.Send(ws, &snap); err != nil {
			if isClosedConnError(err) {
				disconnected = append(disconnected, ws)
			} else {
				fmt.Printf("ERROR: BroadcasterActor %s: failed to write snapshot to client %s: %v\n", a.selfPID, ws.RemoteAddr(), err)
			}
		}
	}

	if len(disconnected) > 0 {
		a.mu.Lock()
		for _, ws := range disconnected {
			delete(a.clients, ws)
		}
		a.mu.Unlock()
	}
}

// closeAllConnections closes and forgets every managed connection.
func (a *BroadcasterActor) closeAllConnections() {
	a.mu.Lock()
	clientsToClose := make([]*websocket.Conn, 0, len(a.clients))
	for conn := range a.clients {
		clientsToClose = append(clientsToClose, conn)
	}
	a.clients = make(map[*websocket.Conn]bool)
	a.mu.Unlock()

	for _, ws := range clientsToClose {
		_ = ws.Close()
	}
}

func isClosedConnError(err error) bool {
	s := err.Error()
	return strings.Contains(s, "use of closed network connection") ||
		strings.Contains(s, "broken pipe") ||
		strings.Contains(s, "connection reset by peer") ||
		strings.Contains(s, "EOF") ||
		strings.Contains(s, "write: connection timed out")
}
