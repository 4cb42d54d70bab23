// File: game/messages.go
package game

import (
	"golang.org/x/net/websocket"
)

// --- MatchActor messages ---

// MatchTick signals the MatchActor to perform one simulation advance.
type MatchTick struct{}

// CommandMessage carries one parsed input command to the MatchActor.
type CommandMessage struct {
	Cmd Command
}

// GetSnapshotRequest asks the MatchActor for the latest snapshot (used via
// Ask by the HTTP state handler and by tests).
type GetSnapshotRequest struct{}

// SnapshotResponse is the reply to GetSnapshotRequest.
type SnapshotResponse struct {
	Snapshot Snapshot
}

// --- BroadcasterActor messages ---

// AddClient tells the Broadcaster to start sending snapshots to a
// connection.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient tells the Broadcaster to stop sending snapshots to a
// connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastSnapshotCommand pushes one tick's snapshot from the MatchActor
// to the BroadcasterActor.
type BroadcastSnapshotCommand struct {
	Snapshot Snapshot
}
