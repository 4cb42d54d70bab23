// File: game/events.go
package game

// Side identifies a player, paddle, or scoring boundary.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// EventKind tags a simulation event for external consumers.
type EventKind string

const (
	EventServe      EventKind = "serve"
	EventWallBounce EventKind = "wallBounce"
	EventPaddleHit  EventKind = "paddleHit"
	EventGoal       EventKind = "goal"
	EventGameOver   EventKind = "gameOver"
)

// Event is a one-shot simulation occurrence. Events are collected during a
// tick and delivered in exactly one snapshot; the renderer uses them for
// flashes, hit sparks and score effects.
type Event struct {
	Kind EventKind `json:"kind"`
	// Side is the paddle that was hit, the scorer of a goal, the winner of
	// the match, or the side a serve travels toward, depending on Kind.
	Side Side `json:"side,omitempty"`
	// Offset is the normalized paddle contact offset in [-1, 1], set only
	// for paddle hits. Always encoded, so a center hit reads as offset 0
	// rather than a missing field.
	Offset float64 `json:"offset"`
}
