// File: game/commands.go
package game

import "fmt"

// Command is a discrete input event. Commands are produced asynchronously
// by the input surface, queued in the tick driver's mailbox, and applied by
// the match between ticks; they never mutate state directly.
type Command interface {
	isCommand()
}

// MovePaddle starts or stops movement of one paddle. Dir MoveNone releases
// the paddle; contradictory up/down input resolves by last-command-wins.
type MovePaddle struct {
	Side Side
	Dir  MoveDir
}

// TogglePause flips Playing <-> Paused. Ignored in any other phase.
type TogglePause struct{}

// ResetMatch restores scores, paddles, and ball to their starting state
// while preserving difficulty, AI mode, and the trail preference.
type ResetMatch struct{}

// ToggleAI switches the right paddle between human and AI control without
// moving it.
type ToggleAI struct{}

// CycleDifficulty rotates easy -> medium -> hard -> easy. The change is
// picked up on the next AI tick; a ball already in flight is unaffected.
type CycleDifficulty struct{}

// SetDifficulty selects a difficulty directly. Unknown values are rejected
// at the boundary and the previous setting is retained.
type SetDifficulty struct {
	Difficulty Difficulty
}

// ToggleTrail flips the trail preference. Purely a renderer signal carried
// through the snapshot; the simulation never reads it.
type ToggleTrail struct{}

func (MovePaddle) isCommand()      {}
func (TogglePause) isCommand()     {}
func (ResetMatch) isCommand()      {}
func (ToggleAI) isCommand()        {}
func (CycleDifficulty) isCommand() {}
func (SetDifficulty) isCommand()   {}
func (ToggleTrail) isCommand()     {}

// ParseCommand maps a wire command name to a Command.
func ParseCommand(name string) (Command, error) {
	switch name {
	case "leftUp":
		return MovePaddle{Side: Left, Dir: MoveUp}, nil
	case "leftDown":
		return MovePaddle{Side: Left, Dir: MoveDown}, nil
	case "leftStop":
		return MovePaddle{Side: Left, Dir: MoveNone}, nil
	case "rightUp":
		return MovePaddle{Side: Right, Dir: MoveUp}, nil
	case "rightDown":
		return MovePaddle{Side: Right, Dir: MoveDown}, nil
	case "rightStop":
		return MovePaddle{Side: Right, Dir: MoveNone}, nil
	case "pause":
		return TogglePause{}, nil
	case "reset":
		return ResetMatch{}, nil
	case "toggleAI":
		return ToggleAI{}, nil
	case "cycleDifficulty":
		return CycleDifficulty{}, nil
	case "toggleTrail":
		return ToggleTrail{}, nil
	}
	return nil, fmt.Errorf("unknown command %q", name)
}
