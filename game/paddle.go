// File: game/paddle.go
package game

import (
	"github.com/pong3d/pong3d/utils"
)

// ControlMode says who drives a paddle.
type ControlMode string

const (
	ControlHuman ControlMode = "human"
	ControlAI    ControlMode = "ai"
)

// MoveDir is a paddle movement command along its single free axis.
type MoveDir int

const (
	MoveNone MoveDir = iota
	MoveUp
	MoveDown
)

// Paddle is constrained to its vertical plane at X; only Y changes.
type Paddle struct {
	Side       Side        `json:"side"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	HalfHeight float64     `json:"halfHeight"`
	HalfWidth  float64     `json:"halfWidth"`
	Speed      float64     `json:"speed"`
	Control    ControlMode `json:"control"`

	dir MoveDir // currently held direction
}

// NewPaddle creates a centered paddle on the given side.
func NewPaddle(cfg utils.Config, side Side) Paddle {
	x := cfg.PaddleX
	if side == Left {
		x = -x
	}
	return Paddle{
		Side:       side,
		X:          x,
		Y:          0,
		HalfHeight: cfg.PaddleHalfHeight,
		HalfWidth:  cfg.PaddleHalfWidth,
		Speed:      cfg.PaddleSpeed,
		Control:    ControlHuman,
	}
}

// SetMove replaces the held direction. Contradictory input resolves by
// last-command-wins; MoveNone releases the paddle.
func (p *Paddle) SetMove(dir MoveDir) {
	p.dir = dir
}

// Dir returns the currently held direction.
func (p *Paddle) Dir() MoveDir {
	return p.dir
}

// Move advances the paddle along its axis by the held direction, clamped so
// the paddle never leaves the table.
func (p *Paddle) Move(dt, tableHalfHeight float64) {
	p.MoveAt(p.dir, p.Speed, dt, tableHalfHeight)
}

// MoveAt advances the paddle in an explicit direction at an explicit speed.
// The AI controller uses this to apply its difficulty-scaled speed without
// touching the held human direction.
func (p *Paddle) MoveAt(dir MoveDir, speed, dt, tableHalfHeight float64) {
	switch dir {
	case MoveUp:
		p.Y += speed * dt
	case MoveDown:
		p.Y -= speed * dt
	default:
		return
	}
	limit := tableHalfHeight - p.HalfHeight
	p.Y = utils.Clamp(p.Y, -limit, limit)
}

// Center returns the paddle to the middle of the table.
func (p *Paddle) Center() {
	p.Y = 0
	p.dir = MoveNone
}

// CoversY reports whether a ball at vertical position y overlaps the
// paddle's extent.
func (p *Paddle) CoversY(y float64) bool {
	return y >= p.Y-p.HalfHeight && y <= p.Y+p.HalfHeight
}

// Face returns the x coordinate of the paddle surface facing the table
// center, the plane the ball bounces off.
func (p *Paddle) Face() float64 {
	if p.Side == Left {
		return p.X + p.HalfWidth
	}
	return p.X - p.HalfWidth
}
