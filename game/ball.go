// File: game/ball.go
package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pong3d/pong3d/utils"
)

// Ball is the single moving entity of a match. Position and velocity live
// in the table plane (Z is carried for the renderer but stays zero). Speed
// is the scalar magnitude of Vel; it is kept separately because it only
// resets on serve and only grows on paddle hits.
type Ball struct {
	Pos    r3.Vec  `json:"pos"`
	Vel    r3.Vec  `json:"vel"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
}

// NewBall places a ball at the table center, launched toward the given side
// at the configured serve angle. verticalUp picks which half of the table
// the ball climbs toward first.
func NewBall(cfg utils.Config, toward Side, verticalUp bool) Ball {
	angle := cfg.ServeAngleDeg * math.Pi / 180
	vx := cfg.BallBaseSpeed * math.Cos(angle)
	vy := cfg.BallBaseSpeed * math.Sin(angle)
	if toward == Left {
		vx = -vx
	}
	if !verticalUp {
		vy = -vy
	}
	return Ball{
		Pos:    r3.Vec{},
		Vel:    r3.Vec{X: vx, Y: vy},
		Speed:  cfg.BallBaseSpeed,
		Radius: cfg.BallRadius,
	}
}

// Heading returns the side the ball is currently travelling toward, or
// false when it has no horizontal motion.
func (b *Ball) Heading() (Side, bool) {
	switch {
	case b.Vel.X > 0:
		return Right, true
	case b.Vel.X < 0:
		return Left, true
	}
	return Left, false
}

// SetDirection points the velocity along the unit vector (dx, dy) scaled by
// the ball's current scalar speed.
func (b *Ball) SetDirection(dx, dy float64) {
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	b.Vel = r3.Vec{X: dx / n * b.Speed, Y: dy / n * b.Speed}
}

// Accelerate raises the scalar speed by inc, capped at max, and rescales
// the velocity to match. Speed never decreases within a rally.
func (b *Ball) Accelerate(inc, max float64) {
	target := math.Min(b.Speed+inc, max)
	if b.Speed <= 0 {
		b.Speed = target
		return
	}
	scale := target / b.Speed
	b.Vel = r3.Scale(scale, b.Vel)
	b.Speed = target
}
