// File: game/physics.go
package game

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pong3d/pong3d/utils"
)

// Physics advances the ball and resolves collisions against the table walls
// and both paddles. It never mutates scores or match phase; goals are
// reported as events for the match state machine to act on.
type Physics struct {
	cfg utils.Config
}

func NewPhysics(cfg utils.Config) *Physics {
	return &Physics{cfg: cfg}
}

// Step integrates the ball over dt using Euler sub-steps and returns the
// collision events that occurred. Each sub-step resolves walls first, then
// paddles on the reflected trajectory, then goals, so a ball pinched in a
// corner cannot escape the table. Stepping stops at the first goal; the
// rally is over and the caller re-serves.
func (e *Physics) Step(dt float64, ball *Ball, left, right *Paddle) []Event {
	var events []Event

	h := dt / float64(e.cfg.SubSteps)
	for i := 0; i < e.cfg.SubSteps; i++ {
		prevX := ball.Pos.X
		ball.Pos = r3.Add(ball.Pos, r3.Scale(h, ball.Vel))

		if ev, ok := e.collideWalls(ball); ok {
			events = append(events, ev)
		}
		if ev, ok := e.collidePaddle(ball, prevX, left); ok {
			events = append(events, ev)
		} else if ev, ok := e.collidePaddle(ball, prevX, right); ok {
			events = append(events, ev)
		}
		if ev, ok := e.checkGoal(ball); ok {
			events = append(events, ev)
			return events
		}
	}
	return events
}

// collideWalls reflects the vertical velocity component off the top and
// bottom walls, clamping the ball back inside so it cannot tunnel out on
// the reflection step.
func (e *Physics) collideWalls(ball *Ball) (Event, bool) {
	bound := e.cfg.TableHalfHeight - ball.Radius
	switch {
	case ball.Pos.Y > bound && ball.Vel.Y > 0:
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = bound
	case ball.Pos.Y < -bound && ball.Vel.Y < 0:
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = -bound
	default:
		return Event{}, false
	}
	return Event{Kind: EventWallBounce}, true
}

// collidePaddle detects the ball's leading edge crossing the paddle face
// within this sub-step. On a hit the travel direction reverses and the
// outgoing angle is a linear function of the normalized contact offset, up
// to MaxDeflectionDeg at the paddle tip; the scalar speed grows by the
// configured increment, capped at the maximum.
func (e *Physics) collidePaddle(ball *Ball, prevX float64, paddle *Paddle) (Event, bool) {
	face := paddle.Face()

	var crossed bool
	if paddle.Side == Left {
		crossed = ball.Vel.X < 0 &&
			prevX-ball.Radius > face &&
			ball.Pos.X-ball.Radius <= face
	} else {
		crossed = ball.Vel.X > 0 &&
			prevX+ball.Radius < face &&
			ball.Pos.X+ball.Radius >= face
	}
	if !crossed || !paddle.CoversY(ball.Pos.Y) {
		return Event{}, false
	}

	offset := utils.Clamp((ball.Pos.Y-paddle.Y)/paddle.HalfHeight, -1, 1)
	angle := offset * e.cfg.MaxDeflectionDeg * math.Pi / 180

	ball.Accelerate(e.cfg.BallSpeedIncrement, e.cfg.BallMaxSpeed)

	dx := math.Cos(angle)
	if paddle.Side == Right {
		dx = -dx
	}
	ball.SetDirection(dx, math.Sin(angle))

	// Park the ball on the contact plane so the same hit cannot re-trigger
	// on the next sub-step.
	if paddle.Side == Left {
		ball.Pos.X = face + ball.Radius
	} else {
		ball.Pos.X = face - ball.Radius
	}

	return Event{Kind: EventPaddleHit, Side: paddle.Side, Offset: offset}, true
}

// checkGoal reports a goal when the ball crosses a scoring boundary without
// having been intercepted. The event carries the scoring side.
func (e *Physics) checkGoal(ball *Ball) (Event, bool) {
	switch {
	case ball.Pos.X-ball.Radius < -e.cfg.TableHalfWidth:
		return Event{Kind: EventGoal, Side: Right}, true
	case ball.Pos.X+ball.Radius > e.cfg.TableHalfWidth:
		return Event{Kind: EventGoal, Side: Left}, true
	}
	return Event{}, false
}
