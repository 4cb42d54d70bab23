// File: game/physics_test.go
package game

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pong3d/pong3d/utils"
)

func physicsFixture() (utils.Config, *Physics, Paddle, Paddle) {
	cfg := utils.DefaultConfig()
	return cfg, NewPhysics(cfg), NewPaddle(cfg, Left), NewPaddle(cfg, Right)
}

func eventKinds(events []Event) map[EventKind]int {
	kinds := map[EventKind]int{}
	for _, ev := range events {
		kinds[ev.Kind]++
	}
	return kinds
}

func TestPhysicsWallReflection(t *testing.T) {
	cfg, phys, left, right := physicsFixture()

	ball := Ball{
		Pos:    r3.Vec{X: 0, Y: 0.97},
		Vel:    r3.Vec{X: 0, Y: 0.8},
		Speed:  0.8,
		Radius: cfg.BallRadius,
	}

	events := phys.Step(0.1, &ball, &left, &right)

	if eventKinds(events)[EventWallBounce] != 1 {
		t.Fatalf("Expected exactly one wall bounce, got events %v", events)
	}
	if ball.Vel.Y >= 0 {
		t.Errorf("Expected vy reflected downward, got %g", ball.Vel.Y)
	}
	bound := cfg.TableHalfHeight - ball.Radius
	if ball.Pos.Y > bound || ball.Pos.Y < -bound {
		t.Errorf("Expected ball inside [-%g, %g], got y=%g", bound, bound, ball.Pos.Y)
	}
	// Reflection preserves the scalar speed.
	if got := math.Hypot(ball.Vel.X, ball.Vel.Y); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected |vel|=0.8 after bounce, got %g", got)
	}
}

func TestPhysicsCenterPaddleHit(t *testing.T) {
	cfg, phys, left, right := physicsFixture()

	ball := Ball{
		Pos:    r3.Vec{X: 0.85, Y: 0},
		Vel:    r3.Vec{X: 0.8, Y: 0},
		Speed:  0.8,
		Radius: cfg.BallRadius,
	}

	events := phys.Step(0.1, &ball, &left, &right)

	var hit *Event
	for i := range events {
		if events[i].Kind == EventPaddleHit {
			hit = &events[i]
		}
	}
	if hit == nil {
		t.Fatalf("Expected a paddle hit, got events %v", events)
	}
	if hit.Side != Right {
		t.Errorf("Expected hit on right paddle, got %s", hit.Side)
	}
	if hit.Offset != 0 {
		t.Errorf("Expected center hit offset 0, got %g", hit.Offset)
	}
	if ball.Vel.X >= 0 {
		t.Errorf("Expected travel direction reversed, got vx=%g", ball.Vel.X)
	}
	if math.Abs(ball.Vel.Y) > 1e-9 {
		t.Errorf("Expected no deflection on center hit, got vy=%g", ball.Vel.Y)
	}
	want := 0.8 + cfg.BallSpeedIncrement
	if math.Abs(ball.Speed-want) > 1e-9 {
		t.Errorf("Expected speed %g after hit, got %g", want, ball.Speed)
	}
}

func TestPhysicsDeflectionGrowsWithOffset(t *testing.T) {
	cfg, phys, left, right := physicsFixture()

	offsets := []float64{0.25, 0.5, 1.0}
	var prevAngle float64

	for _, offset := range offsets {
		ball := Ball{
			Pos:    r3.Vec{X: 0.85, Y: offset * cfg.PaddleHalfHeight},
			Vel:    r3.Vec{X: 0.8, Y: 0},
			Speed:  0.8,
			Radius: cfg.BallRadius,
		}
		l, r := left, right

		events := phys.Step(0.1, &ball, &l, &r)

		kinds := eventKinds(events)
		if kinds[EventPaddleHit] != 1 {
			t.Fatalf("offset %g: expected one paddle hit, got %v", offset, events)
		}
		angle := math.Atan2(math.Abs(ball.Vel.Y), math.Abs(ball.Vel.X))
		if angle <= prevAngle {
			t.Errorf("offset %g: expected deflection angle to grow, got %g after %g", offset, angle, prevAngle)
		}
		if ball.Vel.Y <= 0 {
			t.Errorf("offset %g: expected upward deflection for an upper-half hit, got vy=%g", offset, ball.Vel.Y)
		}
		prevAngle = angle
	}

	// The tip hit deflects at exactly the configured maximum.
	wantMax := cfg.MaxDeflectionDeg * math.Pi / 180
	if math.Abs(prevAngle-wantMax) > 1e-6 {
		t.Errorf("Expected tip deflection %g rad, got %g", wantMax, prevAngle)
	}
}

func TestPhysicsSpeedCap(t *testing.T) {
	cfg, phys, left, right := physicsFixture()

	ball := Ball{
		Pos:    r3.Vec{X: 0.85, Y: 0},
		Vel:    r3.Vec{X: cfg.BallMaxSpeed, Y: 0},
		Speed:  cfg.BallMaxSpeed,
		Radius: cfg.BallRadius,
	}

	events := phys.Step(0.05, &ball, &left, &right)

	if eventKinds(events)[EventPaddleHit] != 1 {
		t.Fatalf("Expected one paddle hit, got %v", events)
	}
	if ball.Speed > cfg.BallMaxSpeed {
		t.Errorf("Expected speed capped at %g, got %g", cfg.BallMaxSpeed, ball.Speed)
	}
}

func TestPhysicsGoal(t *testing.T) {
	cfg, phys, left, right := physicsFixture()
	// Move the right paddle away so the ball slips past it.
	right.Y = -0.6

	ball := Ball{
		Pos:    r3.Vec{X: 0.95, Y: 0.5},
		Vel:    r3.Vec{X: 0.8, Y: 0},
		Speed:  0.8,
		Radius: cfg.BallRadius,
	}

	events := phys.Step(0.1, &ball, &left, &right)

	if len(events) == 0 {
		t.Fatal("Expected a goal event, got none")
	}
	last := events[len(events)-1]
	if last.Kind != EventGoal {
		t.Fatalf("Expected stepping to stop at the goal, got trailing event %v", last)
	}
	if last.Side != Left {
		t.Errorf("Expected left to score when the ball exits right, got %s", last.Side)
	}
}

func TestPhysicsFastBallDoesNotTunnel(t *testing.T) {
	cfg, phys, left, right := physicsFixture()

	// Max speed and the largest permitted dt is the worst case for
	// pass-through.
	ball := Ball{
		Pos:    r3.Vec{X: 0.8, Y: 0},
		Vel:    r3.Vec{X: cfg.BallMaxSpeed, Y: 0},
		Speed:  cfg.BallMaxSpeed,
		Radius: cfg.BallRadius,
	}

	events := phys.Step(cfg.MaxDelta, &ball, &left, &right)

	kinds := eventKinds(events)
	if kinds[EventPaddleHit] != 1 {
		t.Fatalf("Expected the paddle to intercept, got %v", events)
	}
	if kinds[EventGoal] != 0 {
		t.Errorf("Expected no goal on an intercepted ball, got %v", events)
	}
	if ball.Vel.X >= 0 {
		t.Errorf("Expected ball reflected back, got vx=%g", ball.Vel.X)
	}
}

func TestPhysicsCornerResolvesWallThenPaddle(t *testing.T) {
	cfg, phys, left, right := physicsFixture()
	right.Y = cfg.TableHalfHeight - right.HalfHeight // parked at the top

	ball := Ball{
		Pos:    r3.Vec{X: 0.86, Y: 0.975},
		Vel:    r3.Vec{X: 0.397, Y: 0.695},
		Speed:  0.8,
		Radius: cfg.BallRadius,
	}

	events := phys.Step(0.1, &ball, &left, &right)

	kinds := eventKinds(events)
	if kinds[EventWallBounce] < 1 || kinds[EventPaddleHit] < 1 {
		t.Fatalf("Expected both a wall bounce and a paddle hit, got %v", events)
	}
	bound := cfg.TableHalfHeight - ball.Radius
	if ball.Pos.Y > bound || ball.Pos.Y < -bound {
		t.Errorf("Expected ball inside the table, got y=%g", ball.Pos.Y)
	}
	if kinds[EventGoal] != 0 {
		t.Errorf("Expected no goal in the corner exchange, got %v", events)
	}
}
