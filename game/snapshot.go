// File: game/snapshot.go
package game

// BallState is the wire form of the ball, flattened to primitives so the
// snapshot encoding stays stable for external renderers.
type BallState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Vz     float64 `json:"vz"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
}

// PaddleState is the wire form of one paddle.
type PaddleState struct {
	Side       Side        `json:"side"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	HalfHeight float64     `json:"halfHeight"`
	HalfWidth  float64     `json:"halfWidth"`
	Control    ControlMode `json:"control"`
}

// Snapshot is the read-only state emitted once per tick for rendering. It
// is a value copy: mutating match state after emission never changes an
// already-emitted snapshot. Events carried here occurred on this tick and
// are delivered exactly once.
type Snapshot struct {
	Tick       uint64      `json:"tick"`
	Phase      Phase       `json:"phase"`
	Ball       BallState   `json:"ball"`
	Left       PaddleState `json:"left"`
	Right      PaddleState `json:"right"`
	ScoreLeft  int         `json:"scoreLeft"`
	ScoreRight int         `json:"scoreRight"`
	Difficulty Difficulty  `json:"difficulty"`
	AIEnabled  bool        `json:"aiEnabled"`
	Trail      bool        `json:"trail"`
	Winner     Side        `json:"winner,omitempty"`
	Events     []Event     `json:"events,omitempty"`
}

// Snapshot copies the current state and drains the pending events, so each
// event appears in exactly one snapshot.
func (m *Match) Snapshot() Snapshot {
	events := m.events
	m.events = nil

	return Snapshot{
		Tick:  m.tick,
		Phase: m.Phase,
		Ball: BallState{
			X:      m.Ball.Pos.X,
			Y:      m.Ball.Pos.Y,
			Z:      m.Ball.Pos.Z,
			Vx:     m.Ball.Vel.X,
			Vy:     m.Ball.Vel.Y,
			Vz:     m.Ball.Vel.Z,
			Speed:  m.Ball.Speed,
			Radius: m.Ball.Radius,
		},
		Left:       paddleState(&m.Left),
		Right:      paddleState(&m.Right),
		ScoreLeft:  m.ScoreLeft,
		ScoreRight: m.ScoreRight,
		Difficulty: m.Difficulty,
		AIEnabled:  m.AIEnabled,
		Trail:      m.Trail,
		Winner:     m.Winner,
		Events:     events,
	}
}

func paddleState(p *Paddle) PaddleState {
	return PaddleState{
		Side:       p.Side,
		X:          p.X,
		Y:          p.Y,
		HalfHeight: p.HalfHeight,
		HalfWidth:  p.HalfWidth,
		Control:    p.Control,
	}
}
