// File: game/match.go
package game

import (
	"fmt"
	"math/rand"

	"github.com/pong3d/pong3d/utils"
)

// Phase is the match state machine position.
type Phase string

const (
	PhaseServing Phase = "serving"
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
	PhaseEnded   Phase = "ended"
)

// Match owns the entire simulation state: ball, paddles, scores, phase,
// and the AI controller. It is single-threaded by design; the tick driver
// is the only caller of Apply and Advance, and rendering only ever sees
// the snapshots it emits.
//
// Pause semantics: Paused freezes the ball and the AI but held paddle
// directions keep applying, so players can reposition during a pause.
type Match struct {
	cfg     utils.Config
	physics *Physics
	ai      *AIController

	Ball  Ball
	Left  Paddle
	Right Paddle

	ScoreLeft  int
	ScoreRight int
	Phase      Phase
	Difficulty Difficulty
	AIEnabled  bool
	Trail      bool
	Winner     Side // set only in PhaseEnded

	serveToward Side
	serveCount  int
	tick        uint64
	events      []Event
}

// NewMatch creates a match in the Serving phase with both paddles centered.
// The random source feeds AI prediction error only; ball physics is fully
// deterministic.
func NewMatch(cfg utils.Config, rng *rand.Rand) *Match {
	m := &Match{
		cfg:         cfg,
		physics:     NewPhysics(cfg),
		ai:          NewAIController(cfg, rng),
		Left:        NewPaddle(cfg, Left),
		Right:       NewPaddle(cfg, Right),
		Phase:       PhaseServing,
		Difficulty:  DifficultyMedium,
		serveToward: Right,
	}
	m.Ball = Ball{Radius: cfg.BallRadius}
	return m
}

// Apply validates and applies one input command. Invalid commands are
// rejected with an error and leave the match untouched.
func (m *Match) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case MovePaddle:
		switch c.Side {
		case Left:
			m.Left.SetMove(c.Dir)
		case Right:
			// Right-paddle input is only meaningful under human control.
			if m.Right.Control == ControlHuman {
				m.Right.SetMove(c.Dir)
			}
		default:
			return fmt.Errorf("unknown paddle side %q", c.Side)
		}

	case TogglePause:
		switch m.Phase {
		case PhasePlaying:
			m.Phase = PhasePaused
		case PhasePaused:
			m.Phase = PhasePlaying
		}

	case ResetMatch:
		m.reset()

	case ToggleAI:
		m.AIEnabled = !m.AIEnabled
		if m.AIEnabled {
			m.Right.Control = ControlAI
			m.Right.SetMove(MoveNone)
		} else {
			m.Right.Control = ControlHuman
		}
		// Paddle position is deliberately untouched.

	case CycleDifficulty:
		m.Difficulty = m.Difficulty.Next()

	case SetDifficulty:
		if !c.Difficulty.Valid() {
			return fmt.Errorf("unknown difficulty %q", c.Difficulty)
		}
		m.Difficulty = c.Difficulty

	case ToggleTrail:
		m.Trail = !m.Trail

	default:
		return fmt.Errorf("unknown command type %T", cmd)
	}
	return nil
}

// Advance moves the simulation forward by dt seconds. dt is clamped to the
// configured maximum so a stalled renderer cannot make the ball tunnel.
func (m *Match) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	if dt > m.cfg.MaxDelta {
		dt = m.cfg.MaxDelta
	}
	m.tick++

	switch m.Phase {
	case PhaseEnded:
		return
	case PhasePaused:
		m.movePaddles(dt)
		return
	case PhaseServing:
		m.serve()
	}

	// The AI issues its command before physics runs.
	if m.AIEnabled && m.Right.Control == ControlAI {
		dir, speed := m.ai.Plan(&m.Ball, &m.Right, m.Difficulty)
		m.Right.MoveAt(dir, speed, dt, m.cfg.TableHalfHeight)
	}
	m.movePaddles(dt)

	events := m.physics.Step(dt, &m.Ball, &m.Left, &m.Right)
	m.events = append(m.events, events...)
	for _, ev := range events {
		if ev.Kind == EventGoal {
			m.handleGoal(ev.Side)
		}
	}
}

func (m *Match) movePaddles(dt float64) {
	m.Left.Move(dt, m.cfg.TableHalfHeight)
	if m.Right.Control == ControlHuman {
		m.Right.Move(dt, m.cfg.TableHalfHeight)
	}
}

// serve launches the ball from center and enters Playing. The vertical
// launch direction alternates per serve so rallies do not repeat exactly.
func (m *Match) serve() {
	m.Ball = NewBall(m.cfg, m.serveToward, m.serveCount%2 == 0)
	m.events = append(m.events, Event{Kind: EventServe, Side: m.serveToward})
	m.serveCount++
	m.Phase = PhasePlaying
}

// handleGoal credits the scorer, ends the match at the win score, and
// otherwise re-serves under the configured serve policy.
func (m *Match) handleGoal(scorer Side) {
	if scorer == Left {
		m.ScoreLeft++
	} else {
		m.ScoreRight++
	}

	if m.ScoreLeft >= m.cfg.WinScore || m.ScoreRight >= m.cfg.WinScore {
		m.Phase = PhaseEnded
		m.Winner = scorer
		m.events = append(m.events, Event{Kind: EventGameOver, Side: scorer})
		return
	}

	switch m.cfg.ServePolicy {
	case utils.ServeLoser:
		// The conceding side serves: the ball travels toward the scorer.
		m.serveToward = scorer
	default:
		m.serveToward = m.serveToward.Opponent()
	}
	m.serve()
}

// reset restores the starting state. Difficulty, AI mode, and the trail
// preference survive a reset; everything else returns to its initial value.
func (m *Match) reset() {
	m.ScoreLeft = 0
	m.ScoreRight = 0
	m.Left.Center()
	m.Right.Center()
	m.Ball = Ball{Radius: m.cfg.BallRadius}
	m.Phase = PhaseServing
	m.Winner = ""
	m.serveToward = Right
	m.serveCount = 0
	m.ai.Reset()
}

// Tick returns the number of Advance calls so far.
func (m *Match) Tick() uint64 {
	return m.tick
}

// invariants reports the first violated internal invariant, if any. These
// are programming faults, not runtime conditions: tests call this after
// every step, and a non-nil result is a bug to fix, never to clamp away.
func (m *Match) invariants() error {
	if m.ScoreLeft < 0 || m.ScoreRight < 0 {
		return fmt.Errorf("negative score %d-%d", m.ScoreLeft, m.ScoreRight)
	}
	if m.Phase == PhaseEnded && m.ScoreLeft < m.cfg.WinScore && m.ScoreRight < m.cfg.WinScore {
		return fmt.Errorf("ended at %d-%d below win score %d", m.ScoreLeft, m.ScoreRight, m.cfg.WinScore)
	}
	if m.Phase != PhaseEnded && (m.ScoreLeft >= m.cfg.WinScore || m.ScoreRight >= m.cfg.WinScore) {
		return fmt.Errorf("phase %s with winning score %d-%d", m.Phase, m.ScoreLeft, m.ScoreRight)
	}
	hBound := m.cfg.TableHalfHeight - m.Ball.Radius
	if m.Phase == PhasePlaying && (m.Ball.Pos.Y > hBound || m.Ball.Pos.Y < -hBound) {
		return fmt.Errorf("ball outside table at y=%g", m.Ball.Pos.Y)
	}
	for _, p := range []*Paddle{&m.Left, &m.Right} {
		limit := m.cfg.TableHalfHeight - p.HalfHeight
		if p.Y > limit || p.Y < -limit {
			return fmt.Errorf("%s paddle outside table at y=%g", p.Side, p.Y)
		}
	}
	return nil
}
