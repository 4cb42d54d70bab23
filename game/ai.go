// File: game/ai.go
package game

import (
	"math"
	"math/rand"

	"github.com/pong3d/pong3d/utils"
)

// Difficulty selects the AI preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d names a known difficulty.
func (d Difficulty) Valid() bool {
	_, ok := difficultySettings[d]
	return ok
}

// Next rotates easy -> medium -> hard -> easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// aiSettings shape the controller per difficulty. ReactionDelay is the
// number of ticks between retargets, Speed the paddle speed in units/s,
// Accuracy the chance a retarget actually happens, PredictionError the
// half-width of the random offset added to the predicted intercept.
type aiSettings struct {
	ReactionDelay   int
	Speed           float64
	Accuracy        float64
	PredictionError float64
}

var difficultySettings = map[Difficulty]aiSettings{
	DifficultyEasy:   {ReactionDelay: 15, Speed: 0.9, Accuracy: 0.70, PredictionError: 0.15},
	DifficultyMedium: {ReactionDelay: 8, Speed: 1.5, Accuracy: 0.85, PredictionError: 0.08},
	DifficultyHard:   {ReactionDelay: 3, Speed: 2.4, Accuracy: 0.95, PredictionError: 0.03},
}

// AIController tracks the ball for one paddle. The random source is
// injected so tests can pin its behavior.
type AIController struct {
	cfg utils.Config
	rng *rand.Rand

	tick     int
	targetY  float64
	tracking bool
}

func NewAIController(cfg utils.Config, rng *rand.Rand) *AIController {
	return &AIController{cfg: cfg, rng: rng}
}

// Reset clears the controller's transient state.
func (c *AIController) Reset() {
	c.tick = 0
	c.targetY = 0
	c.tracking = false
}

// Plan returns the paddle move for this tick and the speed to apply it at.
// While the ball approaches, the controller re-predicts the intercept every
// ReactionDelay ticks and chases the prediction; while the ball moves away
// it drifts back toward center at half speed.
func (c *AIController) Plan(ball *Ball, paddle *Paddle, difficulty Difficulty) (MoveDir, float64) {
	s, ok := difficultySettings[difficulty]
	if !ok {
		s = difficultySettings[DifficultyMedium]
	}
	c.tick++

	heading, moving := ball.Heading()
	approaching := moving && heading == paddle.Side

	if !approaching {
		c.tracking = false
		return c.moveToward(0, paddle, s.Speed/2)
	}

	if c.tick%s.ReactionDelay == 0 && c.rng.Float64() < s.Accuracy {
		predicted := c.predictIntercept(ball, paddle)
		c.targetY = predicted + (c.rng.Float64()-0.5)*2*s.PredictionError
		c.tracking = true
	}
	if !c.tracking {
		return MoveNone, 0
	}
	return c.moveToward(c.targetY, paddle, s.Speed)
}

// moveToward picks a direction toward target with a deadband so the paddle
// does not jitter around it.
func (c *AIController) moveToward(target float64, paddle *Paddle, speed float64) (MoveDir, float64) {
	diff := target - paddle.Y
	if math.Abs(diff) <= c.cfg.AIDeadband {
		return MoveNone, 0
	}
	if diff > 0 {
		return MoveUp, speed
	}
	return MoveDown, speed
}

// predictIntercept extrapolates the ball to the paddle's face plane and
// folds the result across the walls for as many bounces as the trajectory
// takes before arriving.
func (c *AIController) predictIntercept(ball *Ball, paddle *Paddle) float64 {
	if ball.Vel.X == 0 {
		return ball.Pos.Y
	}
	t := (paddle.Face() - ball.Pos.X) / ball.Vel.X
	if t < 0 {
		return ball.Pos.Y
	}
	y := ball.Pos.Y + ball.Vel.Y*t
	bound := c.cfg.TableHalfHeight - ball.Radius
	return utils.FoldReflect(y, -bound, bound)
}
