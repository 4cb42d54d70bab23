// File: utils/config.go
package utils

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configurable simulation parameters. Distances are in
// world units: the table spans [-TableHalfWidth, TableHalfWidth] on the
// travel axis (x) and [-TableHalfHeight, TableHalfHeight] on the paddle
// axis (y). Speeds are world units per second.
type Config struct {
	// Timing
	TickRate int     `yaml:"tickRate"` // Simulation ticks per second
	MaxDelta float64 `yaml:"maxDelta"` // Largest dt (seconds) a single tick may integrate
	SubSteps int     `yaml:"subSteps"` // Collision sub-steps per tick

	// Table
	TableHalfWidth  float64 `yaml:"tableHalfWidth"`
	TableHalfHeight float64 `yaml:"tableHalfHeight"`

	// Ball
	BallRadius         float64 `yaml:"ballRadius"`
	BallBaseSpeed      float64 `yaml:"ballBaseSpeed"`      // Speed on serve
	BallMaxSpeed       float64 `yaml:"ballMaxSpeed"`       // Cap after paddle hits
	BallSpeedIncrement float64 `yaml:"ballSpeedIncrement"` // Added per paddle hit
	MaxDeflectionDeg   float64 `yaml:"maxDeflectionDeg"`   // Lateral angle at the paddle tip
	ServeAngleDeg      float64 `yaml:"serveAngleDeg"`      // Launch angle off the travel axis

	// Paddle
	PaddleX          float64 `yaml:"paddleX"` // |x| of each paddle plane
	PaddleHalfHeight float64 `yaml:"paddleHalfHeight"`
	PaddleHalfWidth  float64 `yaml:"paddleHalfWidth"` // Half thickness along x
	PaddleSpeed      float64 `yaml:"paddleSpeed"`     // Human paddle speed

	// AI
	AIDeadband float64 `yaml:"aiDeadband"` // No-move band around the target

	// Match
	WinScore    int    `yaml:"winScore"`
	ServePolicy string `yaml:"servePolicy"` // "alternate" or "loser"
}

// Serve policies. Alternate flips the launch direction every serve; Loser
// launches toward the side that just scored, so the conceding side serves.
const (
	ServeAlternate = "alternate"
	ServeLoser     = "loser"
)

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		MaxDelta: 1.0 / 30.0,
		SubSteps: 10,

		TableHalfWidth:  1.0,
		TableHalfHeight: 1.0,

		BallRadius:         0.02,
		BallBaseSpeed:      0.8,
		BallMaxSpeed:       2.4,
		BallSpeedIncrement: 0.08,
		MaxDeflectionDeg:   45,
		ServeAngleDeg:      30,

		PaddleX:          0.9,
		PaddleHalfHeight: 0.2,
		PaddleHalfWidth:  0.01,
		PaddleSpeed:      1.5,

		AIDeadband: 0.02,

		WinScore:    11,
		ServePolicy: ServeAlternate,
	}
}

// TickPeriod returns the wall-clock duration of one tick.
func (c Config) TickPeriod() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Validate rejects out-of-range configuration before it reaches the
// simulation. A Config that passes Validate never crashes the tick loop.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", c.TickRate)
	}
	if c.MaxDelta <= 0 {
		return fmt.Errorf("maxDelta must be positive, got %g", c.MaxDelta)
	}
	if c.SubSteps <= 0 {
		return fmt.Errorf("subSteps must be positive, got %d", c.SubSteps)
	}
	if c.TableHalfWidth <= 0 || c.TableHalfHeight <= 0 {
		return fmt.Errorf("table extents must be positive, got %g x %g", c.TableHalfWidth, c.TableHalfHeight)
	}
	if c.BallRadius <= 0 || c.BallRadius >= c.TableHalfHeight {
		return fmt.Errorf("ballRadius must be in (0, %g), got %g", c.TableHalfHeight, c.BallRadius)
	}
	if c.BallBaseSpeed <= 0 || c.BallMaxSpeed < c.BallBaseSpeed {
		return fmt.Errorf("ball speeds invalid: base %g, max %g", c.BallBaseSpeed, c.BallMaxSpeed)
	}
	if c.BallSpeedIncrement < 0 {
		return fmt.Errorf("ballSpeedIncrement must be non-negative, got %g", c.BallSpeedIncrement)
	}
	if c.MaxDeflectionDeg <= 0 || c.MaxDeflectionDeg >= 90 {
		return fmt.Errorf("maxDeflectionDeg must be in (0, 90), got %g", c.MaxDeflectionDeg)
	}
	if c.ServeAngleDeg < 0 || c.ServeAngleDeg >= 90 {
		return fmt.Errorf("serveAngleDeg must be in [0, 90), got %g", c.ServeAngleDeg)
	}
	if c.PaddleX <= 0 || c.PaddleX >= c.TableHalfWidth {
		return fmt.Errorf("paddleX must be in (0, %g), got %g", c.TableHalfWidth, c.PaddleX)
	}
	if c.PaddleHalfHeight <= 0 || c.PaddleHalfHeight >= c.TableHalfHeight {
		return fmt.Errorf("paddleHalfHeight must be in (0, %g), got %g", c.TableHalfHeight, c.PaddleHalfHeight)
	}
	if c.PaddleHalfWidth <= 0 {
		return fmt.Errorf("paddleHalfWidth must be positive, got %g", c.PaddleHalfWidth)
	}
	if c.PaddleSpeed <= 0 {
		return fmt.Errorf("paddleSpeed must be positive, got %g", c.PaddleSpeed)
	}
	if c.AIDeadband < 0 {
		return fmt.Errorf("aiDeadband must be non-negative, got %g", c.AIDeadband)
	}
	if c.WinScore < 1 {
		return fmt.Errorf("winScore must be at least 1, got %d", c.WinScore)
	}
	if c.ServePolicy != ServeAlternate && c.ServePolicy != ServeLoser {
		return fmt.Errorf("servePolicy must be %q or %q, got %q", ServeAlternate, ServeLoser, c.ServePolicy)
	}
	return nil
}

// LoadConfig reads configuration from a YAML file. A missing file is not an
// error: defaults are written to the path and returned, so the first run
// leaves an editable config behind.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if werr := WriteDefaultConfig(path); werr != nil {
			return cfg, fmt.Errorf("creating default config %s: %w", path, werr)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	// Unmarshal over the defaults so omitted keys keep their default values.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteDefaultConfig writes the default configuration to the given path.
func WriteDefaultConfig(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
