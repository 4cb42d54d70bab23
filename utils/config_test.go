// File: utils/config_test.go
package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"negative max delta", func(c *Config) { c.MaxDelta = -0.01 }},
		{"zero sub steps", func(c *Config) { c.SubSteps = 0 }},
		{"ball radius too large", func(c *Config) { c.BallRadius = 2.0 }},
		{"max speed below base", func(c *Config) { c.BallMaxSpeed = 0.1 }},
		{"deflection past 90", func(c *Config) { c.MaxDeflectionDeg = 90 }},
		{"paddle outside table", func(c *Config) { c.PaddleX = 1.5 }},
		{"paddle taller than table", func(c *Config) { c.PaddleHalfHeight = 1.0 }},
		{"zero win score", func(c *Config) { c.WinScore = 0 }},
		{"unknown serve policy", func(c *Config) { c.ServePolicy = "winner" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// The default file must have been written and be loadable.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("winScore: 5\nservePolicy: loser\nballBaseSpeed: 1.2\nballMaxSpeed: 3.0\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.WinScore)
	assert.Equal(t, ServeLoser, cfg.ServePolicy)
	assert.Equal(t, 1.2, cfg.BallBaseSpeed)
	// Omitted keys keep defaults.
	assert.Equal(t, DefaultConfig().TickRate, cfg.TickRate)
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("winScore: -3\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
