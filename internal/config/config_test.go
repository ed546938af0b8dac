package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
share_url: https://example.org/review
export_format: md
motion:
  transition_ms: 150
  reduced: true
trace:
  endpoint: localhost:4318
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/review", cfg.ShareURL)
	assert.Equal(t, "md", cfg.ExportFormat)
	assert.Equal(t, 150, cfg.Motion.TransitionMS)
	assert.True(t, cfg.Motion.Reduced)
	assert.Equal(t, 60, cfg.Motion.FPS)
	assert.Equal(t, "localhost:4318", cfg.Trace.Endpoint)
	assert.Equal(t, "sudreview", cfg.Trace.ServiceName)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("motion:\n  fps: 30\n"), 0o644))
	t.Setenv("SUDREVIEW_MOTION__FPS", "24")
	t.Setenv("SUDREVIEW_SHARE_URL", "https://env.example.org/")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Motion.FPS)
	assert.Equal(t, "https://env.example.org/", cfg.ShareURL)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("motion: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative transition", func(c *Config) { c.Motion.TransitionMS = -1 }},
		{"zero fps", func(c *Config) { c.Motion.FPS = 0 }},
		{"huge fps", func(c *Config) { c.Motion.FPS = 1000 }},
		{"pdf export", func(c *Config) { c.ExportFormat = "pdf" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestMotion_Timing(t *testing.T) {
	m := Default().Motion
	assert.Equal(t, 300*time.Millisecond, m.Transition())
	assert.Equal(t, 1.0, m.Pace())
	assert.Equal(t, time.Second/60, m.FrameInterval())

	m.Reduced = true
	assert.Equal(t, time.Duration(0), m.Transition())
	assert.Equal(t, 0.0, m.Pace())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "motion.transition_ms", envKey("SUDREVIEW_MOTION__TRANSITION_MS"))
	assert.Equal(t, "share_url", envKey("SUDREVIEW_SHARE_URL"))
}
