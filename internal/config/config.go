// Package config loads sudreview settings from defaults, an optional YAML
// file and SUDREVIEW_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a double
// underscore: SUDREVIEW_MOTION__TRANSITION_MS=150.
const EnvPrefix = "SUDREVIEW_"

// Config holds every host-level setting. The presentation core never reads
// it directly; cmd/sudreview translates it into options.
type Config struct {
	ShareURL     string `koanf:"share_url"`
	ExportDir    string `koanf:"export_dir"`
	ExportFormat string `koanf:"export_format"`
	LogFile      string `koanf:"log_file"`
	LogLevel     string `koanf:"log_level"`
	Motion       Motion `koanf:"motion"`
	Trace        Trace  `koanf:"trace"`
}

// Motion tunes animations.
type Motion struct {
	TransitionMS int  `koanf:"transition_ms"`
	FPS          int  `koanf:"fps"`
	Reduced      bool `koanf:"reduced"` // collapse every animation to its end state
}

// Trace configures OpenTelemetry export. An empty endpoint disables it.
type Trace struct {
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
	Insecure    bool   `koanf:"insecure"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ShareURL:     "https://sudreview.example.org/",
		ExportDir:    ".",
		ExportFormat: "html",
		LogLevel:     "info",
		Motion: Motion{
			TransitionMS: 300,
			FPS:          60,
		},
		Trace: Trace{
			ServiceName: "sudreview",
			Insecure:    true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sudreview/config.yaml (or the OS
// equivalent). It returns "" if no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sudreview", "config.yaml")
}

// Load reads path (if it exists) over the defaults, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps SUDREVIEW_MOTION__FPS to motion.fps.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Motion.TransitionMS < 0 {
		return fmt.Errorf("motion.transition_ms must be non-negative, got %d", c.Motion.TransitionMS)
	}
	if c.Motion.FPS < 1 || c.Motion.FPS > 240 {
		return fmt.Errorf("motion.fps must be between 1 and 240, got %d", c.Motion.FPS)
	}
	switch strings.ToLower(c.ExportFormat) {
	case "md", "markdown", "html":
	default:
		return fmt.Errorf("invalid export_format %q: must be md or html", c.ExportFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

// Transition returns the enter/exit duration, zero under reduced motion.
func (m Motion) Transition() time.Duration {
	if m.Reduced {
		return 0
	}
	return time.Duration(m.TransitionMS) * time.Millisecond
}

// Pace is the multiplier applied to staged reveal timing.
func (m Motion) Pace() float64 {
	if m.Reduced {
		return 0
	}
	return 1
}

// FrameInterval is the time between animation frames.
func (m Motion) FrameInterval() time.Duration {
	return time.Second / time.Duration(m.FPS)
}
