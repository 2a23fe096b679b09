// Package config loads testbed settings from YAML.
//
// The file lives at $XDG_CONFIG_HOME/testbed/config.yaml (defaults to
// ~/.config/testbed/config.yaml). Fields missing from the file keep their
// defaults, and command line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid reports a setting outside its allowed range
var ErrInvalid = errors.New("invalid config")

// Time step bounds in seconds, shared with the testbed rate controls
const (
	MinTimeStep = 1.0 / 240
	MaxTimeStep = 1.0 / 15
)

// Log controls the debug log file
type Log struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Config holds testbed settings
type Config struct {
	TimeStep          float64 `yaml:"time_step"`       // Physics step, seconds
	MaxFrameDelta     float64 `yaml:"max_frame_delta"` // Per-frame accumulation cap, 0 disables
	FrameRate         int     `yaml:"frame_rate"`      // Frames per second with vsync on
	VSync             bool    `yaml:"vsync"`
	Shadows           bool    `yaml:"shadows"`
	ContactPoints     bool    `yaml:"contact_points"`
	GUI               bool    `yaml:"gui"`
	Scene             string  `yaml:"scene"`
	Audio             bool    `yaml:"audio"`
	AudioVolume       float64 `yaml:"audio_volume"`
	ScrollSensitivity float64 `yaml:"scroll_sensitivity"`
	Log               Log     `yaml:"log"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		TimeStep:          1.0 / 60,
		MaxFrameDelta:     0.25,
		FrameRate:         60,
		VSync:             true,
		Shadows:           true,
		GUI:               true,
		Audio:             true,
		AudioVolume:       0.3,
		ScrollSensitivity: 0.02,
		Log:               Log{Dir: "logs"},
	}
}

// Path returns the config file location. It respects XDG_CONFIG_HOME,
// falling back to ~/.config/testbed/config.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "testbed", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "testbed", "config.yaml")
}

// Load reads path over the defaults. A missing file returns the defaults (not an error).
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, creating directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks ranges, the error names the offending field
func (c *Config) Validate() error {
	switch {
	case !(c.TimeStep >= MinTimeStep && c.TimeStep <= MaxTimeStep):
		return fmt.Errorf("%w: time_step %v outside [%v, %v]", ErrInvalid, c.TimeStep, MinTimeStep, MaxTimeStep)
	case c.MaxFrameDelta < 0:
		return fmt.Errorf("%w: max_frame_delta %v is negative", ErrInvalid, c.MaxFrameDelta)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d must be positive", ErrInvalid, c.FrameRate)
	case c.ScrollSensitivity <= 0:
		return fmt.Errorf("%w: scroll_sensitivity %v must be positive", ErrInvalid, c.ScrollSensitivity)
	case c.AudioVolume < 0 || c.AudioVolume > 1:
		return fmt.Errorf("%w: audio_volume %v outside [0, 1]", ErrInvalid, c.AudioVolume)
	}
	return nil
}
