package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// DefaultPath is read when no -config flag is given, a missing file there is not an error
const DefaultPath = "bell-fighter.toml"

type Config struct {
	Display DisplayConfig `toml:"display"`
	Input   InputConfig   `toml:"input"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Game    GameConfig    `toml:"game"`
}

type DisplayConfig struct {
	FrameRate int    `toml:"frame_rate"`
	Color     string `toml:"color"` // "auto", "truecolor" or "256"
}

type InputConfig struct {
	RepeatDelay time.Duration `toml:"repeat_delay"` // fresh press counts as held this long, covers the terminal's first auto-repeat
	HoldTimeout time.Duration `toml:"hold_timeout"` // once repeating, a key counts as held this long after its last event
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Track      string  `toml:"track"`  // mp3 path, empty plays the built-in loop
	Volume     float64 `toml:"volume"` // base-2 exponent, 0 is unchanged
	SampleRate int     `toml:"sample_rate"`
}

type LoggingConfig struct {
	Enabled      bool   `toml:"enabled"`
	Level        string `toml:"level"`
	Format       string `toml:"format"` // "json" or "console"
	Dir          string `toml:"dir"`
	File         string `toml:"file"`
	MaxSizeBytes int64  `toml:"max_size_bytes"`
}

type GameConfig struct {
	Seed uint64 `toml:"seed"` // 0 derives a seed from the clock
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when the file does not exist
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	return cfg, err
}

// Parse decodes TOML bytes over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("display.frame_rate must be positive, got %d", c.Display.FrameRate)
	}
	switch c.Display.Color {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("display.color must be auto, truecolor or 256, got %q", c.Display.Color)
	}
	if c.Input.RepeatDelay <= 0 {
		return fmt.Errorf("input.repeat_delay must be positive, got %v", c.Input.RepeatDelay)
	}
	if c.Input.HoldTimeout <= 0 {
		return fmt.Errorf("input.hold_timeout must be positive, got %v", c.Input.HoldTimeout)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Logging.MaxSizeBytes <= 0 {
		return fmt.Errorf("logging.max_size_bytes must be positive, got %d", c.Logging.MaxSizeBytes)
	}
	return nil
}

// FrameInterval is the render refresh period
func (d DisplayConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.FrameRate)
}

func Defaults() *Config {
	return &Config{
		Display: DisplayConfig{
			FrameRate: 60,
			Color:     "auto",
		},
		Input: InputConfig{
			RepeatDelay: 600 * time.Millisecond,
			HoldTimeout: 180 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: parameter.AudioSampleRate,
		},
		Logging: LoggingConfig{
			Enabled:      false,
			Level:        "info",
			Format:       "console",
			Dir:          "logs",
			File:         "bell-fighter.log",
			MaxSizeBytes: 10 * 1024 * 1024,
		},
	}
}
