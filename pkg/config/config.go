// Package config loads the optional pocket.yaml application
// configuration: window metadata, the render loop frame rate, and
// gesture thresholds. A missing file resolves to defaults; a present but
// invalid file is an error, reported before the app starts rather than
// on the first frame.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/pocket-ui/pocket/pkg/errors"
	"github.com/pocket-ui/pocket/pkg/gestures"
)

// FileName is the configuration file looked up in the app directory.
const FileName = "pocket.yaml"

// Defaults applied by Resolve.
const (
	DefaultWindowWidth  = 390
	DefaultWindowHeight = 844
	DefaultFrameRate    = 60
)

// Config mirrors pocket.yaml. Zero fields take defaults during Resolve.
type Config struct {
	Window    WindowConfig  `yaml:"window"`
	FrameRate int           `yaml:"frame_rate,omitempty"`
	Gestures  GestureConfig `yaml:"gestures"`
}

// WindowConfig describes the app window.
type WindowConfig struct {
	Title  string  `yaml:"title,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// GestureConfig exposes the recognizer thresholds in file-friendly
// units: pixels, and milliseconds for the durations.
type GestureConfig struct {
	TapThresholdPx      float64 `yaml:"tap_threshold_px,omitempty"`
	LongPressMs         int     `yaml:"long_press_ms,omitempty"`
	DoubleTapIntervalMs int     `yaml:"double_tap_interval_ms,omitempty"`
	SwipeThresholdPx    float64 `yaml:"swipe_threshold_px,omitempty"`
	SwipeVelocityPxSec  float64 `yaml:"swipe_velocity_px_sec,omitempty"`
}

// Resolved holds the configuration after defaults and validation.
type Resolved struct {
	Title     string
	Width     float64
	Height    float64
	FrameRate int
	Gestures  gestures.Config
}

// LoadOptional reads pocket.yaml from dir if present. A missing file
// yields an empty Config and no error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads pocket.yaml (if present) and applies defaults. Explicit
// nonsense values fail here with a ConfigError.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve applies defaults and validates an already-loaded Config.
func (c *Config) Resolve() (*Resolved, error) {
	title := strings.TrimSpace(c.Window.Title)
	if title == "" {
		title = "pocket app"
	}

	width := c.Window.Width
	if width == 0 {
		width = DefaultWindowWidth
	}
	height := c.Window.Height
	if height == 0 {
		height = DefaultWindowHeight
	}
	if width < 0 {
		return nil, &pkgerrors.ConfigError{Op: "config.Resolve", Field: "window.width", Value: width, Reason: "must be positive"}
	}
	if height < 0 {
		return nil, &pkgerrors.ConfigError{Op: "config.Resolve", Field: "window.height", Value: height, Reason: "must be positive"}
	}

	rate := c.FrameRate
	if rate == 0 {
		rate = DefaultFrameRate
	}
	if rate < 0 {
		return nil, &pkgerrors.ConfigError{Op: "config.Resolve", Field: "frame_rate", Value: rate, Reason: "must be positive"}
	}

	gcfg := gestures.Config{
		TapThreshold:      c.Gestures.TapThresholdPx,
		LongPressDuration: time.Duration(c.Gestures.LongPressMs) * time.Millisecond,
		DoubleTapInterval: time.Duration(c.Gestures.DoubleTapIntervalMs) * time.Millisecond,
		SwipeThreshold:    c.Gestures.SwipeThresholdPx,
		SwipeVelocity:     c.Gestures.SwipeVelocityPxSec,
	}
	// Recognizer construction applies the gesture defaults and rejects
	// negatives; doing it here surfaces bad thresholds at load time.
	if _, err := gestures.NewRecognizer(gcfg); err != nil {
		return nil, err
	}

	return &Resolved{
		Title:     title,
		Width:     width,
		Height:    height,
		FrameRate: rate,
		Gestures:  gcfg,
	}, nil
}
