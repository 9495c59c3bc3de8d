package gestures

import (
	"time"

	"github.com/pocket-ui/pocket/pkg/errors"
)

// Default classification thresholds.
const (
	// DefaultTapThreshold is the maximum displacement in logical pixels
	// for a press to still count as a tap.
	DefaultTapThreshold = 10.0
	// DefaultLongPressDuration is how long a press must be held before a
	// long-press fires.
	DefaultLongPressDuration = 500 * time.Millisecond
	// DefaultDoubleTapInterval is the maximum gap between two taps that
	// combine into a double-tap.
	DefaultDoubleTapInterval = 300 * time.Millisecond
	// DefaultSwipeThreshold is the minimum displacement in logical pixels
	// for a release to count as a swipe.
	DefaultSwipeThreshold = 50.0
	// DefaultSwipeVelocity is the minimum speed in logical pixels per
	// second for a release to count as a swipe.
	DefaultSwipeVelocity = 100.0
)

// Config holds the classification thresholds of a Recognizer. Zero
// fields take the package defaults; explicit values must be positive.
type Config struct {
	TapThreshold      float64
	LongPressDuration time.Duration
	DoubleTapInterval time.Duration
	SwipeThreshold    float64
	// SwipeVelocity is in logical pixels per second.
	SwipeVelocity float64
}

func (c Config) withDefaults() Config {
	if c.TapThreshold == 0 {
		c.TapThreshold = DefaultTapThreshold
	}
	if c.LongPressDuration == 0 {
		c.LongPressDuration = DefaultLongPressDuration
	}
	if c.DoubleTapInterval == 0 {
		c.DoubleTapInterval = DefaultDoubleTapInterval
	}
	if c.SwipeThreshold == 0 {
		c.SwipeThreshold = DefaultSwipeThreshold
	}
	if c.SwipeVelocity == 0 {
		c.SwipeVelocity = DefaultSwipeVelocity
	}
	return c
}

// validate runs after defaults are applied, so every field must be
// strictly positive.
func (c Config) validate() error {
	switch {
	case c.TapThreshold <= 0:
		return &errors.ConfigError{Op: "gestures.NewRecognizer", Field: "TapThreshold", Value: c.TapThreshold, Reason: "must be positive"}
	case c.LongPressDuration <= 0:
		return &errors.ConfigError{Op: "gestures.NewRecognizer", Field: "LongPressDuration", Value: c.LongPressDuration, Reason: "must be positive"}
	case c.DoubleTapInterval <= 0:
		return &errors.ConfigError{Op: "gestures.NewRecognizer", Field: "DoubleTapInterval", Value: c.DoubleTapInterval, Reason: "must be positive"}
	case c.SwipeThreshold <= 0:
		return &errors.ConfigError{Op: "gestures.NewRecognizer", Field: "SwipeThreshold", Value: c.SwipeThreshold, Reason: "must be positive"}
	case c.SwipeVelocity <= 0:
		return &errors.ConfigError{Op: "gestures.NewRecognizer", Field: "SwipeVelocity", Value: c.SwipeVelocity, Reason: "must be positive"}
	}
	return nil
}
