package session

import (
	"errors"
	"fmt"
	"time"
)

// FreeMode is the NumberOfNumbers sentinel for an unbounded session that
// runs until explicitly stopped.
const FreeMode = -1

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid practice config")

// Config holds the immutable parameters of one practice session.
type Config struct {
	// TimeBetweenNumbers is how long each number stays visible, in seconds.
	TimeBetweenNumbers float64 `json:"timeBetweenNumbers"`

	// NumberOfNumbers is the count of numbers to show, or FreeMode.
	NumberOfNumbers int `json:"numberOfNumbers"`

	MinNumber int `json:"minNumber"`
	MaxNumber int `json:"maxNumber"`

	// Display-only flags.
	VoiceEnabled    bool `json:"voiceEnabled"`
	ShowRealTimeSum bool `json:"showRealTimeSum"`
}

// DefaultConfig returns the out-of-the-box practice configuration.
func DefaultConfig() Config {
	return Config{
		TimeBetweenNumbers: 2,
		NumberOfNumbers:    10,
		MinNumber:          1,
		MaxNumber:          999,
	}
}

// IsFreeMode reports whether the session is unbounded.
func (c Config) IsFreeMode() bool {
	return c.NumberOfNumbers == FreeMode
}

// Interval returns TimeBetweenNumbers as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.TimeBetweenNumbers * float64(time.Second))
}

// Validate checks the preconditions the sequence engine relies on.
func (c Config) Validate() error {
	switch {
	case c.TimeBetweenNumbers <= 0:
		return fmt.Errorf("%w: time between numbers must be positive, got %v", ErrInvalidConfig, c.TimeBetweenNumbers)
	case c.NumberOfNumbers <= 0 && c.NumberOfNumbers != FreeMode:
		return fmt.Errorf("%w: number of numbers must be positive or free mode, got %d", ErrInvalidConfig, c.NumberOfNumbers)
	case c.MinNumber > c.MaxNumber:
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidConfig, c.MinNumber, c.MaxNumber)
	}
	return nil
}
