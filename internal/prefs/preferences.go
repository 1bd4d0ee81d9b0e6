// Package prefs holds the user-facing settings persisted next to the
// practice history: preferences, reminders, tutorial progress and profile.
package prefs

import "github.com/abhisek/soroban/internal/session"

// Preferences are the user's saved practice defaults and display options.
type Preferences struct {
	TimeBetweenNumbers   float64 `json:"timeBetweenNumbers"`
	NumberOfNumbers      int     `json:"numberOfNumbers"`
	MinNumber            int     `json:"minNumber"`
	MaxNumber            int     `json:"maxNumber"`
	VoiceEnabled         bool    `json:"voiceEnabled"`
	ShowRealTimeSum      bool    `json:"showRealTimeSum"`
	VisualStyle          string  `json:"visualStyle"`
	Language             string  `json:"language"`
	SoundEnabled         bool    `json:"soundEnabled"`
	ExpertMode           bool    `json:"expertMode"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
}

// DefaultPreferences returns the preferences of a new user.
func DefaultPreferences() Preferences {
	cfg := session.DefaultConfig()
	return Preferences{
		TimeBetweenNumbers: cfg.TimeBetweenNumbers,
		NumberOfNumbers:    cfg.NumberOfNumbers,
		MinNumber:          cfg.MinNumber,
		MaxNumber:          cfg.MaxNumber,
		VisualStyle:        "classic",
		Language:           "en",
	}
}

// PracticeConfig returns the session config the preferences describe.
func (p Preferences) PracticeConfig() session.Config {
	return session.Config{
		TimeBetweenNumbers: p.TimeBetweenNumbers,
		NumberOfNumbers:    p.NumberOfNumbers,
		MinNumber:          p.MinNumber,
		MaxNumber:          p.MaxNumber,
		VoiceEnabled:       p.VoiceEnabled,
		ShowRealTimeSum:    p.ShowRealTimeSum,
	}
}

// WithPracticeConfig returns p with its practice defaults replaced by cfg.
func (p Preferences) WithPracticeConfig(cfg session.Config) Preferences {
	p.TimeBetweenNumbers = cfg.TimeBetweenNumbers
	p.NumberOfNumbers = cfg.NumberOfNumbers
	p.MinNumber = cfg.MinNumber
	p.MaxNumber = cfg.MaxNumber
	p.VoiceEnabled = cfg.VoiceEnabled
	p.ShowRealTimeSum = cfg.ShowRealTimeSum
	return p
}
