package config

import (
	"strings"

	"github.com/abhisek/soroban/internal/session"
)

// Preset is a named practice configuration.
type Preset struct {
	ID          string
	Name        string
	Description string
	Config      session.Config
	Color       string
	Icon        string
}

var presets = []Preset{
	{ID: "beginner", Name: "Beginner", Description: "Single digits, plenty of time",
		Config: session.Config{TimeBetweenNumbers: 3, NumberOfNumbers: 5, MinNumber: 1, MaxNumber: 9},
		Color:  "#22C55E", Icon: "🌱"},
	{ID: "intermediate", Name: "Intermediate", Description: "Two-digit numbers at a steady pace",
		Config: session.Config{TimeBetweenNumbers: 2, NumberOfNumbers: 10, MinNumber: 10, MaxNumber: 99},
		Color:  "#3B82F6", Icon: "📘"},
	{ID: "advanced", Name: "Advanced", Description: "Three-digit numbers, shorter reveals",
		Config: session.Config{TimeBetweenNumbers: 1.5, NumberOfNumbers: 15, MinNumber: 100, MaxNumber: 999},
		Color:  "#8B5CF6", Icon: "🎯"},
	{ID: "pro", Name: "Pro", Description: "Twenty three-digit numbers, one second each",
		Config: session.Config{TimeBetweenNumbers: 1, NumberOfNumbers: 20, MinNumber: 100, MaxNumber: 999},
		Color:  "#EF4444", Icon: "🔥"},
	{ID: "free", Name: "Free Mode", Description: "Keep going until you stop",
		Config: session.Config{TimeBetweenNumbers: 2, NumberOfNumbers: session.FreeMode, MinNumber: 1, MaxNumber: 99},
		Color:  "#F97316", Icon: "∞"},
	{ID: "tutorial", Name: "Tutorial", Description: "A gentle first session",
		Config: session.Config{TimeBetweenNumbers: 3, NumberOfNumbers: 3, MinNumber: 1, MaxNumber: 9},
		Color:  "#06B6D4", Icon: "🎓"},
}

// Presets returns every preset in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset returns the preset with the given id.
func LookupPreset(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

func presetList() string {
	ids := make([]string, len(presets))
	for i, p := range presets {
		ids[i] = p.ID
	}
	return strings.Join(ids, ", ")
}
