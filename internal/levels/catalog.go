// Package levels maps session XP to the level ladder and detects level-ups.
package levels

// RewardType classifies what a level unlocks.
type RewardType string

const (
	RewardTheme  RewardType = "theme"
	RewardAvatar RewardType = "avatar"
	RewardEffect RewardType = "effect"
	RewardBadge  RewardType = "badge"
)

// Reward is something unlocked on reaching a level.
type Reward struct {
	Type        RewardType `json:"type"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
}

// Level is a static catalog entry.
type Level struct {
	Level      int
	Name       string
	XPRequired int
	Rewards    []Reward
	Color      string
	Icon       string
}

// catalog is ordered by XPRequired, strictly increasing from 0.
var catalog = []Level{
	{Level: 1, Name: "Novice", XPRequired: 0, Color: "#6B7280", Icon: "🌱"},
	{Level: 2, Name: "Apprentice", XPRequired: 50, Color: "#22C55E", Icon: "🌿",
		Rewards: []Reward{{Type: RewardTheme, ID: "zen", Name: "Zen Theme", Description: "Minimal design inspired by zen", Icon: "🧘"}}},
	{Level: 3, Name: "Practitioner", XPRequired: 150, Color: "#3B82F6", Icon: "💧",
		Rewards: []Reward{{Type: RewardAvatar, ID: "meditation", Name: "Meditation Avatar", Description: "Meditation icon for your profile", Icon: "🧘"}}},
	{Level: 4, Name: "Student", XPRequired: 300, Color: "#8B5CF6", Icon: "📚",
		Rewards: []Reward{{Type: RewardTheme, ID: "retro", Name: "Retro Theme", Description: "Vintage eighties style", Icon: "🎮"}}},
	{Level: 5, Name: "Calculator", XPRequired: 500, Color: "#EAB308", Icon: "⚡",
		Rewards: []Reward{{Type: RewardBadge, ID: "speed-demon", Name: "Speed Badge", Description: "Shows off your mental speed", Icon: "⚡"}}},
	{Level: 6, Name: "Expert", XPRequired: 800, Color: "#6366F1", Icon: "🎯",
		Rewards: []Reward{{Type: RewardTheme, ID: "matrix", Name: "Matrix Theme", Description: "Inspired by the digital world", Icon: "💻"}}},
	{Level: 7, Name: "Master", XPRequired: 1200, Color: "#EF4444", Icon: "🔥",
		Rewards: []Reward{{Type: RewardAvatar, ID: "sensei", Name: "Sensei Avatar", Description: "The abacus master", Icon: "🥋"}}},
	{Level: 8, Name: "Grand Master", XPRequired: 1700, Color: "#EC4899", Icon: "💎",
		Rewards: []Reward{{Type: RewardEffect, ID: "particles", Name: "Particle Effect", Description: "Celebration particles on perfect answers", Icon: "✨"}}},
	{Level: 9, Name: "Legend", XPRequired: 2300, Color: "#F97316", Icon: "👑",
		Rewards: []Reward{{Type: RewardBadge, ID: "legend", Name: "Legend Badge", Description: "Reserved for soroban legends", Icon: "🏆"}}},
	{Level: 10, Name: "Soroban Saint", XPRequired: 3000, Color: "#FACC15", Icon: "🌟",
		Rewards: []Reward{{Type: RewardTheme, ID: "divine", Name: "Divine Theme", Description: "The final theme", Icon: "🌟"}}},
}

// All returns the level catalog in ascending order.
func All() []Level {
	out := make([]Level, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the catalog entry for a level number.
func Get(level int) (Level, bool) {
	for _, l := range catalog {
		if l.Level == level {
			return l, true
		}
	}
	return Level{}, false
}

// Max returns the highest catalog level.
func Max() Level {
	return catalog[len(catalog)-1]
}
