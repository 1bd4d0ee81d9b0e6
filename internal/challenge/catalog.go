// Package challenge selects the weekly challenge and tracks its progress.
package challenge

import "time"

// Difficulty of a challenge.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Definition is a static catalog entry.
type Definition struct {
	ID          string
	Title       string
	Description string
	Goal        int
	TimeLimit   time.Duration // zero when the challenge is not timed
	Difficulty  Difficulty
	Reward      string
}

// catalog order determines the weekly rotation.
var catalog = []Definition{
	{ID: "speed-beginner", Title: "Basic Speed", Description: "Complete 10 numbers in under 2 minutes",
		Goal: 10, TimeLimit: 2 * time.Minute, Difficulty: DifficultyEasy, Reward: "🏃"},
	{ID: "accuracy-beginner", Title: "Basic Accuracy", Description: "Get 3 exact results in one session",
		Goal: 3, Difficulty: DifficultyEasy, Reward: "🎯"},
	{ID: "consistency-beginner", Title: "Basic Consistency", Description: "Practice 3 days in a row",
		Goal: 3, Difficulty: DifficultyEasy, Reward: "📅"},
	{ID: "speed-intermediate", Title: "Intermediate Speed", Description: "Complete 20 numbers in under 3 minutes",
		Goal: 20, TimeLimit: 3 * time.Minute, Difficulty: DifficultyMedium, Reward: "⚡"},
	{ID: "accuracy-intermediate", Title: "Intermediate Accuracy", Description: "Get 5 exact results in a row",
		Goal: 5, Difficulty: DifficultyMedium, Reward: "🎖"},
	{ID: "pro-challenge", Title: "Pro Challenge", Description: "Complete a Pro session without mistakes",
		Goal: 1, Difficulty: DifficultyMedium, Reward: "🔥"},
	{ID: "speed-expert", Title: "Expert Speed", Description: "Complete 30 numbers in under 2 minutes",
		Goal: 30, TimeLimit: 2 * time.Minute, Difficulty: DifficultyHard, Reward: "🚀"},
	{ID: "accuracy-expert", Title: "Expert Accuracy", Description: "Keep 100% accuracy in 10 sessions",
		Goal: 10, Difficulty: DifficultyHard, Reward: "💎"},
	{ID: "marathon", Title: "Number Marathon", Description: "Complete 50 numbers in free mode",
		Goal: 50, Difficulty: DifficultyHard, Reward: "🏆"},
	{ID: "perfect-week", Title: "Perfect Week", Description: "Get exact results 7 days in a row",
		Goal: 7, Difficulty: DifficultyHard, Reward: "👑"},
}

// Catalog returns every definition in rotation order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id string) (Definition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
