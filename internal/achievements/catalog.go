// Package achievements evaluates the achievement catalog against the
// session history and lifetime stats.
package achievements

import (
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/stats"
)

// Category groups achievements for display.
type Category string

const (
	CategoryBeginner     Category = "beginner"
	CategoryIntermediate Category = "intermediate"
	CategoryAdvanced     Category = "advanced"
	CategoryExpert       Category = "expert"
)

// Tier is the medal level of an achievement.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Stat names a numeric UserStats field usable as a progress source.
type Stat string

const (
	StatTotalSessions        Stat = "totalSessions"
	StatExactMatches         Stat = "exactMatches"
	StatTotalPerfectSessions Stat = "totalPerfectSessions"
	StatCurrentStreak        Stat = "currentStreak"
	StatBestStreak           Stat = "bestStreak"
	StatTotalNumbers         Stat = "totalNumbersPracticed"
)

// Value reads the field from s.
func (st Stat) Value(s stats.UserStats) int {
	switch st {
	case StatTotalSessions:
		return s.TotalSessions
	case StatExactMatches:
		return s.ExactMatches
	case StatTotalPerfectSessions:
		return s.TotalPerfectSessions
	case StatCurrentStreak:
		return s.CurrentStreak
	case StatBestStreak:
		return s.BestStreak
	case StatTotalNumbers:
		return s.TotalNumbersPracticed
	}
	return 0
}

// Rule computes progress from the session list (newest first).
type Rule func(records []session.Record) int

// Definition is a static catalog entry. Exactly one of Source or Rule is set.
type Definition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    Category
	Tier        Tier
	MaxProgress int
	Secret      bool
	Source      Stat
	Rule        Rule
}

var catalog = []Definition{
	{ID: "first-practice", Name: "First Steps", Description: "Complete your first practice session",
		Icon: "🎯", Category: CategoryBeginner, Tier: TierBronze, MaxProgress: 1, Source: StatTotalSessions},
	{ID: "five-sessions", Name: "Getting Warm", Description: "Complete 5 practice sessions",
		Icon: "🔥", Category: CategoryBeginner, Tier: TierBronze, MaxProgress: 5, Source: StatTotalSessions},
	{ID: "first-perfect", Name: "Spot On", Description: "Finish a session with every answer correct",
		Icon: "✅", Category: CategoryBeginner, Tier: TierSilver, MaxProgress: 1, Source: StatTotalPerfectSessions},
	{ID: "ten-perfect", Name: "Sharpshooter", Description: "Finish 10 perfect sessions",
		Icon: "🏹", Category: CategoryIntermediate, Tier: TierGold, MaxProgress: 10, Source: StatTotalPerfectSessions},
	{ID: "three-day-streak", Name: "Habit Forming", Description: "Practice 3 days in a row",
		Icon: "📅", Category: CategoryBeginner, Tier: TierBronze, MaxProgress: 3, Source: StatCurrentStreak},
	{ID: "week-streak", Name: "Weekly Warrior", Description: "Practice 7 days in a row",
		Icon: "🗓", Category: CategoryIntermediate, Tier: TierSilver, MaxProgress: 7, Source: StatCurrentStreak},
	{ID: "pro-mode", Name: "Going Pro", Description: "Complete a session with 20 numbers",
		Icon: "🎓", Category: CategoryIntermediate, Tier: TierSilver, MaxProgress: 1, Rule: proSessions},
	{ID: "free-mode-master", Name: "Free Spirit", Description: "Practice 50 numbers in free mode",
		Icon: "🕊", Category: CategoryIntermediate, Tier: TierGold, MaxProgress: 50, Rule: freeModeNumbers},
	{ID: "speed-demon", Name: "Speed Demon", Description: "Finish 10 or more numbers in under 30 seconds",
		Icon: "⚡", Category: CategoryAdvanced, Tier: TierGold, MaxProgress: 1, Rule: fastSessions},
	{ID: "accuracy-master", Name: "Accuracy Master", Description: "Reach 95% perfect sessions over your last 20",
		Icon: "🎯", Category: CategoryAdvanced, Tier: TierPlatinum, MaxProgress: 20, Rule: recentAccuracy},
	{ID: "month-streak", Name: "Unstoppable", Description: "Practice 30 days in a row",
		Icon: "🏔", Category: CategoryExpert, Tier: TierPlatinum, MaxProgress: 30, Source: StatCurrentStreak},
	{ID: "speed-legend", Name: "Speed Legend", Description: "Finish 20 or more numbers in under a minute",
		Icon: "🚀", Category: CategoryExpert, Tier: TierPlatinum, MaxProgress: 1, Secret: true, Rule: legendSessions},
	{ID: "ultimate-streak", Name: "Soroban Monk", Description: "Practice 100 days in a row",
		Icon: "🧘", Category: CategoryExpert, Tier: TierPlatinum, MaxProgress: 100, Secret: true, Source: StatCurrentStreak},
}

// Catalog returns every definition in display order.
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

const (
	proNumberCount      = 20
	freeModeGoal        = 50
	recentWindow        = 20
	recentAccuracyRatio = 0.95
)

func proSessions(records []session.Record) int {
	for _, r := range records {
		if r.Config.NumberOfNumbers == proNumberCount {
			return 1
		}
	}
	return 0
}

func freeModeNumbers(records []session.Record) int {
	total := 0
	for _, r := range records {
		if r.Config.IsFreeMode() {
			total += len(r.Numbers)
		}
	}
	return total
}

func fastSessions(records []session.Record) int {
	for _, r := range records {
		if r.Duration < 30 && len(r.Numbers) >= 10 {
			return 1
		}
	}
	return 0
}

func legendSessions(records []session.Record) int {
	for _, r := range records {
		if r.Duration < 60 && len(r.Numbers) >= 20 {
			return 1
		}
	}
	return 0
}

// recentAccuracy counts perfect sessions among the latest 20 and reports
// full progress once at least 95% of a full window is perfect.
func recentAccuracy(records []session.Record) int {
	recent := records[:min(len(records), recentWindow)]
	perfect := 0
	for _, r := range recent {
		if r.IsPerfect() {
			perfect++
		}
	}
	if len(recent) >= recentWindow && float64(perfect)/float64(len(recent)) >= recentAccuracyRatio {
		return recentWindow
	}
	return perfect
}
