// Package stats rolls the session history up into lifetime statistics.
package stats

import (
	"time"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/session"
)

// UserStats is the lifetime aggregate. Everything except the embedded XP
// state is recomputed from the history on every change.
type UserStats struct {
	TotalSessions         int       `json:"totalSessions"`
	TotalPracticeTime     float64   `json:"totalPracticeTime"`
	ExactMatches          int       `json:"exactMatches"`
	TotalNumbersPracticed int       `json:"totalNumbersPracticed"`
	AverageAccuracy       float64   `json:"averageAccuracy"`
	CurrentStreak         int       `json:"currentStreak"`
	BestStreak            int       `json:"bestStreak"`
	ConsecutiveDays       int       `json:"consecutiveDays"`
	LastPracticeDate      time.Time `json:"lastPracticeDate"`
	BestSessionAccuracy   int       `json:"bestSessionAccuracy"`
	BestSessionSpeed      float64   `json:"bestSessionSpeed"`
	LongestSession        float64   `json:"longestSession"`
	TotalPerfectSessions  int       `json:"totalPerfectSessions"`

	levels.State
}

// Default returns the stats of a user with no history.
func Default() UserStats {
	return UserStats{State: levels.StateFor(0)}
}

// Recompute rebuilds the aggregate from records, carrying prev's XP state
// over untouched. now anchors the current streak.
func Recompute(records []session.Record, prev UserStats, now time.Time) UserStats {
	s := UserStats{State: prev.State}
	if len(records) == 0 {
		return s
	}

	var accuracySum int
	for _, r := range records {
		s.TotalSessions++
		s.TotalPracticeTime += r.Duration
		s.TotalNumbersPracticed += len(r.Numbers)
		s.ExactMatches += r.CorrectCount
		accuracySum += r.Accuracy

		if r.IsPerfect() {
			s.TotalPerfectSessions++
		}
		if r.Timestamp.After(s.LastPracticeDate) {
			s.LastPracticeDate = r.Timestamp
		}
		s.BestSessionAccuracy = max(s.BestSessionAccuracy, r.Accuracy)
		s.BestSessionSpeed = max(s.BestSessionSpeed, r.Speed())
		s.LongestSession = max(s.LongestSession, r.Duration)
	}
	s.AverageAccuracy = float64(accuracySum) / float64(len(records))

	days := ActiveDays(records)
	s.CurrentStreak = CurrentStreak(days, now)
	s.BestStreak = max(BestStreak(days), s.CurrentStreak)
	s.ConsecutiveDays = s.BestStreak
	return s
}

// ActiveDays returns the set of local calendar days with at least one session.
func ActiveDays(records []session.Record) map[string]bool {
	days := make(map[string]bool, len(records))
	for _, r := range records {
		days[clock.DayKey(r.Timestamp.Local())] = true
	}
	return days
}

// CurrentStreak counts consecutive active days backward from today. A day
// without activity today yields 0.
func CurrentStreak(days map[string]bool, now time.Time) int {
	streak := 0
	day := clock.StartOfDay(now.Local())
	for days[clock.DayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak returns the longest run of consecutive active days.
func BestStreak(days map[string]bool) int {
	best := 0
	for key := range days {
		day, err := time.ParseInLocation("2006-01-02", key, time.Local)
		if err != nil {
			continue
		}
		// Only start counting at the first day of a run.
		if days[clock.DayKey(day.AddDate(0, 0, -1))] {
			continue
		}
		run := 1
		for d := day.AddDate(0, 0, 1); days[clock.DayKey(d)]; d = d.AddDate(0, 0, 1) {
			run++
		}
		best = max(best, run)
	}
	return best
}
