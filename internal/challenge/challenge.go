package challenge

import (
	"slices"
	"sort"
	"time"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/session"
)

const week = 7 * 24 * time.Hour

// Challenge is the active weekly challenge with its progress.
type Challenge struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Progress  int       `json:"progress"`
	Completed bool      `json:"completed"`
}

// Definition returns the catalog entry of c.
func (c Challenge) Definition() (Definition, bool) {
	return Lookup(c.ID)
}

// Window returns the local calendar week containing now: Sunday
// 00:00:00.000 through Saturday 23:59:59.999.
func Window(now time.Time) (time.Time, time.Time) {
	day := clock.StartOfDay(now)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// WeekIndex numbers the calendar week containing now. It counts calendar
// days from 1970-01-01 to the week's Sunday, so every instant of one
// Sunday to Saturday window gets the same index, DST shifts included, and
// consecutive windows differ by one.
func WeekIndex(now time.Time) int64 {
	start, _ := Window(now)
	y, m, d := start.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / int64(24*time.Hour/time.Second)
	return floorDiv(days, 7)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Select returns the challenge for the calendar week containing now.
func Select(now time.Time) Challenge {
	n := int64(len(catalog))
	idx := (WeekIndex(now)%n + n) % n
	start, end := Window(now)
	return Challenge{ID: catalog[idx].ID, StartDate: start, EndDate: end}
}

// Evaluate recomputes c's progress from the sessions inside its window.
func Evaluate(c Challenge, records []session.Record) Challenge {
	def, ok := c.Definition()
	if !ok {
		return c
	}
	var inWindow []session.Record
	for _, r := range records {
		if !r.Timestamp.Before(c.StartDate) && !r.Timestamp.After(c.EndDate) {
			inWindow = append(inWindow, r)
		}
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Timestamp.Before(inWindow[j].Timestamp)
	})

	progress := progressFor(def, inWindow)
	c.Progress = min(max(progress, 0), def.Goal)
	c.Completed = progress >= def.Goal
	return c
}

func progressFor(def Definition, records []session.Record) int {
	switch def.ID {
	case "speed-beginner", "speed-intermediate", "speed-expert":
		return longestTimedSession(records, def.TimeLimit)
	case "accuracy-beginner":
		return bestCorrectCount(records)
	case "accuracy-intermediate":
		return longestCorrectRun(records)
	case "accuracy-expert":
		return countPerfect(records, func(session.Record) bool { return true })
	case "consistency-beginner":
		return longestDayRun(records, func(session.Record) bool { return true })
	case "pro-challenge":
		return countPerfect(records, func(r session.Record) bool { return r.Config.NumberOfNumbers == 20 })
	case "marathon":
		total := 0
		for _, r := range records {
			if r.Config.IsFreeMode() {
				total += len(r.Numbers)
			}
		}
		return total
	case "perfect-week":
		return firstDayRun(records, session.Record.IsPerfect)
	}
	return 0
}

// longestTimedSession returns the most numbers completed in one session
// within limit.
func longestTimedSession(records []session.Record, limit time.Duration) int {
	best := 0
	for _, r := range records {
		if limit > 0 && r.Elapsed() > limit {
			continue
		}
		best = max(best, len(r.Numbers))
	}
	return best
}

func bestCorrectCount(records []session.Record) int {
	best := 0
	for _, r := range records {
		best = max(best, r.CorrectCount)
	}
	return best
}

// longestCorrectRun returns the longest run of consecutive correct
// answers across sessions in time order. Skipped rounds do not break a run.
func longestCorrectRun(records []session.Record) int {
	best, run := 0, 0
	for _, r := range records {
		for _, a := range r.Answers {
			switch {
			case a.Skipped:
			case a.IsCorrect:
				run++
				best = max(best, run)
			default:
				run = 0
			}
		}
	}
	return best
}

func countPerfect(records []session.Record, match func(session.Record) bool) int {
	n := 0
	for _, r := range records {
		if r.IsPerfect() && match(r) {
			n++
		}
	}
	return n
}

func activeDays(records []session.Record, match func(session.Record) bool) []time.Time {
	seen := map[string]bool{}
	var days []time.Time
	for _, r := range records {
		if !match(r) {
			continue
		}
		day := clock.StartOfDay(r.Timestamp.Local())
		if key := clock.DayKey(day); !seen[key] {
			seen[key] = true
			days = append(days, day)
		}
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	return days
}

func consecutive(prev, next time.Time) bool {
	return clock.DayKey(prev.AddDate(0, 0, 1)) == clock.DayKey(next)
}

func longestDayRun(records []session.Record, match func(session.Record) bool) int {
	days := activeDays(records, match)
	best, run := 0, 0
	for i, d := range days {
		if i > 0 && consecutive(days[i-1], d) {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}

// firstDayRun counts consecutive matching days starting at the earliest,
// stopping at the first gap.
func firstDayRun(records []session.Record, match func(session.Record) bool) int {
	days := activeDays(records, match)
	if len(days) == 0 {
		return 0
	}
	run := 1
	for i := 1; i < len(days) && consecutive(days[i-1], days[i]); i++ {
		run++
	}
	return run
}

// State is the persisted weekly-challenge state.
type State struct {
	Current      *Challenge `json:"currentChallenge"`
	CompletedIDs []string   `json:"completedChallengeIds"`
}

// Refresh replaces an expired or unknown challenge with the one for now.
// It reports whether the challenge changed.
func (s *State) Refresh(now time.Time) bool {
	if s.Current != nil {
		_, known := s.Current.Definition()
		if known && !now.After(s.Current.EndDate) {
			return false
		}
		if known && s.Current.Completed {
			s.recordCompleted(s.Current.ID)
		}
	}
	next := Select(now)
	s.Current = &next
	return true
}

// Update refreshes the challenge and recomputes its progress. It reports
// whether the challenge became completed with this call.
func (s *State) Update(records []session.Record, now time.Time) bool {
	s.Refresh(now)
	updated := Evaluate(*s.Current, records)
	s.Current = &updated
	if updated.Completed {
		return s.recordCompleted(updated.ID)
	}
	return false
}

// IsCompleted reports whether id has ever been completed.
func (s *State) IsCompleted(id string) bool {
	return slices.Contains(s.CompletedIDs, id)
}

func (s *State) recordCompleted(id string) bool {
	if s.IsCompleted(id) {
		return false
	}
	s.CompletedIDs = append(s.CompletedIDs, id)
	return true
}
