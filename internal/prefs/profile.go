package prefs

import (
	"slices"
	"sort"
	"time"

	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/session"
)

// BestSessionCount is how many sessions the profile keeps as highlights.
const BestSessionCount = 5

// Defaults every profile starts with.
const (
	DefaultTheme  = "classic"
	DefaultAvatar = "🧮"
)

// Profile is the user's identity and unlocked cosmetics.
type Profile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Avatar          string           `json:"avatar"`
	JoinDate        time.Time        `json:"joinDate"`
	UnlockedThemes  []string         `json:"unlockedThemes"`
	UnlockedAvatars []string         `json:"unlockedAvatars"`
	Achievements    []string         `json:"achievements"`
	BestSessions    []session.Record `json:"bestSessions"`
}

// NewProfile returns a profile created at now.
func NewProfile(id string, now time.Time) Profile {
	return Profile{
		ID:              id,
		Name:            "Player",
		Avatar:          DefaultAvatar,
		JoinDate:        now,
		UnlockedThemes:  []string{DefaultTheme},
		UnlockedAvatars: []string{DefaultAvatar},
		Achievements:    []string{},
		BestSessions:    []session.Record{},
	}
}

// Sync unlocks the rewards of every level up to level, records the
// unlocked achievement ids and refreshes the best sessions. It reports
// whether anything changed.
func (p *Profile) Sync(level int, achievementIDs []string, records []session.Record) bool {
	changed := false
	for _, l := range levels.All() {
		if l.Level > level {
			break
		}
		for _, r := range l.Rewards {
			switch r.Type {
			case levels.RewardTheme:
				changed = addUnique(&p.UnlockedThemes, r.ID) || changed
			case levels.RewardAvatar:
				changed = addUnique(&p.UnlockedAvatars, r.ID) || changed
			}
		}
	}
	for _, id := range achievementIDs {
		changed = addUnique(&p.Achievements, id) || changed
	}

	best := TopSessions(records, BestSessionCount)
	if !sameIDs(best, p.BestSessions) {
		p.BestSessions = best
		changed = true
	}
	return changed
}

// TopSessions returns up to n sessions ordered by accuracy, then speed.
func TopSessions(records []session.Record, n int) []session.Record {
	out := slices.Clone(records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy > out[j].Accuracy
		}
		return out[i].Speed() > out[j].Speed()
	})
	if len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []session.Record{}
	}
	return out
}

func addUnique(list *[]string, id string) bool {
	if slices.Contains(*list, id) {
		return false
	}
	*list = append(*list, id)
	return true
}

func sameIDs(a, b []session.Record) bool {
	return slices.EqualFunc(a, b, func(x, y session.Record) bool { return x.ID == y.ID })
}
