package achievements

import (
	"time"

	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/stats"
)

// State is the persisted runtime part of one achievement.
type State struct {
	ID           string     `json:"id"`
	Progress     int        `json:"progress"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlockedDate,omitempty"`
}

// Fresh returns a locked, zero-progress state for every catalog entry.
func Fresh() []State {
	out := make([]State, len(catalog))
	for i, d := range catalog {
		out[i] = State{ID: d.ID}
	}
	return out
}

// Merge aligns persisted state with the current catalog: known ids keep
// their progress, unknown ids are dropped and new ids start fresh.
func Merge(persisted []State) []State {
	byID := make(map[string]State, len(persisted))
	for _, s := range persisted {
		byID[s.ID] = s
	}
	out := Fresh()
	for i, s := range out {
		if p, ok := byID[s.ID]; ok {
			out[i] = p
		}
	}
	return out
}

// Evaluate recomputes progress for every achievement and returns the
// updated list plus the definitions unlocked by this call. Unlocks are
// monotonic and UnlockedDate is set only on the transition.
func Evaluate(list []State, records []session.Record, st stats.UserStats, now time.Time) ([]State, []Definition) {
	list = Merge(list)
	var unlocked []Definition
	for i, s := range list {
		def, ok := Lookup(s.ID)
		if !ok {
			continue
		}
		var progress int
		if def.Rule != nil {
			progress = def.Rule(records)
		} else {
			progress = def.Source.Value(st)
		}
		progress = min(max(progress, 0), def.MaxProgress)

		if s.Unlocked {
			s.Progress = def.MaxProgress
			list[i] = s
			continue
		}
		s.Progress = progress
		if progress >= def.MaxProgress {
			s.Unlocked = true
			ts := now
			s.UnlockedDate = &ts
			unlocked = append(unlocked, def)
		}
		list[i] = s
	}
	return list, unlocked
}

// Entry joins a definition with its runtime state for display.
type Entry struct {
	Def   Definition
	State State
}

// Entries returns display entries in catalog order.
func Entries(list []State) []Entry {
	list = Merge(list)
	out := make([]Entry, 0, len(list))
	for _, s := range list {
		if def, ok := Lookup(s.ID); ok {
			out = append(out, Entry{Def: def, State: s})
		}
	}
	return out
}

// UnlockedCount returns how many achievements are unlocked.
func UnlockedCount(list []State) int {
	n := 0
	for _, s := range list {
		if s.Unlocked {
			n++
		}
	}
	return n
}
