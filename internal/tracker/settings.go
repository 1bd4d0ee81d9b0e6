package tracker

import (
	"context"
	"slices"
	"strings"

	"github.com/abhisek/soroban/internal/achievements"
	"github.com/abhisek/soroban/internal/challenge"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/prefs"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/stats"
	"github.com/abhisek/soroban/internal/store"
)

// Records returns the session history, newest first.
func (t *Tracker) Records() []session.Record { return t.history.List() }

// Record returns the session with id.
func (t *Tracker) Record(id string) (session.Record, error) { return t.history.Get(id) }

// Stats returns the lifetime stats.
func (t *Tracker) Stats() stats.UserStats { return t.stats }

// Level returns the current level and the progress towards the next.
func (t *Tracker) Level() (levels.Level, levels.Progress) {
	return levels.ByXP(t.stats.TotalXP), levels.ProgressFor(t.stats.TotalXP)
}

// Achievements returns every achievement with its progress.
func (t *Tracker) Achievements() []achievements.Entry { return achievements.Entries(t.achievements) }

// Challenge returns a copy of the weekly challenge state.
func (t *Tracker) Challenge() challenge.State {
	s := challenge.State{CompletedIDs: slices.Clone(t.challenge.CompletedIDs)}
	if t.challenge.Current != nil {
		c := *t.challenge.Current
		s.Current = &c
	}
	return s
}

// Preferences returns the saved preferences.
func (t *Tracker) Preferences() prefs.Preferences { return t.preferences }

// SetPreferences saves p.
func (t *Tracker) SetPreferences(ctx context.Context, p prefs.Preferences) error {
	t.preferences = p
	return store.SaveJSON(ctx, t.kv, store.KeyPreferences, p)
}

// SavePracticeDefaults stores cfg as the default practice config.
func (t *Tracker) SavePracticeDefaults(ctx context.Context, cfg session.Config) error {
	return t.SetPreferences(ctx, t.preferences.WithPracticeConfig(cfg))
}

// Notifications returns the reminder settings.
func (t *Tracker) Notifications() prefs.Notifications { return t.notifications }

// SetRemindersEnabled turns the daily reminder on or off.
func (t *Tracker) SetRemindersEnabled(ctx context.Context, enabled bool) error {
	t.notifications.Enabled = enabled
	t.preferences.NotificationsEnabled = enabled
	if err := store.SaveJSON(ctx, t.kv, store.KeyPreferences, t.preferences); err != nil {
		return err
	}
	return store.SaveJSON(ctx, t.kv, store.KeyNotifications, t.notifications)
}

// ReminderDue reports whether the practice reminder should be shown and,
// if so, records that it was.
func (t *Tracker) ReminderDue(ctx context.Context) (bool, error) {
	now := t.clock.Now()
	if !t.notifications.ShouldRemind(now) {
		return false, nil
	}
	t.notifications.MarkReminded(now)
	return true, store.SaveJSON(ctx, t.kv, store.KeyNotifications, t.notifications)
}

// Tutorial returns the tutorial progress.
func (t *Tracker) Tutorial() prefs.Tutorial { return t.tutorial }

// SetTutorial saves tutorial progress.
func (t *Tracker) SetTutorial(ctx context.Context, tut prefs.Tutorial) error {
	t.tutorial = tut
	return store.SaveJSON(ctx, t.kv, store.KeyTutorial, tut)
}

// Profile returns the user profile.
func (t *Tracker) Profile() prefs.Profile { return t.profile }

// SetProfileName renames the user. Blank names are ignored.
func (t *Tracker) SetProfileName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	t.profile.Name = name
	return store.SaveJSON(ctx, t.kv, store.KeyProfile, t.profile)
}
