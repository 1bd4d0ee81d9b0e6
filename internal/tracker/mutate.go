package tracker

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/achievements"
	"github.com/abhisek/soroban/internal/challenge"
	"github.com/abhisek/soroban/internal/history"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/prefs"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/stats"
	"github.com/abhisek/soroban/internal/store"
)

// Outcome is everything a completed session changed.
type Outcome struct {
	Record          session.Record
	XP              int
	Stats           stats.UserStats
	LevelUp         *levels.LevelUp
	NewAchievements []achievements.Definition

	// Challenge is the weekly challenge after this session.
	Challenge          challenge.Challenge
	ChallengeCompleted bool
}

// CompleteSession appends rec to the history, recomputes stats, adds XP,
// evaluates achievements and the weekly challenge, then persists it all.
func (t *Tracker) CompleteSession(ctx context.Context, rec session.Record) (Outcome, error) {
	now := t.clock.Now()
	rec.XPEarned = max(rec.XPEarned, 0)

	snap := t.snapshot()
	t.history.Add(rec)
	records := t.history.List()

	st := stats.Recompute(records, t.stats, now)
	var levelUp *levels.LevelUp
	st.State, levelUp = levels.AddXP(st.State, rec.XPEarned, now)
	t.stats = st

	var unlocked []achievements.Definition
	t.achievements, unlocked = achievements.Evaluate(t.achievements, records, st, now)

	completed := t.challenge.Update(records, now)
	t.notifications.MarkPracticed(now)
	t.profile.Sync(st.CurrentLevel, t.unlockedIDs(), records)

	if err := t.flush(ctx); err != nil {
		t.restore(snap)
		return Outcome{}, err
	}

	t.log.Info("session completed",
		zap.String("id", rec.ID),
		zap.Int("numbers", len(rec.Numbers)),
		zap.Int("accuracy", rec.Accuracy),
		zap.Int("xp", rec.XPEarned),
		zap.Int("totalXP", st.TotalXP))
	if levelUp != nil {
		t.log.Info("level up", zap.Int("from", levelUp.From), zap.Int("to", levelUp.Level.Level),
			zap.String("name", levelUp.Level.Name))
	}
	for _, d := range unlocked {
		t.log.Info("achievement unlocked", zap.String("id", d.ID))
	}
	if completed {
		t.log.Info("weekly challenge completed", zap.String("challenge", t.challenge.Current.ID))
	}

	return Outcome{
		Record:             rec,
		XP:                 rec.XPEarned,
		Stats:              st,
		LevelUp:            levelUp,
		NewAchievements:    unlocked,
		Challenge:          *t.challenge.Current,
		ChallengeCompleted: completed,
	}, nil
}

// DeleteSession removes one session and recomputes the derived state.
// Earned XP and unlocked achievements are kept.
func (t *Tracker) DeleteSession(ctx context.Context, id string) error {
	snap := t.snapshot()
	if err := t.history.Delete(id); err != nil {
		return err
	}
	if err := t.afterHistoryChange(ctx); err != nil {
		t.restore(snap)
		return err
	}
	t.log.Info("session deleted", zap.String("id", id))
	return nil
}

// ClearHistory removes every session. Earned XP and unlocked achievements
// are kept.
func (t *Tracker) ClearHistory(ctx context.Context) error {
	snap := t.snapshot()
	t.history.Clear()
	if err := t.afterHistoryChange(ctx); err != nil {
		t.restore(snap)
		return err
	}
	t.log.Info("history cleared")
	return nil
}

func (t *Tracker) afterHistoryChange(ctx context.Context) error {
	now := t.clock.Now()
	records := t.history.List()
	t.stats = stats.Recompute(records, t.stats, now)
	t.achievements, _ = achievements.Evaluate(t.achievements, records, t.stats, now)
	t.challenge.Update(records, now)
	t.profile.Sync(t.stats.CurrentLevel, t.unlockedIDs(), records)
	return t.flush(ctx)
}

// Reset deletes every persisted key and returns to a fresh state.
func (t *Tracker) Reset(ctx context.Context) error {
	for _, key := range store.AllKeys() {
		if err := t.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	t.setDefaults()
	t.log.Info("progress reset")
	return nil
}

// RefreshChallenge rotates an expired weekly challenge. It reports
// whether a new challenge was selected.
func (t *Tracker) RefreshChallenge(ctx context.Context) (bool, error) {
	now := t.clock.Now()
	if !t.challenge.Refresh(now) {
		return false, nil
	}
	t.challenge.Update(t.history.List(), now)
	t.log.Info("weekly challenge selected", zap.String("challenge", t.challenge.Current.ID))
	return true, store.SaveJSON(ctx, t.kv, store.KeyChallenges, t.challenge)
}

func (t *Tracker) unlockedIDs() []string {
	var ids []string
	for _, s := range t.achievements {
		if s.Unlocked {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// progress is a deep copy of the state flush writes.
type progress struct {
	records       []session.Record
	stats         stats.UserStats
	achievements  []achievements.State
	challenge     challenge.State
	notifications prefs.Notifications
	profile       prefs.Profile
}

// snapshot copies the progression state so a failed flush can be undone
// and memory keeps matching the store.
func (t *Tracker) snapshot() progress {
	ach := slices.Clone(t.achievements)
	for i, s := range ach {
		if s.UnlockedDate != nil {
			d := *s.UnlockedDate
			ach[i].UnlockedDate = &d
		}
	}

	ch := challenge.State{CompletedIDs: slices.Clone(t.challenge.CompletedIDs)}
	if t.challenge.Current != nil {
		cur := *t.challenge.Current
		ch.Current = &cur
	}

	p := t.profile
	p.UnlockedThemes = slices.Clone(p.UnlockedThemes)
	p.UnlockedAvatars = slices.Clone(p.UnlockedAvatars)
	p.Achievements = slices.Clone(p.Achievements)
	p.BestSessions = slices.Clone(p.BestSessions)

	return progress{
		records:       t.history.List(),
		stats:         t.stats,
		achievements:  ach,
		challenge:     ch,
		notifications: t.notifications,
		profile:       p,
	}
}

func (t *Tracker) restore(p progress) {
	t.history = history.New(p.records)
	t.stats = p.stats
	t.achievements = p.achievements
	t.challenge = p.challenge
	t.notifications = p.notifications
	t.profile = p.profile
	t.log.Warn("rolled back unsaved changes")
}

// flush writes every key holding progression state.
func (t *Tracker) flush(ctx context.Context) error {
	values := []struct {
		key string
		v   any
	}{
		{store.KeySessions, t.history.List()},
		{store.KeyStats, t.stats},
		{store.KeyAchievements, t.achievements},
		{store.KeyChallenges, t.challenge},
		{store.KeyNotifications, t.notifications},
		{store.KeyProfile, t.profile},
	}
	for _, kv := range values {
		if err := store.SaveJSON(ctx, t.kv, kv.key, kv.v); err != nil {
			t.log.Error("persist failed", zap.String("key", kv.key), zap.Error(err))
			return err
		}
	}
	return nil
}
