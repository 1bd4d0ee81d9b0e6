// Package tracker owns the persisted progression state: session history,
// stats, XP, achievements, the weekly challenge and user settings. It is
// the only writer of the store and flushes after every mutation.
package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/achievements"
	"github.com/abhisek/soroban/internal/challenge"
	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/history"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/practice"
	"github.com/abhisek/soroban/internal/prefs"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/stats"
	"github.com/abhisek/soroban/internal/store"
)

// Tracker holds the in-memory copy of every persisted key.
type Tracker struct {
	kv    store.KV
	clock clock.Clock
	log   *zap.Logger

	history       *history.History
	stats         stats.UserStats
	achievements  []achievements.State
	challenge     challenge.State
	preferences   prefs.Preferences
	notifications prefs.Notifications
	tutorial      prefs.Tutorial
	profile       prefs.Profile
}

// New returns a tracker with default state. Call Load to read the store.
func New(kv store.KV, clk clock.Clock, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	t := &Tracker{kv: kv, clock: clk, log: logger.Named("tracker")}
	t.setDefaults()
	return t
}

func (t *Tracker) setDefaults() {
	t.history = history.New(nil)
	t.stats = stats.Default()
	t.achievements = achievements.Fresh()
	t.challenge = challenge.State{CompletedIDs: []string{}}
	t.challenge.Refresh(t.clock.Now())
	t.preferences = prefs.DefaultPreferences()
	t.notifications = prefs.Notifications{}
	t.tutorial = prefs.Tutorial{}
	t.profile = prefs.NewProfile(practice.NewSessionID(), t.clock.Now())
}

// Load reads every key from the store. Missing keys keep their defaults;
// malformed values are logged and replaced by defaults. Only store
// failures are returned.
func (t *Tracker) Load(ctx context.Context) error {
	t.setDefaults()
	now := t.clock.Now()

	if err := t.loadSessions(ctx); err != nil {
		return err
	}

	var storedStats stats.UserStats
	ok, err := t.load(ctx, store.KeyStats, &storedStats)
	if err != nil {
		return err
	}
	if ok {
		storedStats.State = levels.StateFor(storedStats.TotalXP)
		t.stats = storedStats
	}
	t.stats = stats.Recompute(t.history.List(), t.stats, now)

	var storedAchievements []achievements.State
	if ok, err := t.load(ctx, store.KeyAchievements, &storedAchievements); err != nil {
		return err
	} else if ok {
		t.achievements = achievements.Merge(storedAchievements)
	}

	var storedChallenge challenge.State
	challengeFound, err := t.load(ctx, store.KeyChallenges, &storedChallenge)
	if err != nil {
		return err
	}
	if challengeFound {
		t.challenge = storedChallenge
	}

	if _, err := t.load(ctx, store.KeyPreferences, &t.preferences); err != nil {
		return err
	}
	if _, err := t.load(ctx, store.KeyNotifications, &t.notifications); err != nil {
		return err
	}
	if _, err := t.load(ctx, store.KeyTutorial, &t.tutorial); err != nil {
		return err
	}
	profileFound, err := t.load(ctx, store.KeyProfile, &t.profile)
	if err != nil {
		return err
	}

	rotated := t.challenge.Refresh(now)
	if rotated || !challengeFound {
		t.log.Info("weekly challenge selected", zap.String("challenge", t.challenge.Current.ID),
			zap.Time("ends", t.challenge.Current.EndDate))
		t.challenge.Update(t.history.List(), now)
		if err := store.SaveJSON(ctx, t.kv, store.KeyChallenges, t.challenge); err != nil {
			return err
		}
	}
	if !profileFound {
		if err := store.SaveJSON(ctx, t.kv, store.KeyProfile, t.profile); err != nil {
			return err
		}
	}

	t.log.Debug("state loaded",
		zap.Int("sessions", t.history.Len()),
		zap.Int("totalXP", t.stats.TotalXP),
		zap.Int("level", t.stats.CurrentLevel))
	return nil
}

// load decodes key into dst. A malformed value is logged and reported as
// absent; dst is then reset by the caller's defaults.
func (t *Tracker) load(ctx context.Context, key string, dst any) (bool, error) {
	ok, err := store.LoadJSON(ctx, t.kv, key, dst)
	if errors.Is(err, store.ErrMalformed) {
		t.log.Warn("ignoring malformed stored value", zap.String("key", key), zap.Error(err))
		t.resetKey(key)
		return false, nil
	}
	return ok, err
}

func (t *Tracker) resetKey(key string) {
	switch key {
	case store.KeyPreferences:
		t.preferences = prefs.DefaultPreferences()
	case store.KeyNotifications:
		t.notifications = prefs.Notifications{}
	case store.KeyTutorial:
		t.tutorial = prefs.Tutorial{}
	case store.KeyProfile:
		t.profile = prefs.NewProfile(practice.NewSessionID(), t.clock.Now())
	}
}

func (t *Tracker) loadSessions(ctx context.Context) error {
	raw, ok, err := store.LoadRaw(ctx, t.kv, store.KeySessions)
	if errors.Is(err, store.ErrMalformed) {
		t.log.Warn("ignoring malformed session history", zap.Error(err))
		return nil
	}
	if err != nil || !ok {
		return err
	}

	records, skipped, err := session.DecodeRecords(raw)
	if err != nil {
		t.log.Warn("ignoring undecodable session history", zap.Error(err))
		return nil
	}
	for _, sk := range skipped {
		t.log.Warn("dropping unreadable session", zap.Int("index", sk.Index), zap.Error(sk.Err))
	}
	t.history = history.New(records)

	// Rewrite once so legacy entries are stored in the current layout.
	normalized, err := json.Marshal(t.history.List())
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}
	if string(normalized) != string(raw) {
		t.log.Info("migrated session history", zap.Int("sessions", t.history.Len()),
			zap.Int("schemaVersion", session.SchemaVersion))
		return t.kv.Set(ctx, store.KeySessions, string(normalized))
	}
	return nil
}
