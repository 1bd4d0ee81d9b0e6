package prefs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/soroban/internal/session"
)

var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

func TestPreferencesMergeOverDefaults(t *testing.T) {
	p := DefaultPreferences()
	require.NoError(t, json.Unmarshal([]byte(`{"numberOfNumbers": 20, "voiceEnabled": true}`), &p))

	assert.Equal(t, 20, p.NumberOfNumbers)
	assert.True(t, p.VoiceEnabled)
	assert.Equal(t, 1, p.MinNumber)
	assert.Equal(t, 999, p.MaxNumber)
	assert.Equal(t, "classic", p.VisualStyle)
}

func TestPreferencesPracticeConfigRoundTrip(t *testing.T) {
	cfg := session.Config{TimeBetweenNumbers: 1.5, NumberOfNumbers: 15, MinNumber: 10, MaxNumber: 99, ShowRealTimeSum: true}
	p := DefaultPreferences().WithPracticeConfig(cfg)

	assert.Equal(t, cfg, p.PracticeConfig())
	assert.Equal(t, "en", p.Language)
}

func TestNotifications(t *testing.T) {
	var n Notifications
	assert.False(t, n.ShouldRemind(now), "disabled reminders never fire")

	n.Enabled = true
	assert.True(t, n.ShouldRemind(now), "never reminded")

	n.MarkPracticed(now)
	assert.False(t, n.ShouldRemind(now.Add(23*time.Hour)))
	assert.True(t, n.ShouldRemind(now.Add(24*time.Hour)))

	n.MarkReminded(now.Add(24 * time.Hour))
	assert.False(t, n.ShouldRemind(now.Add(25*time.Hour)))
}

func TestTutorialNavigation(t *testing.T) {
	var tut Tutorial
	assert.Equal(t, "intro", tut.Step().Key)

	tut.Prev()
	assert.Equal(t, 0, tut.CurrentStep)

	tut.Next()
	assert.Equal(t, "structure", tut.Step().Key)

	tut.GoTo(100)
	assert.Equal(t, len(Steps)-1, tut.CurrentStep)
	assert.True(t, tut.IsLast())
	tut.Next()
	assert.Equal(t, len(Steps)-1, tut.CurrentStep)

	assert.False(t, tut.Done())
	tut.Complete()
	assert.True(t, tut.Done())

	tut.Reset()
	assert.Equal(t, Tutorial{}, tut)

	tut.Skip()
	assert.True(t, tut.Done())
	assert.False(t, tut.Completed)
}

func TestProfileSyncUnlocksLevelRewards(t *testing.T) {
	p := NewProfile("p1", now)

	assert.False(t, p.Sync(1, nil, nil))

	assert.True(t, p.Sync(4, []string{"first-practice"}, nil))
	assert.Equal(t, []string{DefaultTheme, "zen", "retro"}, p.UnlockedThemes)
	assert.Equal(t, []string{DefaultAvatar, "meditation"}, p.UnlockedAvatars)
	assert.Equal(t, []string{"first-practice"}, p.Achievements)

	assert.False(t, p.Sync(4, []string{"first-practice"}, nil), "sync is idempotent")
}

func TestTopSessions(t *testing.T) {
	recs := []session.Record{
		{ID: "a", Accuracy: 80, Numbers: make([]int, 10), Duration: 60},
		{ID: "b", Accuracy: 100, Numbers: make([]int, 10), Duration: 60},
		{ID: "c", Accuracy: 100, Numbers: make([]int, 10), Duration: 30},
		{ID: "d", Accuracy: 50, Numbers: make([]int, 10), Duration: 10},
	}

	top := TopSessions(recs, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{top[0].ID, top[1].ID, top[2].ID})
	assert.Equal(t, "a", recs[0].ID, "input is not reordered")

	assert.NotNil(t, TopSessions(nil, 3))
}
