package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/prefs"
	"github.com/abhisek/soroban/internal/router"
	practicescreen "github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/screens/stats"
	"github.com/abhisek/soroban/internal/screens/tutorial"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/tracker"
)

var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

func newDeps(t *testing.T) practicescreen.Deps {
	t.Helper()
	clk := clock.NewFake(now)
	tr := tracker.New(store.NewMem(), clk, zaptest.NewLogger(t))
	require.NoError(t, tr.Load(context.Background()))
	return practicescreen.Deps{Tracker: tr, Clock: clk, Logger: zaptest.NewLogger(t)}
}

func down(h *HomeScreen, n int) {
	for range n {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func enter(t *testing.T, h *HomeScreen) tea.Msg {
	t.Helper()
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	return cmd()
}

func TestHomeScreen_MenuItems(t *testing.T) {
	h := New(newDeps(t), session.DefaultConfig())
	var labels []string
	for _, it := range h.menu.Items {
		labels = append(labels, it.Text())
	}
	assert.Equal(t, []string{"PRACTICE", "PRESETS", "STATS", "ACHIEVEMENTS",
		"CHALLENGE", "HISTORY", "TUTORIAL ✦ NEW", "QUIT"}, labels)
	assert.True(t, h.menu.Items[itemTutorial].Highlight)
}

func TestHomeScreen_PracticePushesSession(t *testing.T) {
	h := New(newDeps(t), session.DefaultConfig())
	msg, ok := enter(t, h).(router.PushScreenMsg)
	require.True(t, ok)
	_, isPractice := msg.Screen.(*practicescreen.PracticeScreen)
	assert.True(t, isPractice)
}

func TestHomeScreen_StatsItemsOpenTabs(t *testing.T) {
	h := New(newDeps(t), session.DefaultConfig())
	down(h, itemAchievements)
	msg, ok := enter(t, h).(router.PushScreenMsg)
	require.True(t, ok)
	_, isStats := msg.Screen.(*stats.StatsScreen)
	assert.True(t, isStats)
}

func TestHomeScreen_TutorialItem(t *testing.T) {
	h := New(newDeps(t), session.DefaultConfig())
	down(h, itemTutorial)
	msg, ok := enter(t, h).(router.PushScreenMsg)
	require.True(t, ok)
	_, isTutorial := msg.Screen.(*tutorial.TutorialScreen)
	assert.True(t, isTutorial)
}

func TestHomeScreen_QuitItem(t *testing.T) {
	h := New(newDeps(t), session.DefaultConfig())
	down(h, itemQuit)
	_, ok := enter(t, h).(tea.QuitMsg)
	assert.True(t, ok)
}

func TestHomeScreen_ResumeClearsTutorialBadge(t *testing.T) {
	deps := newDeps(t)
	h := New(deps, session.DefaultConfig())
	require.NoError(t, deps.Tracker.SetTutorial(context.Background(), prefs.Tutorial{Skipped: true}))
	h.Resume()
	assert.Equal(t, "TUTORIAL", h.menu.Items[itemTutorial].Text())
	assert.False(t, h.menu.Items[itemTutorial].Highlight)
}

func TestHomeScreen_Reminder(t *testing.T) {
	deps := newDeps(t)
	require.NoError(t, deps.Tracker.SetRemindersEnabled(context.Background(), true))

	h := New(deps, session.DefaultConfig())
	assert.True(t, h.reminder)
	assert.Equal(t, MascotAlert, h.mascotVariant)
	assert.Contains(t, h.View(120, 60), "Time for today's practice")

	// Shown once per interval.
	again := New(deps, session.DefaultConfig())
	assert.False(t, again.reminder)
}

func TestHomeScreen_CelebratesPerfectSessionToday(t *testing.T) {
	deps := newDeps(t)
	rec := session.Record{
		SchemaVersion: session.SchemaVersion,
		ID:            "p1",
		Timestamp:     now.Add(-time.Hour),
		Config:        session.DefaultConfig(),
		Numbers:       []int{1, 2},
		Total:         3,
		Duration:      4,
		Answers:       []session.AnswerRecord{{Round: 2, UserResult: 3, Expected: 3, IsCorrect: true}},
		CorrectCount:  1,
		TotalAnswered: 1,
		Accuracy:      100,
	}
	rec.XPEarned = levels.XPEarned(rec)
	_, err := deps.Tracker.CompleteSession(context.Background(), rec)
	require.NoError(t, err)

	h := New(deps, session.DefaultConfig())
	assert.Equal(t, MascotCelebrating, h.mascotVariant)
}

func TestHomeScreen_ViewShowsStats(t *testing.T) {
	h := New(newDeps(t), session.DefaultConfig())
	view := h.View(120, 60)
	assert.Contains(t, view, "LV 1")
	assert.Contains(t, view, "◆ 0 XP")
	assert.Contains(t, view, "NO STREAK")

	compact := h.View(60, 20)
	assert.Contains(t, compact, "S · O · R · O · B · A · N")
	assert.Contains(t, compact, "PRACTICE")
}
