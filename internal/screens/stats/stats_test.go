package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/tracker"
)

var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

func newScreen(t *testing.T, tab Tab, sessions int) (*StatsScreen, *tracker.Tracker) {
	t.Helper()
	clk := clock.NewFake(now)
	tr := tracker.New(store.NewMem(), clk, zaptest.NewLogger(t))
	require.NoError(t, tr.Load(context.Background()))
	for i := range sessions {
		rec := session.Record{
			SchemaVersion: session.SchemaVersion,
			ID:            string(rune('a' + i)),
			Timestamp:     now.Add(time.Duration(i) * time.Minute),
			Config:        session.DefaultConfig(),
			Numbers:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			Total:         55,
			Duration:      40,
			Answers:       []session.AnswerRecord{{Round: 10, UserResult: 55, Expected: 55, IsCorrect: true}},
			CorrectCount:  1,
			TotalAnswered: 1,
			Accuracy:      100,
		}
		rec.XPEarned = levels.XPEarned(rec)
		_, err := tr.CompleteSession(context.Background(), rec)
		require.NoError(t, err)
	}
	s := New(tr, clk, tab)
	s.Init()
	return s, tr
}

func TestStatsScreen_Overview(t *testing.T) {
	s, tr := newScreen(t, TabOverview, 2)
	assert.Equal(t, "Overview", s.Title())

	view := s.View(100, 40)
	assert.Contains(t, view, "Sessions")
	assert.Contains(t, view, "Level 1")
	assert.Contains(t, view, tr.Profile().Name)
	assert.Contains(t, view, "1 day")
}

func TestStatsScreen_TabSwitching(t *testing.T) {
	s, _ := newScreen(t, TabOverview, 0)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, TabAchievements, s.tab)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, TabChallenge, s.tab)
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, TabOverview, s.tab, "tabs wrap")
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, TabChallenge, s.tab)
	s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	assert.Equal(t, TabAchievements, s.tab)
}

func TestStatsScreen_Achievements(t *testing.T) {
	s, _ := newScreen(t, TabAchievements, 1)
	view := s.View(100, 60)
	assert.Contains(t, view, "First Steps")
	assert.Contains(t, view, "✓")
	assert.NotContains(t, view, "Speed Legend", "locked secrets stay hidden")
	assert.Contains(t, view, "???")
}

func TestStatsScreen_AchievementsScroll(t *testing.T) {
	s, _ := newScreen(t, TabAchievements, 0)
	top := s.View(100, 12)
	for range 20 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	bottom := s.View(100, 12)
	assert.NotEqual(t, top, bottom)
	assert.True(t, strings.Contains(top, "First Steps"))
	assert.False(t, strings.Contains(bottom, "First Steps"))
}

func TestStatsScreen_Challenge(t *testing.T) {
	s, tr := newScreen(t, TabChallenge, 0)
	def, ok := tr.Challenge().Current.Definition()
	require.True(t, ok)

	view := s.View(100, 40)
	assert.Contains(t, view, def.Title)
	assert.Contains(t, view, def.Description)
	assert.Contains(t, view, "Time left")
}

func TestStatsScreen_KeyHints(t *testing.T) {
	s, _ := newScreen(t, TabOverview, 0)
	assert.Len(t, s.KeyHints(), 2)
	s.tab = TabAchievements
	assert.Len(t, s.KeyHints(), 3)
}

func TestTimeLeft(t *testing.T) {
	assert.Equal(t, "ended", timeLeft(-time.Minute))
	assert.Equal(t, "2d 3h", timeLeft(51*time.Hour))
	assert.Equal(t, "4h 30m", timeLeft(4*time.Hour+30*time.Minute))
}
