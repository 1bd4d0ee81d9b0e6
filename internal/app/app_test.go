package app

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/numgen"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screens/home"
	practicescreen "github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/screens/welcome"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/store"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/voice"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	clk := clock.NewFake(time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local))
	tr := tracker.New(store.NewMem(), clk, zaptest.NewLogger(t))
	require.NoError(t, tr.Load(context.Background()))
	return Options{
		Tracker: tr,
		Config:  session.DefaultConfig(),
		Clock:   clk,
		Source:  &numgen.Sequence{Values: []int{1, 2, 3}},
		Speaker: &voice.Recorder{},
		Logger:  zaptest.NewLogger(t),
	}
}

// step feeds msg to the model and applies any router message the command
// produces, the way the Bubble Tea runtime would.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg, router.PopToRootMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestAppModel_StartsWithWelcome(t *testing.T) {
	m := newAppModel(testOptions(t))
	require.NotNil(t, m.Init())
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)

	m = step(t, m, tea.KeyPressMsg{Code: ' '})
	_, ok = m.router.Active().(*home.HomeScreen)
	assert.True(t, ok, "any key leaves the splash")
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_PlayOpensSession(t *testing.T) {
	opts := testOptions(t)
	opts.Play = true
	m := newAppModel(opts)
	m.Init()
	assert.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*practicescreen.PracticeScreen)
	assert.True(t, ok)
}

func TestAppModel_EscPopsPlainScreens(t *testing.T) {
	m := newAppModel(testOptions(t))
	m = step(t, m, tea.KeyPressMsg{Code: ' '})

	// Stats is the third menu item.
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())

	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_EscGoesToEscapeHandlers(t *testing.T) {
	opts := testOptions(t)
	opts.Play = true
	m := newAppModel(opts)
	m.Init()

	// The session asks before quitting instead of being popped.
	m = step(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 2, m.router.Depth())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_View(t *testing.T) {
	m := newAppModel(testOptions(t))
	m = step(t, m, tea.KeyPressMsg{Code: ' '})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 10})
	m = next.(AppModel)
	assert.Contains(t, m.render(), "too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(AppModel)
	content := m.render()
	assert.Contains(t, content, "Soroban")
	assert.Contains(t, content, "Lv 1")
	assert.Contains(t, content, "Ctrl+C")
}
