package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/history"
	practicescreen "github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/screens/presets"
	"github.com/abhisek/soroban/internal/screens/stats"
	"github.com/abhisek/soroban/internal/screens/tutorial"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
)

const (
	itemPractice = iota
	itemPresets
	itemStats
	itemAchievements
	itemChallenge
	itemHistory
	itemTutorial
	itemQuit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps          practicescreen.Deps
	base          session.Config
	menu          components.Menu
	reminder      bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates the home screen. base is the resolved practice configuration
// used by the Practice item.
func New(deps practicescreen.Deps, base session.Config) *HomeScreen {
	h := &HomeScreen{deps: deps, base: base}

	due, err := deps.Tracker.ReminderDue(context.Background())
	if err != nil && deps.Logger != nil {
		deps.Logger.Warn("reminder check failed", zap.Error(err))
	}
	h.reminder = due

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: h.push(func() screen.Screen {
			return practicescreen.New(h.deps, h.base)
		})},
		{Label: "PRESETS", Action: h.push(func() screen.Screen {
			return presets.New(h.deps, h.base)
		})},
		{Label: "STATS", Action: h.push(func() screen.Screen {
			return stats.New(h.deps.Tracker, h.deps.Clock, stats.TabOverview)
		})},
		{Label: "ACHIEVEMENTS", Action: h.push(func() screen.Screen {
			return stats.New(h.deps.Tracker, h.deps.Clock, stats.TabAchievements)
		})},
		{Label: "CHALLENGE", Action: h.push(func() screen.Screen {
			return stats.New(h.deps.Tracker, h.deps.Clock, stats.TabChallenge)
		})},
		{Label: "HISTORY", Action: h.push(func() screen.Screen {
			return history.New(h.deps.Tracker)
		})},
		{Label: "TUTORIAL", Action: h.push(func() screen.Screen {
			return tutorial.New(h.deps)
		})},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

func (h *HomeScreen) push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		next := build()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}
}

// refresh re-reads everything derived from the tracker.
func (h *HomeScreen) refresh() {
	tut := &h.menu.Items[itemTutorial]
	tut.Highlight = !h.deps.Tracker.Tutorial().Done()
	tut.Badge = ""
	if tut.Highlight {
		tut.Badge = "✦ NEW"
	}

	h.mascotVariant = MascotIdle
	switch {
	case h.reminder:
		h.mascotVariant = MascotAlert
	case perfectToday(h.deps.Tracker.Records(), h.deps.Clock.Now()):
		h.mascotVariant = MascotCelebrating
	}
}

func perfectToday(records []session.Record, now time.Time) bool {
	if len(records) == 0 {
		return false
	}
	last := records[0].Timestamp.Local()
	y, m, d := now.Local().Date()
	ly, lm, ld := last.Date()
	return records[0].IsPerfect() && y == ly && m == lm && d == ld
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume picks up new sessions, XP and tutorial progress.
func (h *HomeScreen) Resume() tea.Cmd {
	if len(h.deps.Tracker.Records()) > 0 {
		h.reminder = false
	}
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompact(width, termHeight)
	roomy := layout.IsRoomy(termHeight)

	cw := components.ContentWidth(width)
	st := h.deps.Tracker.Stats()
	lvl, _ := h.deps.Tracker.Level()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if roomy && !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(lvl, st.TotalXP, st.CurrentStreak, cw, compact))

	if h.reminder {
		sections = append(sections, renderReminder(cw))
	}

	sections = append(sections, renderMenu(h.menu, cw, roomy))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
