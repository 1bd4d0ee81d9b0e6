// Package welcome is the splash screen: an abacus counts up to a number,
// then the banner appears and any key moves on to the home screen.
package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	countStart   = 500 * time.Millisecond  // empty abacus until here
	countEnd     = 1500 * time.Millisecond // abacus settled, banner shown
	totalDur     = 4500 * time.Millisecond // ticks stop advancing time here

	introRods   = 4
	introNumber = 2580
)

type tickMsg time.Time

// WelcomeScreen plays the splash. It never leaves on its own.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a splash that replaces itself with next() on a keypress.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		return w, tick()
	case tea.KeyPressMsg:
		if w.transitioned {
			return w, nil
		}
		w.transitioned = true
		home := w.next()
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} }
	}
	return w, nil
}

// shown is the number on the abacus at the current point of the intro.
func (w *WelcomeScreen) shown() int {
	switch {
	case w.elapsed <= countStart:
		return 0
	case w.elapsed >= countEnd:
		return introNumber
	}
	frac := float64(w.elapsed-countStart) / float64(countEnd-countStart)
	return int(frac * introNumber)
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{components.Abacus(w.shown(), introRods)}

	if w.elapsed >= countEnd {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Train your mental abacus"),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
