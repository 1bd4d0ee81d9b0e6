package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/numgen"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/screens/home"
	practicescreen "github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/screens/welcome"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/voice"
)

// Options holds the dependencies the TUI is built from.
type Options struct {
	Tracker *tracker.Tracker

	// Config is the resolved practice configuration used by the home
	// screen's Practice item.
	Config session.Config

	Clock   clock.Clock
	Source  numgen.Source
	Speaker voice.Speaker
	Logger  *zap.Logger

	// Play skips the splash and opens a session straight away.
	Play bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *tracker.Tracker
	play    screen.Screen
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Source == nil {
		opts.Source = numgen.NewRandomSource()
	}
	if opts.Speaker == nil {
		opts.Speaker = voice.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	deps := practicescreen.Deps{
		Tracker: opts.Tracker,
		Clock:   opts.Clock,
		Source:  opts.Source,
		Speaker: opts.Speaker,
		Logger:  opts.Logger,
	}
	homeFactory := func() screen.Screen {
		return home.New(deps, opts.Config)
	}

	m := AppModel{tracker: opts.Tracker}
	if opts.Play {
		m.router = router.New(homeFactory())
		m.play = practicescreen.New(deps, opts.Config)
	} else {
		m.router = router.New(welcome.New(homeFactory))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.play != nil {
		return tea.Batch(cmd, m.router.Push(m.play))
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) headerStats() layout.HeaderStats {
	if m.tracker == nil {
		return layout.HeaderStats{}
	}
	st := m.tracker.Stats()
	lvl, _ := m.tracker.Level()
	return layout.HeaderStats{Level: lvl.Level, Icon: lvl.Icon, XP: st.TotalXP, Streak: st.CurrentStreak}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
