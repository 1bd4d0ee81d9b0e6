// Package stats shows lifetime statistics, the level ladder, achievements
// and the weekly challenge.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/achievements"
	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// Tab selects the visible section.
type Tab int

const (
	TabOverview Tab = iota
	TabAchievements
	TabChallenge
)

var tabNames = []string{"Overview", "Achievements", "Challenge"}

// StatsScreen renders the tracker's state.
type StatsScreen struct {
	tracker *tracker.Tracker
	clock   clock.Clock
	tab     Tab
	scroll  int
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen opened on tab.
func New(tr *tracker.Tracker, clk clock.Clock, tab Tab) *StatsScreen {
	if clk == nil {
		clk = clock.Real{}
	}
	return &StatsScreen{tracker: tr, clock: clk, tab: tab}
}

// Init rotates the weekly challenge if the week ended while the app was open.
func (s *StatsScreen) Init() tea.Cmd {
	if _, err := s.tracker.RefreshChallenge(context.Background()); err != nil {
		s.errMsg = err.Error()
	}
	return nil
}

func (s *StatsScreen) Title() string {
	return tabNames[s.tab]
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "←→", Description: "Switch tab"}}
	if s.tab == TabAchievements {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Scroll"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "right", "l", "tab":
		s.tab = (s.tab + 1) % Tab(len(tabNames))
		s.scroll = 0
	case "left", "h", "shift+tab":
		s.tab = (s.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		s.scroll = 0
	case "1", "2", "3":
		s.tab = Tab(kmsg.String()[0] - '1')
		s.scroll = 0
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(achievements.Catalog())-1 {
			s.scroll++
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string
	switch s.tab {
	case TabAchievements:
		body = s.renderAchievements(cw, height-4)
	case TabChallenge:
		body = s.renderChallenge(cw)
	default:
		body = s.renderOverview(cw)
	}
	content := renderTabs(s.tab) + "\n\n" + body
	if s.errMsg != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

func renderTabs(active Tab) string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(theme.TextDim)
		if Tab(i) == active {
			style = style.Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
		}
		parts[i] = style.Render(name)
	}
	return "\n" + strings.Join(parts, " ")
}

func (s *StatsScreen) renderOverview(cw int) string {
	st := s.tracker.Stats()
	lvl, prog := s.tracker.Level()

	var b strings.Builder
	title := fmt.Sprintf("%s Level %d: %s", lvl.Icon, lvl.Level, lvl.Name)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(fmt.Sprintf("%d XP", st.TotalXP), prog.Percent, true, cw).View())
	b.WriteString("\n")
	if next, ok := levels.Next(st.TotalXP); ok {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d XP to %s", st.XPToNextLevel, next.Name)))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Top level reached"))
	}
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Sessions", fmt.Sprint(st.TotalSessions)},
		{"Numbers practiced", fmt.Sprint(st.TotalNumbersPracticed)},
		{"Exact matches", fmt.Sprint(st.ExactMatches)},
		{"Perfect sessions", fmt.Sprint(st.TotalPerfectSessions)},
		{"Average accuracy", fmt.Sprintf("%.0f%%", st.AverageAccuracy)},
		{"Best accuracy", fmt.Sprintf("%d%%", st.BestSessionAccuracy)},
		{"Best speed", fmt.Sprintf("%.1f numbers/min", st.BestSessionSpeed)},
		{"Practice time", formatMinutes(st.TotalPracticeTime)},
		{"Longest session", formatMinutes(st.LongestSession)},
		{"Current streak", days(st.CurrentStreak)},
		{"Best streak", days(st.BestStreak)},
	}
	if !st.LastPracticeDate.IsZero() {
		rows = append(rows, [2]string{"Last practice", st.LastPracticeDate.Local().Format("Jan 02, 2006")})
	}
	b.WriteString(renderRows(rows, cw))
	b.WriteString("\n\n")
	b.WriteString(s.renderProfile(cw))
	return b.String()
}

func (s *StatsScreen) renderProfile(cw int) string {
	p := s.tracker.Profile()
	line := fmt.Sprintf("%s %s · joined %s", p.Avatar, p.Name, p.JoinDate.Local().Format("Jan 2006"))
	var extra []string
	if n := len(p.UnlockedThemes); n > 0 {
		extra = append(extra, fmt.Sprintf("%d themes", n))
	}
	if n := len(p.UnlockedAvatars); n > 0 {
		extra = append(extra, fmt.Sprintf("%d avatars", n))
	}
	if len(extra) > 0 {
		line += " · " + strings.Join(extra, ", ")
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.TextDim).Render(line)
}

func (s *StatsScreen) renderAchievements(cw, maxLines int) string {
	entries := s.tracker.Achievements()
	var lines []string
	unlocked := 0
	for _, e := range entries {
		if e.State.Unlocked {
			unlocked++
		}
		lines = append(lines, renderAchievement(e, cw))
	}
	header := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(
		fmt.Sprintf("%d of %d unlocked", unlocked, len(entries)))

	// Each entry takes two lines.
	visible := max(maxLines/2-1, 1)
	start := min(s.scroll, max(len(lines)-visible, 0))
	end := min(start+visible, len(lines))
	return header + "\n\n" + strings.Join(lines[start:end], "\n")
}

func renderAchievement(e achievements.Entry, cw int) string {
	d := e.Def
	name, desc, icon := d.Name, d.Description, d.Icon
	if d.Secret && !e.State.Unlocked {
		name, desc, icon = "???", "Secret achievement", "🔒"
	}
	nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	status := fmt.Sprintf("%d/%d", min(e.State.Progress, d.MaxProgress), d.MaxProgress)
	if e.State.Unlocked {
		nameStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
		status = "✓"
		if e.State.UnlockedDate != nil {
			status = "✓ " + e.State.UnlockedDate.Local().Format("Jan 02")
		}
	}
	head := fmt.Sprintf("%s %s [%s]", icon, nameStyle.Render(name), string(d.Tier))
	gap := max(cw-lipgloss.Width(head)-lipgloss.Width(status), 1)
	return head + strings.Repeat(" ", gap) + status + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+desc)
}

func (s *StatsScreen) renderChallenge(cw int) string {
	state := s.tracker.Challenge()
	if state.Current == nil {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("No challenge this week.")
	}
	c := *state.Current
	def, ok := c.Definition()
	if !ok {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("No challenge this week.")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(
		fmt.Sprintf("%s %s", def.Reward, def.Title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(def.Description))
	b.WriteString("\n\n")

	pct := 0.0
	if def.Goal > 0 {
		pct = 100 * float64(c.Progress) / float64(def.Goal)
	}
	b.WriteString(components.NewProgressBar(fmt.Sprintf("%d/%d", c.Progress, def.Goal), pct, true, cw).View())
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Difficulty", string(def.Difficulty)},
		{"Week", fmt.Sprintf("%s – %s", c.StartDate.Format("Jan 02"), c.EndDate.Format("Jan 02"))},
		{"Time left", timeLeft(c.EndDate.Sub(s.clock.Now()))},
		{"Completed challenges", fmt.Sprint(len(state.CompletedIDs))},
	}
	if def.TimeLimit > 0 {
		rows = append(rows, [2]string{"Time limit", def.TimeLimit.String()})
	}
	b.WriteString(renderRows(rows, cw))
	if c.Completed {
		b.WriteString("\n\n")
		b.WriteString(theme.Correct.Render("Challenge completed!"))
	}
	return b.String()
}

func renderRows(rows [][2]string, cw int) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(r[0])
		value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r[1])
		gap := max(cw-lipgloss.Width(label)-lipgloss.Width(value), 1)
		lines[i] = label + strings.Repeat(" ", gap) + value
	}
	return strings.Join(lines, "\n")
}

func formatMinutes(secs float64) string {
	d := time.Duration(secs * float64(time.Second)).Round(time.Second)
	if d < time.Minute {
		return d.String()
	}
	return fmt.Sprintf("%dm %02ds", int(d.Minutes()), int(d.Seconds())%60)
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func timeLeft(d time.Duration) string {
	if d <= 0 {
		return "ended"
	}
	whole := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	if whole > 0 {
		return fmt.Sprintf("%dd %dh", whole, hours)
	}
	return fmt.Sprintf("%dh %dm", hours, int(d.Minutes())%60)
}
