package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/clock"
	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// maxAnswerRows caps the per-number answer table.
const maxAnswerRows = 8

type levelUpExpiredMsg struct{}

// SummaryScreen displays the outcome of a finished session.
type SummaryScreen struct {
	clock clock.Clock
	out   tracker.Outcome
	again func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. again builds a fresh session with the same
// settings; it may be nil.
func New(clk clock.Clock, out tracker.Outcome, again func() screen.Screen) *SummaryScreen {
	if clk == nil {
		clk = clock.Real{}
	}
	return &SummaryScreen{clock: clk, out: out, again: again}
}

// Init schedules a redraw for when the level-up notice expires.
func (s *SummaryScreen) Init() tea.Cmd {
	lu := s.out.LevelUp
	now := s.clock.Now()
	if !lu.Active(now) {
		return nil
	}
	return tea.Tick(lu.ExpiresAt.Sub(now), func(time.Time) tea.Msg {
		return levelUpExpiredMsg{}
	})
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	if s.again != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Practice again"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case levelUpExpiredMsg:
		return s, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			// The practice screen was replaced, so one pop returns home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if s.again == nil {
				return s, nil
			}
			next := s.again()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "d", "D":
			s.out.LevelUp.Dismiss()
			return s, nil
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	rec := s.out.Record
	var b strings.Builder

	title := "Session complete!"
	if rec.IsPerfect() {
		title = "Perfect session!"
	}
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title)))
	b.WriteString("\n\n")

	if lu := s.out.LevelUp; lu.Active(s.clock.Now()) {
		b.WriteString(centered(width, renderLevelUp(lu)))
		b.WriteString("\n\n")
	}

	meta := fmt.Sprintf("Duration: %s        Speed: %.1f numbers/min",
		formatDuration(rec.Elapsed()), rec.Speed())
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta)))
	b.WriteString("\n\n")

	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(
		wrapNumbers(rec.Numbers, min(width-8, 60)))))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(
		fmt.Sprintf("Total: %d", rec.Total))))
	b.WriteString("\n\n")

	score := fmt.Sprintf("Correct: %d        Answered: %d        Accuracy: %d%%",
		rec.CorrectCount, rec.TotalAnswered, rec.Accuracy)
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(score)))
	b.WriteString("\n")
	b.WriteString(s.renderAnswers(width))

	b.WriteString(section(width, "Progress"))
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(
		fmt.Sprintf("+%d XP", s.out.XP))))
	b.WriteString("\n")
	lvl := levels.ByXP(s.out.Stats.TotalXP)
	prog := levels.ProgressFor(s.out.Stats.TotalXP)
	bar := components.NewProgressBar(fmt.Sprintf("Lv %d %s", lvl.Level, lvl.Name), prog.Percent, true,
		min(width-8, 56))
	b.WriteString(centered(width, bar.View()))
	b.WriteString("\n")

	if len(s.out.NewAchievements) > 0 {
		b.WriteString(section(width, "Achievements"))
		for _, d := range s.out.NewAchievements {
			line := fmt.Sprintf("%s %s: %s", d.Icon, d.Name, d.Description)
			b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(line)))
			b.WriteString("\n")
		}
	}

	if def, ok := s.out.Challenge.Definition(); ok {
		b.WriteString(section(width, "Weekly challenge"))
		line := fmt.Sprintf("%s %s  %d/%d", def.Reward, def.Title, s.out.Challenge.Progress, def.Goal)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.out.ChallengeCompleted {
			line += "  completed!"
			style = style.Foreground(theme.Success).Bold(true)
		}
		b.WriteString(centered(width, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(width, components.KeyButton("CONTINUE", "⏎", 20)))
	return b.String()
}

func (s *SummaryScreen) renderAnswers(width int) string {
	answers := s.out.Record.Answers
	if len(answers) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	start := max(len(answers)-maxAnswerRows, 0)
	if start > 0 {
		b.WriteString(centered(width, theme.Skipped.Render(fmt.Sprintf("… %d earlier", start))))
		b.WriteString("\n")
	}
	for _, a := range answers[start:] {
		b.WriteString(centered(width, renderAnswer(a)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderAnswer(a session.AnswerRecord) string {
	switch {
	case a.Skipped:
		return theme.Skipped.Render(fmt.Sprintf("#%-3d skipped", a.Round))
	case a.IsCorrect:
		return theme.Correct.Render(fmt.Sprintf("#%-3d %6d  ✓", a.Round, a.UserResult))
	default:
		return theme.Incorrect.Render(fmt.Sprintf("#%-3d %6d  ✗  expected %d (off by %d)",
			a.Round, a.UserResult, a.Expected, a.Difference))
	}
}

func renderLevelUp(lu *levels.LevelUp) string {
	text := fmt.Sprintf("%s Level up! You are now level %d: %s", lu.Level.Icon, lu.Level.Level, lu.Level.Name)
	for _, r := range lu.Level.Rewards {
		text += fmt.Sprintf("\nUnlocked %s %s", r.Icon, r.Name)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeYellow).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Align(lipgloss.Center).
		Padding(0, 2).
		Render(text)
}

func section(width int, name string) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	return "\n" + centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(name)) + "\n" +
		centered(width, divider) + "\n"
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// wrapNumbers joins the shown numbers with " + " and wraps at width.
func wrapNumbers(numbers []int, width int) string {
	var lines []string
	var line string
	for i, n := range numbers {
		part := fmt.Sprint(n)
		if i > 0 {
			part = " + " + part
		}
		if line != "" && len(line)+len(part) > width {
			lines = append(lines, line)
			line = ""
			part = strings.TrimPrefix(part, " ")
		}
		line += part
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
