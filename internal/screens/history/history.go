package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/tracker"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDelete
	confirmClear
)

// HistoryScreen lists past sessions, newest first.
type HistoryScreen struct {
	tracker  *tracker.Tracker
	sessions []session.Record
	selected int
	expanded map[string]bool
	confirm  confirmKind
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscapeHandler = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(tr *tracker.Tracker) *HistoryScreen {
	s := &HistoryScreen{
		tracker:  tr,
		expanded: make(map[string]bool),
	}
	s.reload()
	return s
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// HandlesEscape lets Esc cancel a pending confirmation.
func (s *HistoryScreen) HandlesEscape() bool {
	return true
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirm != confirmNone {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "D", Description: "Delete"},
		{Key: "C", Description: "Clear all"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirm != confirmNone {
		switch kmsg.String() {
		case "y", "Y":
			s.apply()
		case "n", "N", "esc":
			s.confirm = confirmNone
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		if rec, ok := s.current(); ok {
			s.expanded[rec.ID] = !s.expanded[rec.ID]
		}
	case "d", "D", "delete":
		if _, ok := s.current(); ok {
			s.confirm = confirmDelete
		}
	case "c", "C":
		if len(s.sessions) > 0 {
			s.confirm = confirmClear
		}
	}
	return s, nil
}

func (s *HistoryScreen) apply() {
	ctx := context.Background()
	var err error
	switch s.confirm {
	case confirmDelete:
		if rec, ok := s.current(); ok {
			err = s.tracker.DeleteSession(ctx, rec.ID)
			delete(s.expanded, rec.ID)
		}
	case confirmClear:
		err = s.tracker.ClearHistory(ctx)
		clear(s.expanded)
	}
	s.confirm = confirmNone
	if err != nil {
		s.errMsg = err.Error()
	}
	s.reload()
}

func (s *HistoryScreen) reload() {
	s.sessions = s.tracker.Records()
	if s.selected >= len(s.sessions) {
		s.selected = max(len(s.sessions)-1, 0)
	}
}

func (s *HistoryScreen) current() (session.Record, bool) {
	if s.selected < 0 || s.selected >= len(s.sessions) {
		return session.Record{}, false
	}
	return s.sessions[s.selected], true
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.confirm != confirmNone {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderConfirm()))
		b.WriteString("\n\n")
	}

	// Keep the selection on screen; each row is one line plus details.
	rows := max(height-4, 1)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}

	for i := start; i < len(s.sessions) && i < start+rows; i++ {
		rec := s.sessions[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+summaryLine(rec))))
		b.WriteString("\n")

		if s.expanded[rec.ID] {
			for _, line := range detailLines(rec) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderConfirm() string {
	text := "Delete this session? Earned XP is kept."
	if s.confirm == confirmClear {
		text = fmt.Sprintf("Delete all %d sessions? Earned XP is kept.", len(s.sessions))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Foreground(theme.Text).
		Padding(0, 2).
		Render(text + "  [Y/N]")
}

func summaryLine(rec session.Record) string {
	dateStr := rec.Timestamp.Local().Format("Jan 02, 2006 15:04")
	secs := int(rec.Elapsed().Seconds())
	durationStr := fmt.Sprintf("%d:%02d", secs/60, secs%60)

	mode := fmt.Sprintf("%d numbers", len(rec.Numbers))
	if rec.Config.IsFreeMode() {
		mode += " (free)"
	}
	mark := ""
	if rec.IsPerfect() {
		mark = "  ★"
	}
	return fmt.Sprintf("%s  %s  %-18s %3d%% accuracy  +%d XP%s",
		dateStr, durationStr, mode, rec.Accuracy, rec.XPEarned, mark)
}

func detailLines(rec session.Record) []string {
	nums := make([]string, len(rec.Numbers))
	for i, n := range rec.Numbers {
		nums[i] = fmt.Sprint(n)
	}
	numbers := strings.Join(nums, " + ")
	if len(numbers) > 60 {
		numbers = numbers[:57] + "..."
	}
	skipped := 0
	for _, a := range rec.Answers {
		if a.Skipped {
			skipped++
		}
	}
	return []string{
		fmt.Sprintf("    %s = %d", numbers, rec.Total),
		fmt.Sprintf("    %d correct of %d answered, %d skipped · %.1f numbers/min",
			rec.CorrectCount, rec.TotalAnswered, skipped, rec.Speed()),
		fmt.Sprintf("    range %d-%d · %.1fs per number",
			rec.Config.MinNumber, rec.Config.MaxNumber, rec.Config.TimeBetweenNumbers),
	}
}
