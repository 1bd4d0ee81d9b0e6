package practice

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	if s.phase == phaseError {
		return s.renderError(width)
	}
	if s.confirmQuit {
		return s.renderQuitConfirm(width, height)
	}

	cw := components.ContentWidth(width)
	var sections []string

	switch s.phase {
	case phaseCountdown:
		sections = append(sections,
			s.renderStatusBar(cw),
			"",
			renderBigNumber(fmt.Sprint(s.countdown), theme.Primary),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Get ready..."))
	case phaseRunning:
		sections = append(sections,
			s.renderStatusBar(cw),
			"",
			s.renderCurrentNumber(),
			"")
		if line := s.renderRealTimeSum(); line != "" {
			sections = append(sections, line, "")
		}
		sections = append(sections, s.renderInput(cw), s.renderFeedback())
	case phaseFinalAnswer:
		prompt := fmt.Sprintf("All %d numbers shown. What is the total?", s.run.Engine.Count())
		sections = append(sections,
			s.renderStatusBar(cw),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(prompt),
			"",
			s.renderInput(cw),
			s.renderFeedback())
	case phaseDone:
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Saving session..."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *PracticeScreen) renderStatusBar(cw int) string {
	round := fmt.Sprintf("Number %d of %d", s.run.Engine.Count(), s.cfg.NumberOfNumbers)
	if s.cfg.IsFreeMode() {
		round = fmt.Sprintf("Number %d · free mode", s.run.Engine.Count())
	}
	elapsed := formatElapsed(s.run.Elapsed(s.deps.Clock.Now()))

	left := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(round)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(elapsed)
	gap := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *PracticeScreen) renderCurrentNumber() string {
	if !s.run.Engine.Visible() {
		return renderBigNumber("·", theme.Border)
	}
	return renderBigNumber(fmt.Sprint(s.run.Engine.Current()), theme.ArcadeYellow)
}

func (s *PracticeScreen) renderRealTimeSum() string {
	total, show := s.run.Engine.RealTimeSum()
	if !show {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("Sum so far: %d", total))
}

func (s *PracticeScreen) renderInput(cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render("Running total  ")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(min(cw/2, 24)).
		Render(s.input.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box)
}

func (s *PracticeScreen) renderFeedback() string {
	if s.inputErr != "" {
		return theme.Incorrect.Render(s.inputErr)
	}
	a := s.lastAnswer
	if a == nil {
		return ""
	}
	switch {
	case a.Skipped:
		return theme.Skipped.Render(fmt.Sprintf("Number %d skipped", a.Round))
	case a.IsCorrect:
		return theme.Correct.Render(fmt.Sprintf("✓ Number %d: correct", a.Round))
	default:
		return theme.Incorrect.Render(fmt.Sprintf("✗ Number %d: not quite", a.Round))
	}
}

func (s *PracticeScreen) renderQuitConfirm(width, height int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quit this session?") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progress will not be saved.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.Text).Render("[Y] Quit    [N] Keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *PracticeScreen) renderError(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nSomething went wrong: %s\n\nPress Esc to go back.", s.errMsg))
}

func renderBigNumber(text string, fg color.Color) string {
	return theme.Number.
		Foreground(fg).
		Padding(1, 6).
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Border).
		Render(text)
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
