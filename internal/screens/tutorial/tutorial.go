// Package tutorial walks a new user through how the trainer works and
// ends with a short guided session.
package tutorial

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/config"
	"github.com/abhisek/soroban/internal/prefs"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	practicescreen "github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// exampleNumber is drawn on the abacus in the structure step.
const exampleNumber = 1968

// TutorialScreen is the step wizard. Progress is saved on every move.
type TutorialScreen struct {
	deps   practicescreen.Deps
	tut    prefs.Tutorial
	errMsg string
}

var _ screen.Screen = (*TutorialScreen)(nil)
var _ screen.KeyHintProvider = (*TutorialScreen)(nil)

// New resumes the saved tutorial; a finished one starts over at the first
// step.
func New(deps practicescreen.Deps) *TutorialScreen {
	tut := deps.Tracker.Tutorial()
	if tut.Done() {
		tut.GoTo(0)
	}
	return &TutorialScreen{deps: deps, tut: tut}
}

func (s *TutorialScreen) Init() tea.Cmd {
	return nil
}

func (s *TutorialScreen) Title() string {
	return "Tutorial"
}

func (s *TutorialScreen) KeyHints() []layout.KeyHint {
	next := "Next"
	if s.tut.IsLast() {
		next = "Start practice"
	}
	return []layout.KeyHint{
		{Key: "→", Description: next},
		{Key: "←", Description: "Back"},
		{Key: "S", Description: "Skip"},
		{Key: "Esc", Description: "Later"},
	}
}

func (s *TutorialScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "right", "l", "enter", "space":
		if s.tut.IsLast() {
			s.tut.Complete()
			s.save()
			return s, s.startPractice()
		}
		s.tut.Next()
		s.save()
	case "left", "h", "backspace":
		s.tut.Prev()
		s.save()
	case "s", "S":
		if !s.tut.Completed {
			s.tut.Skip()
		}
		s.save()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *TutorialScreen) save() {
	if err := s.deps.Tracker.SetTutorial(context.Background(), s.tut); err != nil {
		s.errMsg = err.Error()
	}
}

func (s *TutorialScreen) startPractice() tea.Cmd {
	p, ok := config.LookupPreset("tutorial")
	if !ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	next := practicescreen.New(s.deps, p.Config)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *TutorialScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	step := s.tut.Step()
	idx := s.tut.CurrentStep

	var sections []string
	sections = append(sections, renderDots(idx, len(prefs.Steps)))
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Step %d of %d", idx+1, len(prefs.Steps))))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(step.Title))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Text).Width(cw).Align(lipgloss.Center).Render(step.Body))

	if step.Key == "structure" {
		sections = append(sections, "", components.Abacus(exampleNumber, 4),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("This abacus shows %d", exampleNumber)))
	}

	next := "NEXT"
	if s.tut.IsLast() {
		next = "START PRACTICE"
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.ArcadeButton("BACK", false, 14), "  ", components.ArcadeButton(next, true, 20))
	sections = append(sections, "", buttons)

	if s.errMsg != "" {
		sections = append(sections, "", lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.CabinetFrame(content, width, height)
}

func renderDots(current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		if i == current {
			dots[i] = theme.Bead.Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(dots, " ")
}
