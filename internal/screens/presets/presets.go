// Package presets lets the user start a session from one of the built-in
// difficulty presets or make one the default.
package presets

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/config"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	practicescreen "github.com/abhisek/soroban/internal/screens/practice"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/layout"
	"github.com/abhisek/soroban/internal/ui/theme"
)

// PresetsScreen lists the presets.
type PresetsScreen struct {
	deps     practicescreen.Deps
	base     session.Config
	presets  []config.Preset
	selected int
	notice   string
	errMsg   string
}

var _ screen.Screen = (*PresetsScreen)(nil)
var _ screen.KeyHintProvider = (*PresetsScreen)(nil)

// New creates the picker. Display flags (voice, running sum) come from base.
func New(deps practicescreen.Deps, base session.Config) *PresetsScreen {
	var list []config.Preset
	for _, p := range config.Presets() {
		if p.ID == "tutorial" {
			continue
		}
		list = append(list, p)
	}
	return &PresetsScreen{deps: deps, base: base, presets: list}
}

func (s *PresetsScreen) Init() tea.Cmd {
	return nil
}

func (s *PresetsScreen) Title() string {
	return "Presets"
}

func (s *PresetsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "D", Description: "Set default"},
		{Key: "Esc", Description: "Back"},
	}
}

// configFor applies the user's display flags to the preset's numbers.
func (s *PresetsScreen) configFor(p config.Preset) session.Config {
	cfg := p.Config
	cfg.VoiceEnabled = s.base.VoiceEnabled
	cfg.ShowRealTimeSum = s.base.ShowRealTimeSum
	return cfg
}

func (s *PresetsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.presets)-1 {
			s.selected++
		}
	case "enter":
		p := s.presets[s.selected]
		next := practicescreen.New(s.deps, s.configFor(p))
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "d", "D":
		p := s.presets[s.selected]
		if err := s.deps.Tracker.SavePracticeDefaults(context.Background(), s.configFor(p)); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.notice = fmt.Sprintf("%s saved as your default for next time", p.Name)
	}
	return s, nil
}

func (s *PresetsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var cards []string
	for i, p := range s.presets {
		cards = append(cards, renderPreset(p, i == s.selected, cw))
	}
	sections := []string{strings.Join(cards, "\n")}

	if s.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+s.notice))
	}
	if s.errMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func renderPreset(p config.Preset, selected bool, cw int) string {
	accent := lipgloss.Color(p.Color)
	border := lipgloss.RoundedBorder()

	name := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(p.Icon + " " + p.Name)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Description)
	detail := lipgloss.NewStyle().Foreground(theme.Text).Render(describe(p.Config))

	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 1)
	if selected {
		style = style.BorderForeground(accent)
		name = "▸ " + name
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, name, desc, detail))
}

func describe(c session.Config) string {
	count := fmt.Sprintf("%d numbers", c.NumberOfNumbers)
	if c.IsFreeMode() {
		count = "unlimited numbers"
	}
	return fmt.Sprintf("%s · %d-%d · %gs each", count, c.MinNumber, c.MaxNumber, c.TimeBetweenNumbers)
}
