package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

const (
	filledRune = "━"
	emptyRune  = "─"
)

// ProgressBar is a labelled horizontal bar. Percent is 0-100.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a bar of the given total width.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// View renders label, bar and percentage on one line of exactly Width
// cells, or wider when Width leaves no room for a minimal bar.
func (p ProgressBar) View() string {
	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + " "
	}
	pct := min(max(p.Percent, 0), 100)
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(" %3d%%", int(pct)))
	}

	bar := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), 4)
	filled := int(float64(bar) * pct / 100)

	return label +
		theme.ProgressFilled.Render(strings.Repeat(filledRune, filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(emptyRune, bar-filled)) +
		suffix
}
