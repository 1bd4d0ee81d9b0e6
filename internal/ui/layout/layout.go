// Package layout draws the chrome around every screen: the progression
// header, the key hint footer and the size guard.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below these the home screen drops the banner art and the mascot.
	CompactWidth  = 100
	CompactHeight = 30

	// At or above this height there is room for the mascot and button menu.
	RoomyHeight = 48
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a screen should use its condensed layout.
func IsCompact(width, height int) bool {
	return width < CompactWidth || height < CompactHeight
}

// IsRoomy reports whether height leaves room for decorative extras.
func IsRoomy(height int) bool {
	return height >= RoomyHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	body := fmt.Sprintf("Terminal too small!\n\nThe abacus needs at least %d x %d\n\nCurrent: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(body)
}

// HeaderStats is the progression shown on the right of the header.
type HeaderStats struct {
	Level  int
	Icon   string
	XP     int
	Streak int
}

func (hs HeaderStats) render() string {
	level := fmt.Sprintf("Lv %d", hs.Level)
	if hs.Icon != "" {
		level = hs.Icon + " " + level
	}
	streak := "★ no streak"
	switch {
	case hs.Streak == 1:
		streak = "★ 1 day"
	case hs.Streak > 1:
		streak = fmt.Sprintf("★ %d days", hs.Streak)
	}
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(level) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %d XP  ", hs.XP)) +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(streak)
}

// RenderHeader draws the app name, the screen title centred, and the
// progression stats on the right.
func RenderHeader(title string, hs HeaderStats, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" Soroban")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	stats := hs.render()

	inner := max(width-4, 0)
	nameW, centerW, statsW := lipgloss.Width(name), lipgloss.Width(center), lipgloss.Width(stats)
	left := max((inner-centerW)/2-nameW, 1)
	right := max(inner-nameW-left-centerW-statsW, 1)

	line := name + strings.Repeat(" ", left) + center + strings.Repeat(" ", right) + stats
	return bar(line, width)
}

// RenderFooter draws the key hints of the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(" ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString(descStyle.Render("  ·  "))
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description))
	}
	return bar(b.String(), width)
}

func bar(line string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(line)
}

// RenderFrame stacks header, content and footer, giving the content all
// height the bars leave over.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Width(width).Height(body).Render(content),
		footer,
	)
}
