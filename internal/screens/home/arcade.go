package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/levels"
	"github.com/abhisek/soroban/internal/screens/welcome"
	"github.com/abhisek/soroban/internal/ui/components"
	"github.com/abhisek/soroban/internal/ui/theme"
)

const arcadeTitleCompact = "S · O · R · O · B · A · N"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := welcome.BannerArt
	if compact || cw < 60 {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar draws level, XP and streak in the cyan bead rail.
func renderStatsBar(lvl levels.Level, xp, streak, cw int, compact bool) string {
	level := fmt.Sprintf("%s LV %d %s", lvl.Icon, lvl.Level, strings.ToUpper(lvl.Name))
	points := fmt.Sprintf("◆ %d XP", xp)
	sep := "  "
	if compact {
		level, points, sep = fmt.Sprintf("Lv%d", lvl.Level), fmt.Sprintf("◆%d", xp), " "
	}

	line := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(level) + sep +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(points) + sep +
		streakText(streak, compact)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

func streakText(days int, compact bool) string {
	if days == 0 {
		text := "★ NO STREAK"
		if compact {
			text = "★0"
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
	}
	text := fmt.Sprintf("★ %d DAYS", days)
	switch {
	case compact:
		text = fmt.Sprintf("★%d", days)
	case days == 1:
		text = "★ 1 DAY"
	}
	return lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu draws the menu as buttons when there is room, plain lines
// otherwise, centred in the content column.
func renderMenu(m components.Menu, cw int, buttons bool) string {
	block := m.View()
	if buttons {
		block = m.Buttons(buttonWidth)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(block)
}

// renderReminder renders the one-line daily practice nudge.
func renderReminder(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⏰ Time for today's practice! Keep your streak alive.")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
