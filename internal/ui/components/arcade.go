// Package components holds the reusable widgets drawn inside the wooden
// cabinet frame.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// Bounds of the column every cabinet section is drawn in.
const (
	minContentWidth = 20
	maxContentWidth = 60
)

var accentButton = theme.ButtonAccent

// ContentWidth returns the width of the centred column inside a cabinet
// of frameWidth, leaving room for the double border and padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// CabinetFrame draws the double-border wooden frame and centres content
// in it both ways.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeButton renders a bordered button; the selected one is filled and
// carries a pointer.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return theme.ButtonSelected.Width(width).Render("▸ " + label)
	}
	return theme.ButtonNormal.Width(width).Render(label)
}

// KeyButton renders a selected button that names the key activating it,
// such as "CONTINUE ⏎".
func KeyButton(label, key string, width int) string {
	return ArcadeButton(label+" "+key, true, width)
}
