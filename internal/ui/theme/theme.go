// Package theme holds the palette and shared styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: warm wood frame tones around bright bead colours.
var (
	Primary   = lipgloss.Color("#F59E0B") // amber wood
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange bead
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15") // heaven bead
	ArcadeCyan   = lipgloss.Color("#22D3EE") // earth bead
)

// Answer states.
var (
	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
	Skipped   = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// Number is the style of the flashed number during practice.
var Number = lipgloss.NewStyle().
	Foreground(ArcadeYellow).
	Bold(true)

// Bead is the style of abacus beads and step markers.
var Bead = lipgloss.NewStyle().Foreground(ArcadeYellow).Bold(true)

// Progress bar segments. The filled part uses bead colour on wood.
var (
	ProgressFilled = lipgloss.NewStyle().Foreground(ArcadeYellow)
	ProgressEmpty  = lipgloss.NewStyle().Foreground(Border)
)

// Buttons.
var (
	ButtonNormal = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	ButtonSelected = ButtonNormal.
			Bold(true).
			Foreground(BgDark).
			Background(ArcadeYellow).
			BorderForeground(ArcadeYellow)

	ButtonAccent = ButtonNormal.
			Foreground(Accent).
			BorderForeground(Accent)
)
