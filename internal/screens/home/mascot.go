package home

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// MascotVariant is the mood of the abacus mascot on the home screen.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // perfect session today
	MascotAlert                     // practice reminder due
)

// mascot is a little abacus whose top rod doubles as a face.
type mascot struct {
	fg  color.Color
	art string
}

var mascots = map[MascotVariant]mascot{
	MascotIdle: {theme.Primary, `╔═══════╗
║ ● ● ● ║
╠═══════╣
║ ◉   ◉ ║
║   ▽   ║
╚═══════╝`},
	MascotCelebrating: {theme.ArcadeYellow, `╔═══════╗
║ ● ● ● ║
╠═══════╣
║ ★   ★ ║
║   ▿   ║
╚═╥═══╥═╝
  ╚═══╝`},
	MascotAlert: {theme.Accent, `╔═══════╗
║ ● ● ● ║ !
╠═══════╣
║ ◉   ◉ ║
║   ○   ║
╚═══════╝`},
}

// RenderMascot draws the mascot for v, falling back to idle.
func RenderMascot(v MascotVariant) string {
	m, ok := mascots[v]
	if !ok {
		m = mascots[MascotIdle]
	}
	return lipgloss.NewStyle().Foreground(m.fg).Render(m.art)
}
