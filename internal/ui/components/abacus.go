package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

const (
	beadRune = "●"
	rodRune  = "│"
	barRune  = "═"
)

// AbacusRows draws the last rods digits of n on a soroban, one column
// per digit: two heaven rows, the bar, then five earth slots. The heaven
// bead counts five when it rests on the bar; each earth bead pushed up
// to the bar counts one.
func AbacusRows(n, rods int) []string {
	if n < 0 {
		n = -n
	}
	digits := make([]int, rods)
	for i := rods - 1; i >= 0; i-- {
		digits[i] = n % 10
		n /= 10
	}

	rows := make([][]string, 8)
	for _, d := range digits {
		top, low := beadRune, rodRune
		if d >= 5 {
			top, low = rodRune, beadRune
		}
		rows[0] = append(rows[0], top)
		rows[1] = append(rows[1], low)
		rows[2] = append(rows[2], barRune)

		// d%5 beads at the bar, one empty slot, the rest resting below.
		for slot := range 5 {
			cell := beadRune
			if slot == d%5 {
				cell = rodRune
			}
			rows[3+slot] = append(rows[3+slot], cell)
		}
	}

	out := make([]string, len(rows))
	for i, r := range rows {
		sep := " "
		if i == 2 {
			sep = barRune
		}
		out[i] = strings.Join(r, sep)
	}
	return out
}

// Abacus renders AbacusRows inside a wooden frame.
func Abacus(n, rods int) string {
	return theme.Bead.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Render(strings.Join(AbacusRows(n, rods), "\n"))
}
