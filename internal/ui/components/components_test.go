package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeKeys(in NumberInput, keys string) NumberInput {
	for _, r := range keys {
		in, _ = in.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return in
}

func TestNumberInputFiltersLetters(t *testing.T) {
	in := typeKeys(NewNumberInput("", 10), "1a2b3 ")
	assert.Equal(t, "123", in.Value())
}

func TestNumberInputLeadingMinus(t *testing.T) {
	in := typeKeys(NewNumberInput("", 10), "-12-")
	assert.Equal(t, "-12", in.Value())

	n, err := in.Int()
	require.NoError(t, err)
	assert.Equal(t, -12, n)
}

func TestNumberInputLimit(t *testing.T) {
	in := typeKeys(NewNumberInput("", 3), "12345")
	assert.Equal(t, "123", in.Value())
}

func TestNumberInputReset(t *testing.T) {
	in := typeKeys(NewNumberInput("", 10), "42")
	in.Reset()
	assert.Empty(t, in.Value())
}

func testMenu(activated *string) Menu {
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			*activated = label
			return nil
		}}
	}
	return NewMenu([]MenuItem{item("A"), item("B"), item("C")})
}

func TestMenuWrapsAround(t *testing.T) {
	var got string
	m := testMenu(&got)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	var got string
	m := testMenu(&got)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "B", got)
}

func TestMenuDigitShortcut(t *testing.T) {
	var got string
	m := testMenu(&got)

	m, _ = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	assert.Equal(t, 2, m.Selected)
	assert.Equal(t, "C", got)

	got = ""
	m, _ = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Equal(t, 2, m.Selected, "out of range digit is ignored")
	assert.Empty(t, got)
}

func TestMenuBadgeAndHighlight(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "PLAY"}, {Label: "LEARN", Badge: "NEW", Highlight: true}})
	assert.Equal(t, "LEARN NEW", m.Items[1].Text())
	assert.Contains(t, m.View(), "▸ PLAY")
	assert.Contains(t, m.View(), "LEARN NEW")
	assert.Contains(t, m.Buttons(20), "LEARN NEW")
}

func TestProgressBarClamps(t *testing.T) {
	over := NewProgressBar("", 150, false, 20).View()
	under := NewProgressBar("", -10, false, 20).View()
	assert.Equal(t, 20, lipgloss.Width(over))
	assert.Equal(t, 20, lipgloss.Width(under))
	assert.NotContains(t, under, filledRune)
	assert.NotContains(t, over, emptyRune)
}

func TestProgressBarWithLabelKeepsWidth(t *testing.T) {
	bar := NewProgressBar("Lv 2", 50, true, 30).View()
	assert.Equal(t, 30, lipgloss.Width(bar))
	assert.Contains(t, bar, " 50%")
}

func TestArcadeButtonMarksSelection(t *testing.T) {
	assert.True(t, strings.Contains(ArcadeButton("Next", true, 20), "▸ Next"))
	assert.False(t, strings.Contains(ArcadeButton("Next", false, 20), "▸"))
	assert.Contains(t, KeyButton("CONTINUE", "⏎", 20), "CONTINUE ⏎")
}

func TestContentWidthBounds(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 60, ContentWidth(200))
}

func TestAbacusRows(t *testing.T) {
	rows := AbacusRows(7, 1)
	require.Len(t, rows, 8)
	// 7 = heaven bead on the bar plus two earth beads up.
	assert.Equal(t, []string{"│", "●", "═", "●", "●", "│", "●", "●"}, rows)

	rows = AbacusRows(40, 2)
	assert.Equal(t, "● ●", rows[0])
	assert.Equal(t, "═══", rows[2])
	assert.Equal(t, "● │", rows[3], "tens rod has four beads up, units rod none")
	assert.Equal(t, "│ ●", rows[7])
}

func TestAbacusKeepsLowDigits(t *testing.T) {
	assert.Equal(t, AbacusRows(5, 1), AbacusRows(1235, 1))
	assert.Equal(t, AbacusRows(12, 2), AbacusRows(-12, 2))
	assert.Len(t, strings.Split(Abacus(1968, 4), "\n"), 10, "eight rows plus the frame")
}
