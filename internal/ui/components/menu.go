package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Badge is appended to the label and
// Highlight draws the entry in the accent colour when it is not selected.
type MenuItem struct {
	Label     string
	Badge     string
	Highlight bool
	Action    func() tea.Cmd
}

// Text returns the label with its badge.
func (it MenuItem) Text() string {
	if it.Badge == "" {
		return it.Label
	}
	return it.Label + " " + it.Badge
}

// Menu is a vertical list navigated with the arrow keys or j/k, wrapping
// at both ends. Digits 1-9 jump to and activate an entry.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles navigation and activation keys.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter", "space":
		return m, m.activate()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Items) {
				m.Selected = i
				return m, m.activate()
			}
		}
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if item := m.Items[m.Selected]; item.Action != nil {
		return item.Action()
	}
	return nil
}

// View renders the menu as plain lines for tight terminals.
func (m Menu) View() string {
	selected := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
	accent := lipgloss.NewStyle().Foreground(theme.Accent)
	normal := lipgloss.NewStyle().Foreground(theme.Text)

	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			lines[i] = selected.Render(" ▸ " + item.Text() + " ")
		case item.Highlight:
			lines[i] = accent.Render("   " + item.Text())
		default:
			lines[i] = normal.Render("   " + item.Text())
		}
	}
	return strings.Join(lines, "\n")
}

// Buttons renders the menu as a column of bordered buttons of width w.
func (m Menu) Buttons(w int) string {
	buttons := make([]string, len(m.Items))
	for i, item := range m.Items {
		switch {
		case i == m.Selected:
			buttons[i] = ArcadeButton(item.Text(), true, w)
		case item.Highlight:
			buttons[i] = accentButton.Width(w).Render(item.Text())
		default:
			buttons[i] = ArcadeButton(item.Text(), false, w)
		}
	}
	return strings.Join(buttons, "\n")
}
