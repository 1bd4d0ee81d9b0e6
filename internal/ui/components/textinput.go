package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput is a single-line field that only accepts an optionally
// negative integer.
type NumberInput struct {
	model textinput.Model
}

// NewNumberInput creates a focused input holding at most digits runes,
// the minus sign included.
func NewNumberInput(placeholder string, digits int) NumberInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = "› "
	m.CharLimit = digits
	m.Focus()
	return NumberInput{model: m}
}

func (in NumberInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards editing keys and drops printable keys that cannot be
// part of an integer.
func (in NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if k, ok := msg.(tea.KeyPressMsg); ok && k.Text != "" && !acceptsRune(k.Text, in.model.Value()) {
		return in, nil
	}
	var cmd tea.Cmd
	in.model, cmd = in.model.Update(msg)
	return in, cmd
}

func (in NumberInput) View() string {
	return in.model.View()
}

// Value returns the raw text.
func (in NumberInput) Value() string {
	return in.model.Value()
}

// Int parses the text as an integer.
func (in NumberInput) Int() (int, error) {
	return strconv.Atoi(in.model.Value())
}

// Reset empties the field.
func (in *NumberInput) Reset() {
	in.model.Reset()
}

// acceptsRune allows digits anywhere and a minus sign only as the first
// character.
func acceptsRune(text, current string) bool {
	if len(text) != 1 {
		return false
	}
	c := text[0]
	return c >= '0' && c <= '9' || c == '-' && current == ""
}
