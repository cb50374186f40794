package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devgrill/repogrill/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with repogrill styling.
type TextInput struct {
	Model   textinput.Model
	errText string
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input, with an inline marker when flagged invalid.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errText != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// MarkInvalid flags the input as failing validation.
func (t *TextInput) MarkInvalid(msg string) {
	t.errText = msg
}

// ClearInvalid removes a previous validation flag.
func (t *TextInput) ClearInvalid() {
	t.errText = ""
}
