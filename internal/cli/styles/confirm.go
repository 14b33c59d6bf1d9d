package styles

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a yes/no confirmation dialog. The zero value is unusable;
// create one with NewConfirm.
type ConfirmModel struct {
	Message string

	yes      bool
	decided  bool
	canceled bool
	theme    *Theme
}

// NewConfirm creates a new confirmation dialog defaulting to "No".
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		theme:   theme,
	}
}

// Update processes key input and returns the new model state.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "right", "l":
		m.yes = true
	case "n", "left", "h":
		m.yes = false
	case "enter":
		m.decided = true
	case "esc", "q":
		m.canceled = true
	}

	return m, nil
}

// Done reports whether the user has answered or dismissed the dialog.
func (m ConfirmModel) Done() bool {
	return m.decided || m.canceled
}

// Result reports whether the user confirmed. Only meaningful once Done.
func (m ConfirmModel) Result() bool {
	return m.decided && m.yes && !m.canceled
}

// View renders the dialog with the current selection highlighted.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle := t.InactiveButton
	noStyle := t.ActiveButton
	if m.yes {
		yesStyle = t.ActiveButton
		noStyle = t.InactiveButton
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		noStyle.Render("No"),
		"  ",
		yesStyle.Render("Yes"),
	)

	help := t.HelpDesc.Render("←/→ select") + "  " +
		t.HelpKey.Render("enter") + " " + t.HelpDesc.Render("confirm") + "  " +
		t.HelpKey.Render("esc") + " " + t.HelpDesc.Render("cancel")

	body := t.Normal.Render(m.Message) + "\n\n" + buttons + "\n\n" + help
	return t.Box.Render(body)
}
