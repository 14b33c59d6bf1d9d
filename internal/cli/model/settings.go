// Package model provides Bubble Tea models for interactive CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/cli/styles"
	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// SettingsModel is the interactive settings editor. It shows one input per
// editable key, validates the record as a whole on save, and keeps the user
// in the form when the record is rejected.
type SettingsModel struct {
	fields []settingsField
	focus  int

	base     entity.Config
	updateUC *usecase.UpdateSettingsUseCase

	saved    bool
	result   entity.Config
	err      error
	quitting bool

	theme *styles.Theme
	ctx   context.Context
}

type settingsField struct {
	info  entity.SettingKeyInfo
	input textinput.Model
}

// settingsSavedMsg is sent when the save attempt completes.
type settingsSavedMsg struct {
	cfg entity.Config
	err error
}

// NewSettingsModel creates the editor prefilled from the current record.
func NewSettingsModel(
	ctx context.Context,
	theme *styles.Theme,
	cfg entity.Config,
	updateUC *usecase.UpdateSettingsUseCase,
) SettingsModel {
	keys := entity.SettingKeys()
	fields := make([]settingsField, 0, len(keys))

	for i, info := range keys {
		ti := styles.NewStyledInput(theme, info.Default)
		ti.Width = 24
		if value, err := cfg.KeyValue(info.Key); err == nil {
			ti.SetValue(value)
		}
		if i == 0 {
			ti.Focus()
		}
		fields = append(fields, settingsField{info: info, input: ti})
	}

	return SettingsModel{
		fields:   fields,
		base:     cfg,
		updateUC: updateUC,
		theme:    theme,
		ctx:      ctx,
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1)
		case "shift+tab", "up":
			return m.moveFocus(-1)
		case "enter":
			return m, m.save()
		}

	case settingsSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.saved = true
		m.result = msg.cfg
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m SettingsModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	return m, m.fields[m.focus].input.Focus()
}

// save parses every field into a replacement record and persists it. The
// use case validates the whole record, so a bad field never reaches disk.
func (m SettingsModel) save() tea.Cmd {
	return func() tea.Msg {
		cfg := m.base
		var err error
		for _, f := range m.fields {
			cfg, err = cfg.WithKey(f.info.Key, strings.TrimSpace(f.input.Value()))
			if err != nil {
				return settingsSavedMsg{err: err}
			}
		}

		out, err := m.updateUC.Execute(m.ctx, usecase.UpdateSettingsInput{Config: cfg})
		return settingsSavedMsg{cfg: out, err: err}
	}
}

// View implements tea.Model.
func (m SettingsModel) View() string {
	if m.quitting || m.saved {
		return ""
	}

	t := m.theme

	var b strings.Builder
	b.WriteString(t.Title.Render("Scrollkit Settings"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		label := t.Subtle.Render(f.info.Key)
		if i == m.focus {
			label = t.Highlight.Render(f.info.Key)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(t.InputBox(f.input.View(), i == m.focus))
		b.WriteString("\n")
	}

	if m.err != nil {
		iconStyle := lipgloss.NewStyle().Foreground(t.Error)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s",
			iconStyle.Render(styles.IconX),
			t.ErrorStyle.Render(m.err.Error()),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.HelpKey.Render("tab") + " " + t.HelpDesc.Render("next field") + "  " +
		t.HelpKey.Render("enter") + " " + t.HelpDesc.Render("save") + "  " +
		t.HelpKey.Render("esc") + " " + t.HelpDesc.Render("cancel"))

	return b.String()
}

// Saved reports whether the editor persisted a record before exiting.
func (m SettingsModel) Saved() bool {
	return m.saved
}

// Result returns the persisted record. Only meaningful once Saved.
func (m SettingsModel) Result() entity.Config {
	return m.result
}
