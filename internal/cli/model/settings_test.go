package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/cli/styles"
	"github.com/driftnote/scrollkit/internal/domain/entity"
	"github.com/driftnote/scrollkit/internal/infrastructure/config"
	"github.com/driftnote/scrollkit/internal/logging"
)

func newTestEditor(t *testing.T) (SettingsModel, *config.Store) {
	t.Helper()

	logger := logging.NewFromConfigValues("error", "console")
	ctx := logging.WithContext(context.Background(), logger)

	store, err := config.NewAt(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg, err := store.Load(ctx)
	require.NoError(t, err)

	uc := usecase.NewUpdateSettingsUseCase(store)
	return NewSettingsModel(ctx, styles.NewTheme(), cfg, uc), store
}

func TestSettingsModel_ViewShowsEveryKey(t *testing.T) {
	m, _ := newTestEditor(t)

	view := m.View()
	for _, key := range entity.SettingKeys() {
		require.Contains(t, view, key.Key)
	}
}

func TestSettingsModel_FocusWraps(t *testing.T) {
	m, _ := newTestEditor(t)

	next, _ := m.moveFocus(-1)
	m = next.(SettingsModel)
	require.Equal(t, len(m.fields)-1, m.focus)

	next, _ = m.moveFocus(1)
	m = next.(SettingsModel)
	require.Equal(t, 0, m.focus)
}

func TestSettingsModel_SavePersistsEditedRecord(t *testing.T) {
	m, store := newTestEditor(t)

	// Edit the hide delay field directly, then run the save command.
	for i := range m.fields {
		if m.fields[i].info.Key == entity.KeyHideDelay {
			m.fields[i].input.SetValue("900")
		}
	}

	msg := m.save()()
	saved, ok := msg.(settingsSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	require.Equal(t, 900, saved.cfg.Scrollbars.HideDelayMs)

	next, _ := m.Update(msg)
	m = next.(SettingsModel)
	require.True(t, m.Saved())
	require.Equal(t, 900, m.Result().Scrollbars.HideDelayMs)
	require.Equal(t, 900, store.Current().Scrollbars.HideDelayMs)
}

func TestSettingsModel_InvalidRecordKeepsEditing(t *testing.T) {
	m, store := newTestEditor(t)

	for i := range m.fields {
		if m.fields[i].info.Key == entity.KeyHideDelay {
			m.fields[i].input.SetValue("0")
		}
	}

	msg := m.save()()
	saved, ok := msg.(settingsSavedMsg)
	require.True(t, ok)
	require.Error(t, saved.err)

	next, _ := m.Update(msg)
	m = next.(SettingsModel)
	require.False(t, m.Saved())
	require.Contains(t, m.View(), "hide_delay_ms")
	require.Equal(t, entity.DefaultHideDelayMs, store.Current().Scrollbars.HideDelayMs)
}

func TestSettingsModel_UnparseableFieldNeverReachesStore(t *testing.T) {
	m, store := newTestEditor(t)

	for i := range m.fields {
		if m.fields[i].info.Key == entity.KeyThumbWidth {
			m.fields[i].input.SetValue("wide")
		}
	}

	msg := m.save()()
	saved, ok := msg.(settingsSavedMsg)
	require.True(t, ok)
	require.Error(t, saved.err)
	require.Equal(t, 0, store.Current().Scrollbars.ThumbWidth)
}

func TestSettingsModel_EscQuitsWithoutSaving(t *testing.T) {
	m, _ := newTestEditor(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SettingsModel)
	require.NotNil(t, cmd)
	require.False(t, m.Saved())
	require.Empty(t, m.View())
}
