package styles_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/cli/styles"
	"github.com/driftnote/scrollkit/internal/domain/entity"
)

func TestSettingsRenderer_RenderConfig(t *testing.T) {
	theme := styles.NewTheme()
	r := styles.NewSettingsRenderer(theme)

	cfg := entity.DefaultConfig()
	cfg.Scrollbars.HideDelayMs = 500

	out := r.RenderConfig(cfg, "/tmp/scrollkit/scrollkit.toml")
	require.Contains(t, out, "scrollbars.hide_delay_ms")
	require.Contains(t, out, "500")
	require.Contains(t, out, "tabs.header_width")
	require.Contains(t, out, "scrollkit.toml")
}

func TestSettingsRenderer_RenderKeys(t *testing.T) {
	theme := styles.NewTheme()
	r := styles.NewSettingsRenderer(theme)

	out := r.RenderKeys(entity.SettingKeys())
	for _, key := range entity.SettingKeys() {
		require.Contains(t, out, key.Key)
	}

	require.Contains(t, r.RenderKeys(nil), "No settings keys")
}

func TestSettingsRenderer_Messages(t *testing.T) {
	theme := styles.NewTheme()
	r := styles.NewSettingsRenderer(theme)

	require.Contains(t, r.RenderSaved("scrollbars.hide_delay_ms", "900"), "900")
	require.Contains(t, r.RenderReset("/tmp/x.toml"), "reset")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
	require.Contains(t, r.RenderNoStore(), "defaults")
}

func TestTimelineRenderer_Render(t *testing.T) {
	theme := styles.NewTheme()
	r := styles.NewTimelineRenderer(theme)

	settings := entity.DefaultScrollbarSettings()
	events := []time.Duration{0, 700 * time.Millisecond}
	transitions := []usecase.Transition{
		{At: 0, Region: "pane-1", Active: true},
		{At: 1450 * time.Millisecond, Region: "pane-1", Active: false},
	}

	out := r.Render(settings, events, transitions)
	require.Contains(t, out, "+0ms")
	require.Contains(t, out, "+700ms")
	require.Contains(t, out, "+1450ms")
	require.Contains(t, out, "active")
	require.Contains(t, out, "idle")
	require.Contains(t, out, "pane-1")
}

func TestTimelineRenderer_RenderEmpty(t *testing.T) {
	theme := styles.NewTheme()
	r := styles.NewTimelineRenderer(theme)

	out := r.Render(entity.DefaultScrollbarSettings(), nil, nil)
	require.Contains(t, out, "none")
	require.Contains(t, out, "no transitions")
}

func TestTimelineRenderer_RenderJSON(t *testing.T) {
	theme := styles.NewTheme()
	r := styles.NewTimelineRenderer(theme)

	out, err := r.RenderJSON([]usecase.Transition{
		{At: 1450 * time.Millisecond, Region: "pane-1", Active: false},
	})
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, float64(1450), rows[0]["at_ms"])
	require.Equal(t, "pane-1", rows[0]["region"])
	require.Equal(t, false, rows[0]["active"])
}

func TestConfirmModel_KeyFlow(t *testing.T) {
	theme := styles.NewTheme()
	m := styles.NewConfirm(theme, "Reset settings to defaults?")

	require.False(t, m.Done())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Done())
	require.True(t, m.Result())
}

func TestConfirmModel_EscapeCancels(t *testing.T) {
	theme := styles.NewTheme()
	m := styles.NewConfirm(theme, "Reset settings to defaults?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.Done())
	require.False(t, m.Result())
}
