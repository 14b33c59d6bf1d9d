package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/driftnote/scrollkit/internal/domain/entity"
)

// SettingsRenderer renders settings values and status messages.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a new settings renderer with the given theme.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// RenderConfig renders the current settings record with its file path.
func (r *SettingsRenderer) RenderConfig(cfg entity.Config, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render("Scrollkit Settings"),
	)

	var lines []string
	for _, info := range entity.SettingKeys() {
		value, err := cfg.KeyValue(info.Key)
		if err != nil {
			continue
		}
		lines = append(lines, r.renderValue(info, value))
	}

	body := header + "\n\n" + strings.Join(lines, "\n")
	out := r.theme.Box.Render(body)

	if path != "" {
		out += "\n" + r.theme.Subtle.Render("  "+path)
	}
	return out
}

func (r *SettingsRenderer) renderValue(info entity.SettingKeyInfo, value string) string {
	keyStyle := r.theme.Normal.Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	display := value
	if display == "" {
		display = r.theme.Subtle.Render("(default)")
	} else {
		display = valueStyle.Render(display)
	}
	if value == info.Default {
		display += " " + r.theme.Subtle.Render("(default)")
	}

	return fmt.Sprintf("%s = %s", keyStyle.Render(info.Key), display)
}

// RenderKeys renders the editable key reference.
func (r *SettingsRenderer) RenderKeys(keys []entity.SettingKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No settings keys found")
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	header := fmt.Sprintf("%s %s",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render("Settings Key Reference"),
	)

	var lines []string
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	body := header + "\n\n" + strings.Join(lines, "\n")
	return r.theme.Box.Render(body)
}

func (r *SettingsRenderer) renderKey(key entity.SettingKeyInfo) string {
	keyStyle := r.theme.Normal.Bold(true)
	typeStyle := r.theme.Subtle
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	def := key.Default
	if def == "" {
		def = `""`
	}

	line1 := fmt.Sprintf(
		"%s  %s  %s",
		keyStyle.Render(key.Key),
		typeStyle.Render(key.Type),
		defaultStyle.Render(def),
	)
	line2 := fmt.Sprintf("  %s", r.theme.Subtle.Render(key.Description))

	return line1 + "\n" + line2
}

// RenderSaved renders the confirmation after a successful save.
func (r *SettingsRenderer) RenderSaved(key, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s %s = %s",
		iconStyle.Render(IconCheck),
		r.theme.Normal.Render(key),
		r.theme.Highlight.Render(value),
	)
}

// RenderReset renders the confirmation after settings were reset.
func (r *SettingsRenderer) RenderReset(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s Settings reset to defaults %s",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *SettingsRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("  %s %s",
		iconStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}

// RenderNoStore renders the hint shown when the settings directory cannot
// be resolved and commands run against in-memory defaults.
func (r *SettingsRenderer) RenderNoStore() string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("  %s %s",
		iconStyle.Render(IconWarning),
		r.theme.WarningStyle.Render("settings store unavailable; showing built-in defaults"),
	)
}
