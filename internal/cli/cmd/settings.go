package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/driftnote/scrollkit/internal/application/usecase"
	"github.com/driftnote/scrollkit/internal/cli/model"
	"github.com/driftnote/scrollkit/internal/cli/styles"
	"github.com/driftnote/scrollkit/internal/domain/entity"
)

var resetYes bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect and edit plugin settings",
	Long:  `Show, get, set, reset, or interactively edit the shared settings file.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings record",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting value",
	Long:  `Print the raw value of a dotted settings key, suitable for scripting.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting and save the record",
	Long: `Parse the value for a dotted settings key, validate the resulting record,
and save it. Invalid records are rejected without touching the file.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all settings to their defaults",
	RunE:  runSettingsReset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List editable settings keys",
	RunE:  runSettingsKeys,
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings in an interactive form",
	RunE:  runSettingsEdit,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsEditCmd)
	settingsResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
}

// runSettingsShow prints the current record and its file path.
func runSettingsShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSettingsRenderer(app.Theme)

	path := ""
	if app.Store != nil {
		path = app.Store.ConfigFilePath()
	} else {
		fmt.Println(renderer.RenderNoStore())
	}

	fmt.Println(renderer.RenderConfig(app.Config, path))
	return nil
}

// runSettingsGet prints a single raw value.
func runSettingsGet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	value, err := app.Config.KeyValue(args[0])
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}

// runSettingsSet updates one key and persists the record.
func runSettingsSet(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSettingsRenderer(app.Theme)
	if app.Store == nil {
		fmt.Println(renderer.RenderNoStore())
		return fmt.Errorf("settings store unavailable")
	}

	key, value := args[0], args[1]

	cfg, err := app.Config.WithKey(key, value)
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	uc := usecase.NewUpdateSettingsUseCase(app.Store)
	saved, err := uc.Execute(app.Ctx(), usecase.UpdateSettingsInput{Config: cfg})
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	app.Config = saved
	display, _ := saved.KeyValue(key)
	fmt.Println(renderer.RenderSaved(key, display))
	return nil
}

// runSettingsKeys prints the editable key reference.
func runSettingsKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSettingsRenderer(app.Theme)
	fmt.Println(renderer.RenderKeys(entity.SettingKeys()))
	return nil
}

// runSettingsReset restores defaults with optional confirmation.
func runSettingsReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSettingsRenderer(app.Theme)
	if app.Store == nil {
		fmt.Println(renderer.RenderNoStore())
		return fmt.Errorf("settings store unavailable")
	}

	uc := usecase.NewUpdateSettingsUseCase(app.Store)

	// If --yes flag, proceed without confirmation
	if resetYes {
		return executeReset(app.Ctx(), uc, renderer, app.Store.ConfigFilePath())
	}

	m := newResetModel(app.Ctx(), renderer, app.Theme, uc, app.Store.ConfigFilePath())
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	return nil
}

// executeReset performs the actual reset.
func executeReset(ctx context.Context, uc *usecase.UpdateSettingsUseCase, renderer *styles.SettingsRenderer, path string) error {
	if _, err := uc.Execute(ctx, usecase.UpdateSettingsInput{Config: entity.DefaultConfig()}); err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	fmt.Println(renderer.RenderReset(path))
	return nil
}

// resetState represents the current state of the reset confirmation.
type resetState int

const (
	resetStateConfirm resetState = iota
	resetStateDone
)

// resetModel is the bubbletea model for the reset confirmation.
type resetModel struct {
	spinner  spinner.Model
	renderer *styles.SettingsRenderer
	confirm  styles.ConfirmModel
	state    resetState
	uc       *usecase.UpdateSettingsUseCase
	ctx      context.Context
	path     string

	result   string
	err      error
	quitting bool
}

// resetResultMsg is sent when the reset completes.
type resetResultMsg struct {
	err error
}

func newResetModel(
	ctx context.Context,
	renderer *styles.SettingsRenderer,
	theme *styles.Theme,
	uc *usecase.UpdateSettingsUseCase,
	path string,
) resetModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	confirm := styles.NewConfirm(theme, "Reset all scrollkit settings to their defaults?")

	return resetModel{
		spinner:  s,
		renderer: renderer,
		confirm:  confirm,
		state:    resetStateConfirm,
		uc:       uc,
		ctx:      ctx,
		path:     path,
	}
}

func (m resetModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m resetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resetResultMsg:
		m.state = resetStateDone
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.result = m.renderer.RenderReset(m.path)
		return m, tea.Quit
	}

	// Handle confirm dialog
	if m.state == resetStateConfirm {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)

		if m.confirm.Done() {
			if m.confirm.Result() {
				return m, m.runReset()
			}
			// User canceled
			m.quitting = true
			return m, tea.Quit
		}

		return m, cmd
	}

	return m, nil
}

func (m resetModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return m.renderer.RenderError(m.err)
	}

	if m.state == resetStateDone {
		return m.result
	}

	return m.confirm.View()
}

func (m resetModel) runReset() tea.Cmd {
	return func() tea.Msg {
		_, err := m.uc.Execute(m.ctx, usecase.UpdateSettingsInput{Config: entity.DefaultConfig()})
		return resetResultMsg{err: err}
	}
}

// runSettingsEdit opens the interactive settings form.
func runSettingsEdit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSettingsRenderer(app.Theme)
	if app.Store == nil {
		fmt.Println(renderer.RenderNoStore())
		return fmt.Errorf("settings store unavailable")
	}

	uc := usecase.NewUpdateSettingsUseCase(app.Store)
	m := model.NewSettingsModel(app.Ctx(), app.Theme, app.Config, uc)

	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("settings editor failed: %w", err)
	}

	if editor, ok := final.(model.SettingsModel); ok && editor.Saved() {
		app.Config = editor.Result()
		fmt.Println(renderer.RenderConfig(app.Config, app.Store.ConfigFilePath()))
	}
	return nil
}
