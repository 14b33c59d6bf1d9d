package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftnote/scrollkit/internal/application/usecase"
)

var schemaWrite bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the settings JSON schema",
	Long: `Generate the JSON schema for the settings record.

The schema describes every editable key with its type, constraints, and
documentation. Driftnote builds its settings form from it, and editors can
validate hand edits against the copy written next to the settings file.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "write the schema next to the settings file instead of printing it")
}

func runSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewSettingsSchemaUseCase()
	data, err := uc.Execute(app.Ctx())
	if err != nil {
		return err
	}

	if !schemaWrite {
		fmt.Println(string(data))
		return nil
	}

	if app.Store == nil {
		return fmt.Errorf("settings store unavailable")
	}

	path := app.Store.SchemaFilePath()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}

	fmt.Println(app.Theme.SuccessStyle.Render("  Schema written to " + path))
	return nil
}
