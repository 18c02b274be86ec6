package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage per-user streaming settings",
	}

	cmd.AddCommand(newSettingsPushCmd(app))

	return cmd
}

func newSettingsPushCmd(app *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload local settings.toml to the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := boot(cmd, app); err != nil {
				return err
			}

			path := file
			if path == "" {
				path = filepath.Join(filepath.Dir(app.settings.StatePath), "settings.toml")
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read settings file: %w", err)
			}

			var settings map[string]any
			if err := toml.Unmarshal(data, &settings); err != nil {
				return fmt.Errorf("parse settings file: %w", err)
			}

			if err := app.coordinator.PushSettings(cmd.Context(), settings); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pushed %d settings from %s\n", len(settings), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Settings file to upload (defaults to settings.toml next to the launcher state)")

	return cmd
}
