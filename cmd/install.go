package cmd

import (
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/spf13/cobra"
)

func newInstallCmd(app *app) *cobra.Command {
	var uninstall bool

	cmd := &cobra.Command{
		Use:   "install <entry-id>",
		Short: "Mark a game as installed on the host machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := boot(cmd, app); err != nil {
				return err
			}

			installed := !uninstall
			if err := app.coordinator.MarkInstalled(cmd.Context(), domain.EntryID(args[0]), installed); err != nil {
				return err
			}

			verb := "installed"
			if uninstall {
				verb = "uninstalled"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", args[0], verb)
			return nil
		},
	}

	cmd.Flags().BoolVar(&uninstall, "uninstall", false, "Clear the installed flag instead of setting it")

	return cmd
}
