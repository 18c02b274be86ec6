package cmd

import (
	"context"
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/adapters/render/hub"
	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newLaunchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <entry-id>",
		Short: "Start streaming a game to this screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bootResult, err := boot(cmd, app)
			if err != nil {
				return err
			}

			// A one-shot launch needs a catalog first. Boot only refreshes
			// for a resumed session, so fetch one here otherwise.
			if bootResult.Catalog == nil {
				err := hub.Spin(cmd.Context(), cmd.OutOrStdout(), "Fetching catalog...", func(ctx context.Context) error {
					_, refreshErr := app.coordinator.RefreshCatalog(ctx)
					return refreshErr
				})
				if err != nil {
					return err
				}
			}

			result, err := app.coordinator.Launch(cmd.Context(), domain.EntryID(args[0]))
			if err != nil {
				return err
			}

			if result.Receipt.Stub {
				_, _ = color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "stub launch: %s\n", result.Receipt.Command)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Streaming %s from %s\n", result.Entry.DisplayName, result.Host)
			}
			if result.Session != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "play session %d (%s)\n", result.Session.ID, result.Session.Status)
			}
			return nil
		},
	}
}
