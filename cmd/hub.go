package cmd

import (
	"github.com/adupuis1/CouchSuite/internal/adapters/render/hub"
	"github.com/spf13/cobra"
)

func newHubCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hub",
		Short: "Open the interactive couch screen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := boot(cmd, app); err != nil {
				return err
			}

			return hub.Run(cmd.Context(), app.coordinator)
		},
	}
}
