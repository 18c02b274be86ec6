package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newControllerCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "controller",
		Short: "Check whether a game controller is connected",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := boot(cmd, app)
			if err != nil {
				return err
			}

			if !result.Controller.Connected {
				_, _ = color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "no controller detected")
				return nil
			}

			label := result.Controller.Label
			if label == "" {
				label = "controller"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "connected: %s\n", label)
			return nil
		},
	}
}
