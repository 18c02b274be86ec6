package cmd

import (
	"fmt"

	"github.com/adupuis1/CouchSuite/internal/application"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show launcher state: host, account, service reachability",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := boot(cmd, app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			state := app.coordinator.State()

			_, _ = fmt.Fprintf(out, "host: %s\n", state.Host)

			if state.HasKnownUser {
				_, _ = fmt.Fprintf(out, "account: %s\n", state.Username)
			} else if result.AccountsExist {
				_, _ = fmt.Fprintln(out, "account: none (sign in with couch login)")
			} else {
				_, _ = fmt.Fprintln(out, "account: none (no accounts yet, use couch register)")
			}

			if result.ServiceReachable {
				_, _ = color.New(color.FgGreen).Fprintln(out, "service: reachable")
			} else {
				_, _ = color.New(color.FgYellow, color.Bold).Fprintln(out, "service: unreachable (offline mode)")
			}

			switch state.Phase {
			case application.PhaseReady:
				_, _ = fmt.Fprintln(out, "state: ready")
			case application.PhaseAwaitingAccount:
				_, _ = fmt.Fprintln(out, "state: awaiting account")
			default:
				_, _ = fmt.Fprintf(out, "state: %s\n", state.Phase)
			}

			if result.Controller.Connected {
				label := result.Controller.Label
				if label == "" {
					label = "controller"
				}
				_, _ = fmt.Fprintf(out, "controller: %s\n", label)
			} else {
				_, _ = fmt.Fprintln(out, "controller: none")
			}

			return nil
		},
	}
}
