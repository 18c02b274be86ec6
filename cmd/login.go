package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the catalog service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := boot(cmd, app); err != nil {
				return err
			}

			profile, err := app.coordinator.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (user %d)\n", profile.Username, profile.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := boot(cmd, app); err != nil {
				return err
			}

			profile, err := app.coordinator.Register(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created account %s (user %d)\n", profile.Username, profile.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in account, keeping the host setting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := boot(cmd, app); err != nil {
				return err
			}

			if err := app.coordinator.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
