package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "couch",
		Short:         "CouchSuite launcher: browse the shared game catalog and stream to the TV",
		Long:          "couch is the living-room launcher front end. It keeps a local catalog cache, remembers who is signed in, and hands playable games to the Moonlight streaming client.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.coordinator.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatusCmd(app),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newCatalogCmd(app),
		newLaunchCmd(app),
		newInstallCmd(app),
		newSettingsCmd(app),
		newControllerCmd(app),
		newHubCmd(app),
	)

	return rootCmd
}
