package cmd

import (
	"fmt"
	"os"

	cachefile "github.com/adupuis1/CouchSuite/internal/adapters/cache/file"
	configfile "github.com/adupuis1/CouchSuite/internal/adapters/config/file"
	"github.com/adupuis1/CouchSuite/internal/adapters/controller"
	"github.com/adupuis1/CouchSuite/internal/adapters/httpapi"
	"github.com/adupuis1/CouchSuite/internal/adapters/launcher/moonlight"
	"github.com/adupuis1/CouchSuite/internal/application"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// hostEnv overrides both the API base URL and the stream host, mainly for
// tests and for pointing a spare box at a staging server.
const hostEnv = "COUCH_HOST"

type app struct {
	coordinator *application.Coordinator
	settings    configfile.Settings
	host        string
}

func wireApp() (*app, error) {
	settings, err := configfile.Resolve(viper.New())
	if err != nil {
		return nil, fmt.Errorf("resolve launcher settings: %w", err)
	}

	host := settings.DefaultHost
	if env := os.Getenv(hostEnv); env != "" {
		host = env
	}
	if host == "" {
		host = httpapi.DefaultBaseURL
	}

	coordinator := application.NewCoordinator(application.Deps{
		API:         httpapi.NewClient(host),
		Cache:       cachefile.NewStore(settings.CachePath),
		ConfigStore: configfile.NewStore(settings.StatePath),
		Launcher:    moonlight.New(),
		Probe:       controller.NewProbe(),
		DefaultHost: host,
	})

	return &app{
		coordinator: coordinator,
		settings:    settings,
		host:        host,
	}, nil
}

// boot runs the startup sequence for a one-shot command: load the persisted
// state, probe the service, and resume a prior session when one exists.
func boot(cmd *cobra.Command, app *app) (application.BootResult, error) {
	result, err := app.coordinator.Boot(cmd.Context())
	if err != nil {
		return application.BootResult{}, fmt.Errorf("boot launcher: %w", err)
	}
	return result, nil
}
