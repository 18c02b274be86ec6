package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/adupuis1/CouchSuite/internal/adapters/render/hub"
	"github.com/adupuis1/CouchSuite/internal/application"
	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Fetch and print the game catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootResult, err := boot(cmd, app)
			if err != nil {
				return err
			}

			var result application.CatalogResult
			if bootResult.Catalog != nil {
				result = *bootResult.Catalog
			} else {
				err := hub.Spin(cmd.Context(), cmd.OutOrStdout(), "Fetching catalog...", func(ctx context.Context) error {
					var refreshErr error
					result, refreshErr = app.coordinator.RefreshCatalog(ctx)
					return refreshErr
				})
				if err != nil {
					return err
				}
			}

			printCatalog(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printCatalog(w io.Writer, result application.CatalogResult) {
	if result.Offline {
		_, _ = color.New(color.FgYellow, color.Bold).Fprintln(w, "offline: showing last known catalog")
	}

	entries := result.Catalog.Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "Catalog is empty.")
		return
	}

	playable := color.New(color.FgGreen)
	locked := color.New(color.Faint)
	for _, entry := range entries {
		if entry.Playable() {
			_, _ = playable.Fprintf(w, "  %-24s %s\n", entry.ID, entry.DisplayName)
			continue
		}
		_, _ = locked.Fprintf(w, "  %-24s %s (%s)\n", entry.ID, entry.DisplayName, lockReason(entry))
	}
}

func lockReason(entry domain.Entry) string {
	switch {
	case !entry.Enabled:
		return "unavailable"
	case !entry.Owned:
		return "not in library"
	case !entry.Installed:
		return "not installed"
	default:
		return "ready"
	}
}
