// Package reconcile implements the commands that bring a catalog in step
// with the files under its root: clean and discover.
package reconcile

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/emoji"
	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/logging"
)

// NewCleanCommand creates the clean command.
func NewCleanCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "clean",
		GroupID: "management",
		Short:   "Remove entries whose files no longer exist",
		Long: `Clean checks every entry's file under the catalog root and removes the
entries whose file is gone. Any other error reading the root aborts
without changing the catalog.`,
		Args:    cobra.NoArgs,
		Example: `  appl clean
  appl clean --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			removed, err := store.ReconcileMissing(scanContext(cmd, app, store, "clean"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range removed {
				fmt.Fprintf(out, "%s %s\n", emoji.Removed, e.Path)
			}
			if len(removed) > 0 {
				if err := app.Save(); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(out, "%s Removed %d entries\n", emoji.Success, len(removed))
			return err
		},
	}
}

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "discover",
		GroupID: "management",
		Short:   "Add entries for files not yet in the catalog",
		Long: `Discover walks the catalog root and adds a placeholder entry for every
file that is not cataloged yet. Files named only by digits, such as
chapter or episode numbers, are cataloged once as their directory.
Image files get themselves as cover.`,
		Args:    cobra.NoArgs,
		Example: `  appl discover
  appl discover --dry-run -v`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			added, err := store.DiscoverNew(scanContext(cmd, app, store, "discover"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range added {
				if e, ok := store.Get(id); ok {
					fmt.Fprintf(out, "%s %s\n", emoji.Added, e.Path)
				}
			}
			if len(added) > 0 {
				if err := app.Save(); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(out, "%s Added %d entries\n", emoji.Success, len(added))
			return err
		},
	}
}

// scanContext carries the application logger, tagged with the catalog and
// operation, into a scan of the catalog root.
func scanContext(cmd *cobra.Command, app application.Application, store catalogs.Reader, operation string) context.Context {
	ctx := logging.WithLogger(cmd.Context(), app.Logger())
	ctx = logging.WithCatalog(ctx, store.Name())
	return logging.WithOperation(ctx, operation)
}
