// Package create implements the init command, which starts a new catalog.
package create

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/emoji"
	"github.com/agentstation/appl/internal/cmd/globals"
	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
)

// NewCommand creates the init command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		force    bool
		discover bool
	)

	cmd := &cobra.Command{
		Use:     "init <name> <root> [file]",
		GroupID: "management",
		Short:   "Create a new, empty catalog",
		Long: `Init writes a new catalog named <name> for the media under <root>. The
file defaults to --catalog and gets the .appl extension when it has none. With --discover every file under the root is
cataloged right away.`,
		Args: cobra.RangeArgs(2, 3),
		Example: `  appl init "My Library" /media/library library.appl
  appl init Anime /srv/anime --catalog anime.appl --discover`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, root := args[0], args[1]
			path := app.CatalogPath()
			if len(args) == 3 {
				path = args[2]
			}
			if path == "" {
				return errors.NewConfigError("catalog", "no catalog file given", nil)
			}
			if filepath.Ext(path) == "" {
				path += constants.FileExtension
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.NewDuplicateKeyError("catalog file", path)
			}

			c := catalogs.New(name, root, catalogs.WithLogger(app.Logger()))
			if discover {
				if _, err := c.DiscoverNew(cmd.Context()); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if globals.Parse(cmd).DryRun {
				_, err := fmt.Fprintf(out, "%s Dry run: %s not written (%d entries)\n", emoji.Warning, path, c.Len())
				return err
			}
			if err := c.Save(path); err != nil {
				return err
			}

			_, err := fmt.Fprintf(out, "%s Created %s with %d entries\n", emoji.Success, path, c.Len())
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&discover, "discover", false, "Catalog the files under the root")
	return cmd
}
