// Package open implements the open command.
package open

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/catalog"
	"github.com/agentstation/appl/internal/opener"
	"github.com/agentstation/appl/pkg/catalogs"
)

// rooted resolves openers through a catalog but locates files under a
// different root.
type rooted struct {
	catalogs.Reader
	root string
}

func (r rooted) Root() string {
	return r.root
}

// Resolver returns the opener resolver for store, honoring a configured
// root override.
func Resolver(store catalogs.Reader, root string) opener.Resolver {
	if root == "" {
		return store
	}
	return rooted{Reader: store, root: root}
}

// NewCommand creates the open command.
func NewCommand(app application.Application) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:     "open <path>",
		GroupID: "core",
		Short:   "Open an entry with its associated program",
		Long: `Open starts the program associated with the entry's file extension,
passing it the entry's file under the catalog root. Manage associations
with "appl assoc".`,
		Args: cobra.ExactArgs(1),
		Example: `  appl open /books/novel.epub
  appl open /anime/show/01.mkv --wait`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			_, e, err := catalog.Resolve(store, args[0])
			if err != nil {
				return err
			}

			o := opener.New(Resolver(store, app.MediaRoot()), opener.WithStdio())
			app.Logger().Info().
				Str("path", e.Path).
				Str("file", o.Target(e.Path)).
				Msg("Opening entry")

			if wait {
				return o.Run(cmd.Context(), e.Path)
			}
			return o.Open(e.Path)
		},
	}

	cmd.Flags().BoolVarP(&wait, "wait", "w", false, "Wait for the program to exit")
	return cmd
}
