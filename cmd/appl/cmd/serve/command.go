// Package serve implements the mcp command, which serves a catalog to
// MCP clients over standard input and output.
package serve

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/mcp"
)

// NewCommand creates the mcp command.
func NewCommand(app application.Application) *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:     "mcp",
		GroupID: "management",
		Short:   "Serve the catalog as MCP tools over stdio",
		Long: `Mcp starts a Model Context Protocol server on standard input and output.

Read tools: search, list, show, keys.
Write tools: set_field, set_tags, clean, discover, save. Changes are kept
in memory until a client calls save. --read-only registers the read tools
only.`,
		Args: cobra.NoArgs,
		Example: `  appl mcp --catalog library.appl
  appl mcp --read-only`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			s := mcp.NewServer(store, app.CatalogPath(), app.Version(), readOnly)
			app.Logger().Info().
				Str("catalog", store.Name()).
				Bool("read_only", readOnly).
				Msg("Serving MCP over stdio")
			return mcp.ServeStdio(s)
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Register read tools only")
	return cmd
}
