// Package show implements the show command.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/catalog"
	"github.com/agentstation/appl/internal/cmd/output"
	"github.com/agentstation/appl/internal/cmd/table"
)

// NewCommand creates the show command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "show <path>",
		GroupID: "core",
		Short:   "Show every field of an entry",
		Args:    cobra.ExactArgs(1),
		Example: `  appl show /anime/show/01.mkv
  appl show books/novel.epub -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			_, e, err := catalog.Resolve(store, args[0])
			if err != nil {
				return err
			}
			opener, _ := store.Opener(e.Path)

			format := output.DetectFormat(app.OutputFormat())
			return output.Render(cmd.OutOrStdout(), format, e, func(bool) output.Data {
				return table.EntryToTableData(e, opener)
			})
		},
	}
}
