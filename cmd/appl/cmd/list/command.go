// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/catalog"
	"github.com/agentstation/appl/internal/cmd/globals"
	"github.com/agentstation/appl/internal/cmd/output"
	"github.com/agentstation/appl/internal/cmd/table"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *globals.ListFlags

	cmd := &cobra.Command{
		Use:     "list [prefix]",
		GroupID: "core",
		Short:   "List catalog entries",
		Long: `List prints the entries of the catalog in the order they were added.

With a prefix, only the entries at or below that path are listed. The
prefix must match whole path segments: "/anime" lists "/anime/x.mkv" but
not "/animation/y.mkv".`,
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		Example: `  appl list
  appl list /anime
  appl list /books -o wide --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}
			entries, err := catalog.Under(store, prefix)
			if err != nil {
				return err
			}
			if flags.Limit > 0 && len(entries) > flags.Limit {
				entries = entries[:flags.Limit]
			}

			app.Logger().Debug().
				Str("prefix", prefix).
				Int("count", len(entries)).
				Msg("Listing entries")

			format := output.DetectFormat(app.OutputFormat())
			return output.Render(cmd.OutOrStdout(), format, entries, func(wide bool) output.Data {
				return table.EntriesToTableData(entries, wide)
			})
		},
	}

	flags = globals.AddListFlags(cmd)
	return cmd
}
