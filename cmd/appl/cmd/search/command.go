// Package search implements the search command.
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/globals"
	"github.com/agentstation/appl/internal/cmd/output"
	"github.com/agentstation/appl/internal/cmd/table"
	"github.com/agentstation/appl/pkg/catalogs"
)

// NewCommand creates the search command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *globals.ListFlags

	cmd := &cobra.Command{
		Use:     "search [query...]",
		GroupID: "core",
		Short:   "Search the catalog",
		Long: `Search ranks entries against a free-text query.

Every combination of the query words is tried as a phrase. A phrase
scores one point for each matching tag, language, series, age rating or
file extension, for an author containing it as whole words, and for a
name or path containing it. Entries are listed by total score, ties in
the order they were first matched.

At most 10 words are accepted. Without words every entry is listed.`,
		Aliases: []string{"find"},
		Example: `  appl search fantasy
  appl search doe isekai --limit 5
  appl search "slice of life" -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			limit := app.MaxResults()
			if cmd.Flags().Changed("limit") {
				limit = flags.Limit
			}

			query := strings.Join(args, " ")
			matches, err := run(cmd, store, query)
			if err != nil {
				return err
			}
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			app.Logger().Debug().
				Str("query", query).
				Int("count", len(matches)).
				Msg("Search complete")

			format := output.DetectFormat(app.OutputFormat())
			if len(matches) == 0 && format.IsTable() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
				return err
			}
			return output.Render(cmd.OutOrStdout(), format, matches, func(wide bool) output.Data {
				return table.MatchesToTableData(matches, wide)
			})
		},
	}

	flags = globals.AddListFlags(cmd)
	return cmd
}

// run searches store, or lists every entry with a zero score when the
// query has no words.
func run(cmd *cobra.Command, store catalogs.Store, query string) ([]catalogs.Match, error) {
	if strings.TrimSpace(query) != "" {
		return store.Search(cmd.Context(), query)
	}

	ids := store.IDs()
	matches := make([]catalogs.Match, 0, len(ids))
	for _, id := range ids {
		if e, ok := store.Get(id); ok {
			matches = append(matches, catalogs.Match{ID: id, Entry: e})
		}
	}
	return matches, nil
}
