// Package keys implements the keys command.
package keys

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/output"
	"github.com/agentstation/appl/internal/cmd/table"
	"github.com/agentstation/appl/pkg/catalogs"
)

// Key is one distinct index key and the number of entries filed under it.
type Key struct {
	Key     string `json:"key" yaml:"key"`
	Entries int    `json:"entries" yaml:"entries"`
}

// NewCommand creates the keys command.
func NewCommand(app application.Application) *cobra.Command {
	fields := make([]string, len(catalogs.Fields))
	for i, f := range catalogs.Fields {
		fields[i] = string(f)
	}

	return &cobra.Command{
		Use:       "keys <field>",
		GroupID:   "core",
		Short:     "List the distinct values of an indexed field",
		Long:      "Keys lists the lower-cased values of one indexed field (" + strings.Join(fields, ", ") + ") with the number of entries for each.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: fields,
		Example: `  appl keys author
  appl keys tags -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := catalogs.ParseField(args[0])
			if err != nil {
				return err
			}

			store, err := app.Catalog()
			if err != nil {
				return err
			}

			names := store.Keys(field)
			counts := make([]Key, len(names))
			for i, name := range names {
				counts[i] = Key{Key: name, Entries: len(store.Bucket(field, name))}
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Render(cmd.OutOrStdout(), format, counts, func(bool) output.Data {
				return table.KeysToTableData(names, func(key string) int {
					return len(store.Bucket(field, key))
				})
			})
		},
	}
}
