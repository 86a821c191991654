// Package export implements the export command.
package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/emoji"
	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
	pkgexport "github.com/agentstation/appl/pkg/export"
)

// NewCommand creates the export command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:       "export <yaml|markdown> [file]",
		GroupID:   "management",
		Short:     "Export the catalog as YAML or Markdown",
		Long:      "Export writes the collection settings and every entry as YAML, or as a Markdown summary with an entry table. Without a file, or with \"-\", the export goes to standard output.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{string(pkgexport.FormatYAML), string(pkgexport.FormatMarkdown)},
		Example: `  appl export yaml
  appl export markdown library.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := pkgexport.ParseFormat(args[0])
			if err != nil {
				return err
			}

			store, err := app.Catalog()
			if err != nil {
				return err
			}

			if len(args) == 1 || args[1] == "-" {
				return pkgexport.Write(cmd.OutOrStdout(), format, store)
			}

			path := args[1]
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
			if err != nil {
				return errors.WrapIO("create", path, err)
			}
			if err := pkgexport.Write(f, format, store); err != nil {
				_ = f.Close()
				return errors.WrapIO("write", path, err)
			}
			if err := f.Close(); err != nil {
				return errors.WrapIO("write", path, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d entries to %s\n", emoji.Success, store.Len(), path)
			return err
		},
	}
}
