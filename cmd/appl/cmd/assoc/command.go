// Package assoc implements the assoc command and its subcommands.
package assoc

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/emoji"
	"github.com/agentstation/appl/internal/cmd/output"
	"github.com/agentstation/appl/internal/cmd/table"
	"github.com/agentstation/appl/pkg/errors"
)

// NewCommand creates the assoc command. Without a subcommand it lists
// the associations.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assoc",
		GroupID: "management",
		Short:   "Manage extension to opener associations",
		Long: `Assoc manages which program opens each file extension.

Extensions are stored lower-cased without a leading dot. The opener may
carry arguments; the entry's file is appended when it is opened.`,
		Aliases: []string{"associations"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return list(cmd, app)
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newSetCommand(app))
	cmd.AddCommand(newRemoveCommand(app))
	return cmd
}

func newListCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List associations",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return list(cmd, app)
		},
	}
}

func list(cmd *cobra.Command, app application.Application) error {
	store, err := app.Catalog()
	if err != nil {
		return err
	}
	assoc := store.Associations()

	format := output.DetectFormat(app.OutputFormat())
	return output.Render(cmd.OutOrStdout(), format, assoc, func(bool) output.Data {
		return table.AssociationsToTableData(assoc)
	})
}

func newSetCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <ext> <opener...>",
		Short: "Associate an extension with an opener",
		Args:  cobra.MinimumNArgs(2),
		Example: `  appl assoc set epub ebook-viewer
  appl assoc set .MKV mpv --fullscreen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			ext, opener := args[0], strings.Join(args[1:], " ")
			if err := store.SetAssociation(ext, opener); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s opens with %s\n", emoji.Success, ext, opener)
			return err
		},
	}

	// Opener arguments such as --fullscreen belong to the opener
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newRemoveCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <ext>",
		Short:   "Remove the association of an extension",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			if !store.RemoveAssociation(args[0]) {
				return errors.NewNotFoundError("association", args[0])
			}
			if err := app.Save(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Removed association for %s\n", emoji.Success, args[0])
			return err
		},
	}
}
