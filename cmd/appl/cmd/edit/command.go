// Package edit implements the commands that change entries and the
// collection name: set, tags and rename.
package edit

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/catalog"
	"github.com/agentstation/appl/internal/cmd/emoji"
	"github.com/agentstation/appl/pkg/catalogs"
)

// NewSetCommand creates the set command.
func NewSetCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "set <path> <field> <value>",
		GroupID: "core",
		Short:   "Set one field of an entry",
		Long: `Set changes one field of an entry and saves the catalog.

Fields: ` + strings.Join(catalogs.EditableFields, ", ") + `.
Numbers are base-10, resolution is WIDTHxHEIGHT and tags are
comma-separated. Author, series, language, rating and tags are re-indexed
so searches see the new value.`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: catalogs.EditableFields,
		Example: `  appl set /books/novel.epub author "Jane Roe"
  appl set /anime/show.mkv resolution 1920x1080
  appl set /anime/show.mkv vol 3 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			path, field, value := args[0], args[1], args[2]
			id, e, err := catalog.Resolve(store, path)
			if err != nil {
				return err
			}
			if err := store.SetField(id, field, value); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s of %s\n", emoji.Success, strings.ToLower(field), e.Path)
			return err
		},
	}
}

// NewTagsCommand creates the tags command.
func NewTagsCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "tags <path> [add|remove|set] <tags...>",
		GroupID: "core",
		Short:   "Add, remove or replace the tags of an entry",
		Long: `Tags edits the tag list of an entry and saves the catalog.

Tags are comma-separated and compared case-insensitively; several
arguments are joined with commas. Without a mode the list is replaced.`,
		Args: cobra.MinimumNArgs(2),
		Example: `  appl tags /anime/show.mkv "Fantasy, Isekai"
  appl tags /anime/show.mkv add Comedy
  appl tags /anime/show.mkv remove isekai`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, tags := catalog.ModeSet, args[1:]
			if len(args) > 2 {
				mode, tags = args[1], args[2:]
			}

			store, err := app.Catalog()
			if err != nil {
				return err
			}
			id, e, err := catalog.Resolve(store, args[0])
			if err != nil {
				return err
			}

			if err := catalog.EditTags(store, id, mode, strings.Join(tags, ",")); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			e, _ = store.Get(id)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Tags of %s: %s\n", emoji.Success, e.Path, catalogs.JoinTags(e.Tags))
			return err
		},
	}
}

// NewRenameCommand creates the rename command.
func NewRenameCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "rename <name>",
		GroupID: "core",
		Short:   "Rename the collection",
		Args:    cobra.MinimumNArgs(1),
		Example: `  appl rename "Family Library"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			if err := store.Rename(name); err != nil {
				return err
			}
			if err := app.Save(); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Renamed collection to %s\n", emoji.Success, name)
			return err
		},
	}
}
