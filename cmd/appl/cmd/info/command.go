// Package info implements the info command.
package info

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/internal/cmd/output"
	"github.com/agentstation/appl/pkg/catalogs"
)

// Summary describes a catalog at a glance.
type Summary struct {
	Name         string `json:"name" yaml:"name"`
	Root         string `json:"root" yaml:"root"`
	File         string `json:"file" yaml:"file"`
	Entries      int    `json:"entries" yaml:"entries"`
	Authors      int    `json:"authors" yaml:"authors"`
	Series       int    `json:"series" yaml:"series"`
	Languages    int    `json:"languages" yaml:"languages"`
	Tags         int    `json:"tags" yaml:"tags"`
	Associations int    `json:"associations" yaml:"associations"`
}

// Summarize counts the entries and distinct index keys of store.
func Summarize(store catalogs.Reader, file string) Summary {
	return Summary{
		Name:         store.Name(),
		Root:         store.Root(),
		File:         file,
		Entries:      store.Len(),
		Authors:      len(store.Keys(catalogs.FieldAuthor)),
		Series:       len(store.Keys(catalogs.FieldSeries)),
		Languages:    len(store.Keys(catalogs.FieldLanguage)),
		Tags:         len(store.Keys(catalogs.FieldTag)),
		Associations: len(store.Associations()),
	}
}

// NewCommand creates the info command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		GroupID: "core",
		Short:   "Show a summary of the catalog",
		Args:    cobra.NoArgs,
		Example: `  appl info
  appl info -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Catalog()
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.Render(cmd.OutOrStdout(), format, Summarize(store, app.CatalogPath()), nil)
		},
	}
}
