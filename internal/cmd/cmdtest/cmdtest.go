// Package cmdtest runs CLI commands against an in-memory catalog in tests.
package cmdtest

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/pkg/catalogs"
)

// Catalog returns a test catalog with three entries, added in this order:
//
//	/anime/show/01.mkv  "Show"   J. Doe    Japanese  Fantasy, Isekai
//	/books/novel.epub   "Novel"  Jane Roe  English   Drama
//	/books/poems.pdf    "Poems"  J. Doe    English   Poetry
func Catalog(t testing.TB) *catalogs.Catalog {
	t.Helper()

	show := catalogs.TestEntry(t, "/anime/show/01.mkv")
	show.Name = "Show"
	show.Series = "Saga"
	show.Language = "Japanese"

	novel := catalogs.TestEntry(t, "/books/novel.epub")
	novel.Name = "Novel"
	novel.Author = "Jane Roe"
	novel.Series = "unknown"
	novel.Tags = []string{"Drama"}

	poems := catalogs.TestEntry(t, "/books/poems.pdf")
	poems.Name = "Poems"
	poems.Series = "unknown"
	poems.Tags = []string{"Poetry"}

	return catalogs.TestCatalogWith(t, show, novel, poems)
}

// Mock returns an application serving store with the given output format.
func Mock(store catalogs.Store, format string) *application.Mock {
	return &application.Mock{
		CatalogFunc:      func() (catalogs.Store, error) { return store, nil },
		CatalogPathFunc:  func() string { return "/tmp/test.appl" },
		OutputFormatFunc: func() string { return format },
	}
}

// Run executes cmd with args and returns everything it wrote.
func Run(t testing.TB, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
