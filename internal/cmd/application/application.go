// Package application provides the application interface for appl commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            catalog, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use catalog
//	            return app.Save()
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (catalogs.Store, error) {
//	        return testCatalog, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/appl/pkg/catalogs"
)

// Application provides the application interface that commands need.
// The App struct from cmd/appl/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Catalog returns the catalog named by --catalog, loading it on first use.
	// Later calls return the same instance so mutations accumulate until Save.
	Catalog() (catalogs.Store, error)

	// CatalogPath returns the catalog file path from flags, environment or config.
	CatalogPath() string

	// Save writes the loaded catalog back to CatalogPath. With --dry-run it
	// only logs that the write was skipped.
	Save() error

	// MediaRoot returns the configured root override, or "" to use the
	// root recorded in the catalog file.
	MediaRoot() string

	// MaxResults returns the default search result limit, 0 for unlimited.
	MaxResults() int

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
