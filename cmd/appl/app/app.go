// Package app provides the application context and dependency management
// for the appl CLI. It centralizes configuration, logging and the lazily
// loaded catalog that every command works on.
package app

import (
	"sync"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/agentstation/appl/internal/cmd/application"
	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/errors"
)

// App represents the appl application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Catalog (lazy-initialized, one per process)
	mu      sync.Mutex
	catalog *catalogs.Catalog
}

// New creates a new App instance with the given version information.
// The app is initialized from the environment and config file; options
// are applied last.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// CatalogPath returns the catalog file the commands operate on.
func (a *App) CatalogPath() string {
	return a.config.Catalog
}

// MediaRoot returns the configured root override.
func (a *App) MediaRoot() string {
	return a.config.Root
}

// MaxResults returns the default search result limit.
func (a *App) MaxResults() int {
	return a.config.MaxResults
}

// Catalog returns the catalog, loading it from CatalogPath on first use.
// This is thread-safe and ensures the file is read once.
func (a *App) Catalog() (catalogs.Store, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	path := a.config.Catalog
	if path == "" {
		return nil, errors.NewConfigError("catalog", "no catalog file given: use --catalog or set "+EnvPrefix+"_CATALOG", nil)
	}

	opts := []catalogs.Option{catalogs.WithLogger(a.logger)}
	if a.config.Root != "" {
		opts = append(opts, catalogs.WithFilesystem(osfs.New(a.config.Root)))
	}

	c, err := catalogs.Load(path, opts...)
	if err != nil {
		return nil, err
	}

	a.catalog = c
	return c, nil
}

// Save writes the loaded catalog back to its file. It does nothing when
// no catalog was loaded, and only logs under --dry-run.
func (a *App) Save() error {
	a.mu.Lock()
	c := a.catalog
	a.mu.Unlock()

	if c == nil {
		return nil
	}
	if a.config.DryRun {
		a.logger.Info().
			Str("file", a.config.Catalog).
			Msg("Dry run, catalog not saved")
		return nil
	}
	return c.Save(a.config.Catalog)
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets an already loaded catalog (useful for testing).
func WithCatalog(c *catalogs.Catalog) Option {
	return func(a *App) error {
		a.catalog = c
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
