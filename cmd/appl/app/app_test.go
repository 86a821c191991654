package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/errors"
	"github.com/agentstation/appl/pkg/logging"
)

// writeCatalog saves a one-entry catalog to a temp file and returns its path.
func writeCatalog(t *testing.T) string {
	t.Helper()
	c := catalogs.New("Library", t.TempDir(),
		catalogs.WithLogger(logging.NewNopLogger()),
		catalogs.WithAssociations(map[string]string{"epub": "ebook-viewer"}),
	)
	_, err := c.Add(catalogs.TestEntry(t, "/a/1.epub"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "library.appl")
	require.NoError(t, c.Save(path))
	return path
}

func newTestApp(t *testing.T, catalog string) *App {
	t.Helper()
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(&Config{Catalog: catalog, LogFormat: "json", LogOutput: "discard"}),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return app
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_CatalogRequiresPath(t *testing.T) {
	app := newTestApp(t, "")
	_, err := app.Catalog()
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestApp_CatalogLoadError(t *testing.T) {
	app := newTestApp(t, filepath.Join(t.TempDir(), "missing.appl"))
	_, err := app.Catalog()
	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

// TestApp_Catalog_Singleton verifies that Catalog() returns the same instance.
func TestApp_Catalog_Singleton(t *testing.T) {
	app := newTestApp(t, writeCatalog(t))

	c1, err := app.Catalog()
	require.NoError(t, err)
	c2, err := app.Catalog()
	require.NoError(t, err)

	assert.Same(t, c1, c2)
	assert.Equal(t, "Library", c1.Name())
	assert.Equal(t, 1, c1.Len())
}

// TestApp_Catalog_ThreadSafe verifies concurrent Catalog() calls are safe.
func TestApp_Catalog_ThreadSafe(t *testing.T) {
	app := newTestApp(t, writeCatalog(t))

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]catalogs.Store, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Catalog()
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestApp_SaveWithoutCatalog(t *testing.T) {
	app := newTestApp(t, "")
	assert.NoError(t, app.Save())
}

func TestApp_SaveDryRun(t *testing.T) {
	path := writeCatalog(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	app := newTestApp(t, path)
	app.config.DryRun = true
	store, err := app.Catalog()
	require.NoError(t, err)
	require.NoError(t, store.Rename("Changed"))
	require.NoError(t, app.Save())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestApp_Execute(t *testing.T) {
	path := writeCatalog(t)
	app := newTestApp(t, "")

	err := app.Execute(context.Background(), []string{
		"--catalog", path, "--log-level", "error",
		"set", "/a/1.epub", "author", "Jane Roe",
	})
	require.NoError(t, err)

	loaded, err := catalogs.Load(path, catalogs.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	_, e, ok := loaded.Lookup("/a/1.epub")
	require.True(t, ok)
	assert.Equal(t, "Jane Roe", e.Author)
}

func TestApp_ExecuteDryRun(t *testing.T) {
	path := writeCatalog(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	app := newTestApp(t, path)
	err = app.Execute(context.Background(), []string{
		"--dry-run", "--log-level", "error",
		"tags", "/a/1.epub", "add", "Drama",
	})
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestApp_ExecuteRejectsBadFormat(t *testing.T) {
	app := newTestApp(t, writeCatalog(t))
	err := app.Execute(context.Background(), []string{"-o", "xml", "info"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestApp_ExecuteUnknownEntry(t *testing.T) {
	app := newTestApp(t, writeCatalog(t))
	err := app.Execute(context.Background(), []string{"--log-level", "error", "show", "/nope"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestApp_ExecuteConfiguresDefaultLogger(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	})

	app := newTestApp(t, writeCatalog(t))
	err := app.Execute(context.Background(), []string{"--log-level", "warn", "info"})
	require.NoError(t, err)

	assert.Equal(t, zerolog.WarnLevel, logging.Default().GetLevel())
	assert.Equal(t, zerolog.WarnLevel, app.Logger().GetLevel())
}
