package create_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/cmd/appl/cmd/create"
	"github.com/agentstation/appl/internal/cmd/cmdtest"
	"github.com/agentstation/appl/internal/cmd/globals"
	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/errors"
	"github.com/agentstation/appl/pkg/logging"
)

func TestInitCommand(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	path := filepath.Join(t.TempDir(), "new.appl")

	out, err := cmdtest.Run(t, create.NewCommand(app), "My Library", "/srv/media", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path+" with 0 entries")

	c, err := catalogs.Load(path, catalogs.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Equal(t, "My Library", c.Name())
	assert.Equal(t, "/srv/media", c.Root())
	assert.Zero(t, c.Len())

	_, err = cmdtest.Run(t, create.NewCommand(app), "Other", "/srv/other", path)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	_, err = cmdtest.Run(t, create.NewCommand(app), "--force", "Other", "/srv/other", path)
	require.NoError(t, err)
	c, err = catalogs.Load(path, catalogs.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Equal(t, "Other", c.Name())
}

func TestInitDiscover(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "covers"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "film.mkv"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "covers", "art.png"), nil, 0o644))

	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	app.LoggerFunc = logging.NewNopLogger
	path := filepath.Join(t.TempDir(), "new.appl")

	_, err := cmdtest.Run(t, create.NewCommand(app), "--discover", "Films", root, path)
	require.NoError(t, err)

	c, err := catalogs.Load(path, catalogs.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	_, e, ok := c.Lookup("/covers/art.png")
	require.True(t, ok)
	assert.Equal(t, root+"/covers/art.png", e.CoverPath)
}

func TestInitDryRun(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	path := filepath.Join(t.TempDir(), "new.appl")

	cmd := create.NewCommand(app)
	globals.AddFlags(cmd, nil)
	out, err := cmdtest.Run(t, cmd, "--dry-run", "Films", "/srv", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run")
	assert.NoFileExists(t, path)
}

func TestInitDefaultsToCatalogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "default.appl")
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	app.CatalogPathFunc = func() string { return path }

	_, err := cmdtest.Run(t, create.NewCommand(app), "Films", "/srv")
	require.NoError(t, err)
	assert.FileExists(t, path)

	app.CatalogPathFunc = func() string { return "" }
	_, err = cmdtest.Run(t, create.NewCommand(app), "Films", "/srv")
	assert.Error(t, err)
}

func TestInitAddsExtension(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	base := filepath.Join(t.TempDir(), "shelf")

	out, err := cmdtest.Run(t, create.NewCommand(app), "Shelf", "/srv/shelf", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+base+".appl")

	_, err = os.Stat(base + ".appl")
	assert.NoError(t, err)
}
