package catalogs

import (
	"os"
	"path/filepath"

	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
)

// Save writes the catalog to path. The document is written to a temporary
// file in the same directory and renamed into place, so a failed save
// leaves any existing file untouched.
func (c *Catalog) Save(path string) error {
	if path == "" {
		return &errors.ConfigError{
			Component: "catalog",
			Message:   "no path given for saving",
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath) // no-op after a successful rename
	}()

	if err := c.Encode(tmp); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}

	c.logger.Info().
		Str("file", path).
		Int("entries", c.Len()).
		Msg("Catalog saved")
	return nil
}
