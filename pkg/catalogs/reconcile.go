package catalogs

import (
	"context"
	"io/fs"
	"strings"

	"github.com/agentstation/appl/pkg/errors"
	"github.com/agentstation/appl/pkg/logging"
)

type pathRef struct {
	id   EntryID
	path string
}

// ReconcileMissing removes every entry whose file no longer exists under the
// catalog root and returns the removed entries. It never creates entries.
//
// All files are checked before anything is removed, so a stat failure
// other than "not exist" leaves the catalog unchanged.
func (c *Catalog) ReconcileMissing(ctx context.Context) ([]Entry, error) {
	c.mu.RLock()
	refs := make([]pathRef, 0, c.live.GetCardinality())
	c.each(func(id EntryID, e *Entry) {
		refs = append(refs, pathRef{id: id, path: e.Path})
	})
	c.mu.RUnlock()

	filesystem := c.Filesystem()
	logger := logging.FromContextOr(ctx, c.logger)

	var missing []pathRef
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapCanceled("reconcile", err)
		}
		_, err := filesystem.Stat(fsPath(ref.path))
		switch {
		case err == nil:
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, ref)
		default:
			return nil, errors.WrapIO("stat", ref.path, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := make([]Entry, 0, len(missing))
	for _, ref := range missing {
		e := c.entry(ref.id)
		if e == nil || e.Path != ref.path {
			continue
		}
		gone := e.clone()
		if err := c.remove(ref.id); err != nil {
			return removed, err
		}
		removed = append(removed, gone)
	}

	logger.Info().
		Int("checked", len(refs)).
		Int("removed", len(removed)).
		Msg("Removed entries with missing files")
	return removed, nil
}

// fsPath maps an entry path to an absolute path inside the root filesystem.
func fsPath(path string) string {
	return "/" + strings.TrimPrefix(path, "/")
}
