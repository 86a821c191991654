package catalogs

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5/util"

	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
	"github.com/agentstation/appl/pkg/logging"
)

// imageFormats are the extensions whose files serve as their own cover.
var imageFormats = map[string]bool{
	"bmp": true, "png": true, "jpg": true, "jpeg": true, "gif": true,
	"cur": true, "ico": true, "jfif": true, "pbm": true, "pgm": true,
	"ppm": true, "svg": true, "svgz": true, "xbm": true, "xpm": true,
}

// IsImage reports whether ext, with or without a leading dot, is a
// recognized image format.
func IsImage(ext string) bool {
	return imageFormats[normalizeExt(ext)]
}

// DiscoverNew walks the catalog root and adds a placeholder entry for every
// file that is not cataloged yet. It returns the IDs of the new entries in
// the order they were added.
//
// A file whose name is only digits, underscores and dots is one part of a
// multi-file item; it is cataloged as its parent directory instead, so
// numbered siblings collapse into one entry.
//
// The walk completes before any entry is added. A walk error leaves the
// catalog unchanged.
func (c *Catalog) DiscoverNew(ctx context.Context) ([]EntryID, error) {
	filesystem := c.Filesystem()
	root := c.Root()
	logger := logging.FromContextOr(ctx, c.logger)

	var found []Entry
	err := util.Walk(filesystem, "/", func(walked string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.WrapCanceled("discover", ctxErr)
		}
		if err != nil {
			return errors.WrapIO("walk", walked, err)
		}
		if info.IsDir() {
			return nil
		}
		found = append(found, discovered(root, strings.TrimPrefix(walked, "/")))
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var added []EntryID
	for _, e := range found {
		if c.cataloged(e.Path) {
			logger.Debug().Str("path", e.Path).Msg("Skipping cataloged path")
			continue
		}
		id, err := c.add(e)
		if err != nil {
			// Names that cannot be stored, such as a file called "---",
			// are skipped rather than failing the whole discovery.
			logger.Warn().Err(err).Str("path", e.Path).Msg("Skipping undiscoverable file")
			continue
		}
		added = append(added, id)
	}

	logger.Info().
		Int("walked", len(found)).
		Int("added", len(added)).
		Msg("Discovered new entries")
	return added, nil
}

// cataloged reports whether p is stored with or without its leading
// slash. Both forms name the same file under the root.
func (c *Catalog) cataloged(p string) bool {
	if _, ok := c.byPath[p]; ok {
		return true
	}
	alt := strings.TrimPrefix(p, "/")
	if alt == p {
		alt = "/" + p
	}
	_, ok := c.byPath[alt]
	return ok
}

// discovered builds the placeholder entry for the file at rel, a
// slash-separated path relative to root.
func discovered(root, rel string) Entry {
	prefix := "/"
	if strings.HasSuffix(root, "/") {
		prefix = ""
	}

	base := path.Base(rel)
	name := strings.TrimSuffix(base, path.Ext(base))
	entryPath := prefix + rel

	if isNumbered(name) && strings.Contains(rel, "/") {
		dir := path.Dir(rel)
		entryPath = prefix + dir
		name = path.Base(dir)
	}

	cover := constants.Unknown
	if IsImage(path.Ext(base)) {
		cover = root + prefix + rel
	}

	return Entry{
		Path:      entryPath,
		CoverPath: cover,
		Name:      name,
		Author:    constants.Unknown,
		Series:    constants.Unknown,
		Vol:       constants.DefaultVol,
		Language:  constants.Unknown,
		AgeRating: constants.UnratedAge,
		Tags:      []string{constants.Unknown},
	}
}

// isNumbered reports whether name is a part number such as "001" or "01_2".
func isNumbered(name string) bool {
	digits := strings.NewReplacer("_", "", ".", "").Replace(name)
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
