package catalogs

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/agentstation/appl/pkg/logging"
)

// TestEntry creates a test entry with sensible defaults.
// The t.Helper() call ensures stack traces point to the test, not this function.
func TestEntry(t testing.TB, path string) Entry {
	t.Helper()
	return Entry{
		Path:       path,
		CoverPath:  "unknown",
		Name:       "Test Entry",
		Author:     "J. Doe",
		Series:     "Test Series",
		Vol:        1,
		Language:   "English",
		AgeRating:  "PG",
		Release:    2020,
		Resolution: Resolution{Width: 1920, Height: 1080},
		Tags:       []string{"Fantasy", "Isekai"},
	}
}

// TestCatalog creates an empty catalog rooted at /media with an in-memory
// filesystem and a silent logger.
func TestCatalog(t testing.TB) *Catalog {
	t.Helper()
	return New("Test Library", "/media",
		WithFilesystem(memfs.New()),
		WithLogger(logging.NewNopLogger()),
		WithAssociations(map[string]string{"epub": "ebook-viewer", "mkv": "mpv"}),
	)
}

// TestCatalogWith creates a test catalog holding entries, added in order.
func TestCatalogWith(t testing.TB, entries ...Entry) *Catalog {
	t.Helper()
	c := TestCatalog(t)
	for _, e := range entries {
		if _, err := c.Add(e); err != nil {
			t.Fatalf("adding %s: %v", e.Path, err)
		}
	}
	return c
}
