package catalogs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/pkg/errors"
	"github.com/agentstation/appl/pkg/logging"
)

func TestEncodeMatchesDocument(t *testing.T) {
	c, err := decodeString(t, sampleDocument)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	assert.Equal(t, sampleDocument, buf.String())
}

func TestRoundTrip(t *testing.T) {
	original := TestCatalogWith(t,
		TestEntry(t, "/a/1.epub"),
		Entry{
			Path:      "/b/Some, Title (2001).mkv",
			CoverPath: "/media/covers/b.png",
			Name:      "Some, Title",
			Author:    "unknown",
			Series:    "A, B, C",
			Vol:       12,
			Language:  "French",
			AgeRating: "NA",
			Release:   2001,
			Tags:      []string{"drama", "Award Winner"},
		},
		TestEntry(t, "relative/path.cbz"),
	)
	require.NoError(t, original.SetAssociation(".CBZ", "comic-reader --fullscreen"))
	require.NoError(t, original.SetTags(2, nil))

	var buf bytes.Buffer
	require.NoError(t, original.Encode(&buf))

	decoded, err := decodeString(t, buf.String())
	require.NoError(t, err)

	assert.Equal(t, original.Name(), decoded.Name())
	assert.Equal(t, original.Root(), decoded.Root())
	assert.Equal(t, original.Associations(), decoded.Associations())
	assert.Equal(t, original.Len(), decoded.DeclaredCount())

	want, got := original.Entries(), decoded.Entries()
	require.Len(t, got, len(want))
	for i := range want {
		// An empty tag list decodes as nil.
		if len(want[i].Tags) == 0 {
			want[i].Tags = nil
		}
		assert.Equal(t, want[i], got[i])
	}
	assertConsistent(t, decoded)
}

func TestEncodeAssociationsSorted(t *testing.T) {
	c := New("Lib", "/m", WithAssociations(map[string]string{"mkv": "mpv", "cbz": "reader", "epub": "viewer"}))

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, `{"cbz":"reader", "epub":"viewer", "mkv":"mpv"}`, lines[3])
	assert.Equal(t, "0", lines[4])
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "library.appl")

	original := TestCatalogWith(t, TestEntry(t, "/a/1.epub"), TestEntry(t, "/a/2.epub"))
	require.NoError(t, original.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(dir, "nested", ".library.appl.*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers, "temporary file must not remain")

	loaded, err := Load(path, WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Equal(t, original.Entries(), loaded.Entries())
	assert.Equal(t, original.Associations(), loaded.Associations())
}

func TestSaveErrors(t *testing.T) {
	c := TestCatalog(t)

	err := c.Save("")
	var cerr *errors.ConfigError
	assert.ErrorAs(t, err, &cerr)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	err = c.Save(filepath.Join(blocker, "library.appl"))
	assert.True(t, errors.IsIOError(err))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.appl"))
	assert.True(t, errors.IsIOError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.appl")
	require.NoError(t, os.WriteFile(bad, []byte("only a name\n"), 0o644))
	_, err = Load(bad)
	assert.True(t, errors.IsFormatError(err))
}
