package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/cmd/appl/cmd/edit"
	"github.com/agentstation/appl/internal/cmd/cmdtest"
	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/errors"
)

func TestSetCommand(t *testing.T) {
	c := cmdtest.Catalog(t)
	app := cmdtest.Mock(c, "table")

	out, err := cmdtest.Run(t, edit.NewSetCommand(app), "/books/novel.epub", "Author", "J. Doe")
	require.NoError(t, err)
	assert.Contains(t, out, "Set author of /books/novel.epub")
	assert.Equal(t, 1, app.Saves)

	assert.Len(t, c.Bucket(catalogs.FieldAuthor, "j. doe"), 3)
	assert.Empty(t, c.Bucket(catalogs.FieldAuthor, "jane roe"))

	_, err = cmdtest.Run(t, edit.NewSetCommand(app), "books/novel.epub", "resolution", "640x480")
	require.NoError(t, err)
	_, e, _ := c.Lookup("/books/novel.epub")
	assert.Equal(t, catalogs.Resolution{Width: 640, Height: 480}, e.Resolution)
	assert.Equal(t, 2, app.Saves)
}

func TestSetCommandErrors(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")

	_, err := cmdtest.Run(t, edit.NewSetCommand(app), "/books/novel.epub", "vol", "three")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = cmdtest.Run(t, edit.NewSetCommand(app), "/books/novel.epub", "colour", "red")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = cmdtest.Run(t, edit.NewSetCommand(app), "/missing", "name", "x")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	assert.Zero(t, app.Saves)
}

func TestTagsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"replace without mode", []string{"Comedy, Drama"}, []string{"Comedy", "Drama"}},
		{"set", []string{"set", "Horror", "Mystery"}, []string{"Horror", "Mystery"}},
		{"add", []string{"add", "Comedy"}, []string{"Fantasy", "Isekai", "Comedy"}},
		{"add existing", []string{"add", "FANTASY"}, []string{"Fantasy", "Isekai"}},
		{"remove", []string{"remove", "isekai"}, []string{"Fantasy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cmdtest.Catalog(t)
			app := cmdtest.Mock(c, "table")

			args := append([]string{"/anime/show/01.mkv"}, tt.args...)
			_, err := cmdtest.Run(t, edit.NewTagsCommand(app), args...)
			require.NoError(t, err)

			_, e, _ := c.Lookup("/anime/show/01.mkv")
			assert.Equal(t, tt.want, e.Tags)
			assert.Equal(t, 1, app.Saves)
		})
	}
}

func TestTagsCommandBadMode(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	_, err := cmdtest.Run(t, edit.NewTagsCommand(app), "/anime/show/01.mkv", "toggle", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
	assert.Zero(t, app.Saves)
}

func TestRenameCommand(t *testing.T) {
	c := cmdtest.Catalog(t)
	app := cmdtest.Mock(c, "table")

	out, err := cmdtest.Run(t, edit.NewRenameCommand(app), "Family", "Library")
	require.NoError(t, err)
	assert.Contains(t, out, "Family Library")
	assert.Equal(t, "Family Library", c.Name())
	assert.Equal(t, 1, app.Saves)
}
