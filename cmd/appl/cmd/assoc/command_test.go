package assoc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/cmd/appl/cmd/assoc"
	"github.com/agentstation/appl/internal/cmd/cmdtest"
	"github.com/agentstation/appl/pkg/errors"
)

func TestAssocList(t *testing.T) {
	for _, args := range [][]string{nil, {"list"}} {
		app := cmdtest.Mock(cmdtest.Catalog(t), "json")
		out, err := cmdtest.Run(t, assoc.NewCommand(app), args...)
		require.NoError(t, err)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, map[string]string{"epub": "ebook-viewer", "mkv": "mpv"}, got)
	}
}

func TestAssocSetAndRemove(t *testing.T) {
	c := cmdtest.Catalog(t)
	app := cmdtest.Mock(c, "table")

	_, err := cmdtest.Run(t, assoc.NewCommand(app), "set", ".PDF", "zathura", "--fork")
	require.NoError(t, err)
	opener, ok := c.Opener("/books/poems.pdf")
	require.True(t, ok)
	assert.Equal(t, "zathura --fork", opener)

	_, err = cmdtest.Run(t, assoc.NewCommand(app), "remove", "mkv")
	require.NoError(t, err)
	_, ok = c.Opener("/anime/show/01.mkv")
	assert.False(t, ok)
	assert.Equal(t, 2, app.Saves)

	_, err = cmdtest.Run(t, assoc.NewCommand(app), "remove", "mkv")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 2, app.Saves)
}
