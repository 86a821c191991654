package open_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/cmd/appl/cmd/open"
	"github.com/agentstation/appl/internal/cmd/cmdtest"
	"github.com/agentstation/appl/internal/opener"
	"github.com/agentstation/appl/pkg/errors"
)

func TestResolver(t *testing.T) {
	c := cmdtest.Catalog(t)

	r := open.Resolver(c, "")
	assert.Equal(t, "/media", r.Root())

	r = open.Resolver(c, "/mnt/media")
	assert.Equal(t, "/mnt/media", r.Root())
	cmd, ok := r.Opener("/anime/show/01.mkv")
	require.True(t, ok)
	assert.Equal(t, "mpv", cmd)

	assert.Equal(t, "/mnt/media/anime/show/01.mkv", opener.New(r).Target("/anime/show/01.mkv"))
}

func TestOpenErrors(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")

	_, err := cmdtest.Run(t, open.NewCommand(app), "/books/poems.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, opener.ErrNoAssociation)

	_, err = cmdtest.Run(t, open.NewCommand(app), "/nope.mkv")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
