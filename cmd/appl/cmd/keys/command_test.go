package keys_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/cmd/appl/cmd/keys"
	"github.com/agentstation/appl/internal/cmd/cmdtest"
)

func TestKeysCommand(t *testing.T) {
	tests := []struct {
		field string
		want  []keys.Key
	}{
		{"author", []keys.Key{{Key: "j. doe", Entries: 2}, {Key: "jane roe", Entries: 1}}},
		{"tags", []keys.Key{{Key: "drama", Entries: 1}, {Key: "fantasy", Entries: 1}, {Key: "isekai", Entries: 1}, {Key: "poetry", Entries: 1}}},
		{"ext", []keys.Key{{Key: "epub", Entries: 1}, {Key: "mkv", Entries: 1}, {Key: "pdf", Entries: 1}}},
		{"language", []keys.Key{{Key: "english", Entries: 2}, {Key: "japanese", Entries: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			app := cmdtest.Mock(cmdtest.Catalog(t), "json")
			out, err := cmdtest.Run(t, keys.NewCommand(app), tt.field)
			require.NoError(t, err)

			var got []keys.Key
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeysTable(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "table")
	out, err := cmdtest.Run(t, keys.NewCommand(app), "series")
	require.NoError(t, err)
	assert.Contains(t, out, "saga")
	assert.Contains(t, out, "unknown")
}

func TestKeysUnknownField(t *testing.T) {
	app := cmdtest.Mock(cmdtest.Catalog(t), "json")
	_, err := cmdtest.Run(t, keys.NewCommand(app), "colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}
