package trie_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/pkg/trie"
)

func TestInsertLookup(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("books/fantasy/a.epub", 1)
	tr.Insert("books/fantasy/b.epub", 2)
	tr.Insert("videos/c.mkv", 3)

	v, ok := tr.Lookup("books/fantasy/a.epub")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = tr.Lookup("books/fantasy")
	assert.False(t, ok, "intermediate node has no value")

	_, ok = tr.Lookup("books/scifi/a.epub")
	assert.False(t, ok)

	assert.Equal(t, 3, tr.Len())
}

func TestInsertOverwrites(t *testing.T) {
	tr := trie.New[string]()
	tr.Insert("a/b", "first")
	tr.Insert("a/b", "second")

	v, ok := tr.Lookup("a/b")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, tr.Len())
}

func TestRemove(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("a/b/c", 1)
	tr.Insert("a/b/d", 2)

	assert.True(t, tr.Remove("a/b/c"))
	assert.False(t, tr.Remove("a/b/c"), "second remove is a no-op")
	assert.False(t, tr.Remove("x/y"), "missing path is a no-op")

	_, ok := tr.Lookup("a/b/c")
	assert.False(t, ok)

	under, ok := tr.ListUnder("a/b")
	require.True(t, ok)
	assert.Equal(t, []int{2}, under)

	// Nodes survive removal, so the emptied prefix still resolves.
	tr.Remove("a/b/d")
	under, ok = tr.ListUnder("a/b")
	assert.True(t, ok)
	assert.Empty(t, under)
	assert.Equal(t, 0, tr.Len())
}

func TestListUnder(t *testing.T) {
	tr := trie.New[int]()
	tr.Insert("a", 0)
	tr.Insert("a/x/1", 1)
	tr.Insert("a/y", 2)
	tr.Insert("a/x/2", 3)
	tr.Insert("b/z", 4)

	tests := []struct {
		name   string
		prefix string
		want   []int
		found  bool
	}{
		{name: "includes prefix value", prefix: "a", want: []int{0, 1, 3, 2}, found: true},
		{name: "subtree", prefix: "a/x", want: []int{1, 3}, found: true},
		{name: "leaf", prefix: "a/y", want: []int{2}, found: true},
		{name: "root", prefix: "", want: []int{0, 1, 3, 2, 4}, found: true},
		{name: "missing", prefix: "c", want: nil, found: false},
		{name: "partial segment is not a prefix", prefix: "a/x/", want: nil, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.ListUnder(tt.prefix)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, []int{0, 1, 3, 2, 4}, tr.ListAll())
}

func TestLeadingSlashPaths(t *testing.T) {
	tr := trie.New[string]()
	tr.Insert("/books/a.epub", "a")
	tr.Insert("/books/b.epub", "b")

	v, ok := tr.Lookup("/books/a.epub")
	require.True(t, ok)
	assert.Equal(t, "a", v)

	got, ok := tr.ListUnder("/books")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	_, ok = tr.Lookup("books/a.epub")
	assert.False(t, ok, "leading slash is part of the key")
}

func TestListUnderReturnsEachValueOnce(t *testing.T) {
	tr := trie.New[string]()
	paths := []string{"m/a", "m/a/b", "m/a/b/c", "m/d", "n"}
	for _, p := range paths {
		tr.Insert(p, p)
	}

	for _, prefix := range []string{"m", "m/a", "m/a/b"} {
		got, ok := tr.ListUnder(prefix)
		require.True(t, ok)

		var want []string
		for _, p := range paths {
			if p == prefix || strings.HasPrefix(p, prefix+"/") {
				want = append(want, p)
			}
		}
		assert.ElementsMatch(t, want, got, prefix)
	}
}
