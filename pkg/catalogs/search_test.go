package catalogs

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/appl/pkg/errors"
)

func exampleEntry() Entry {
	return Entry{
		Path:      "a/1.epub",
		CoverPath: "unknown",
		Name:      "1",
		Author:    "J. Doe",
		Series:    "unknown",
		Language:  "unknown",
		AgeRating: "NA",
		Tags:      []string{"Fantasy", "Isekai"},
	}
}

func paths(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Entry.Path
	}
	return out
}

func TestSearchExample(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())
	ctx := context.Background()

	matches, err := c.Search(ctx, "fantasy isekai")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "a/1.epub", matches[0].Entry.Path)
	assert.GreaterOrEqual(t, matches[0].Score, 2)

	matches, err = c.Search(ctx, "doe")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)

	matches, err = c.Search(ctx, "xyz")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchScoring(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())
	ctx := context.Background()

	tests := []struct {
		query string
		score int
	}{
		{"J. Doe", 3},          // "j.", "doe" and "j. doe" are author word runs
		{"epub", 2},            // extension bucket and path substring
		{"1", 2},               // name and path substrings
		{"unknown", 2},         // series and language buckets
		{"na", 1},              // rating bucket
		{"FANTASY", 1},         // tag bucket, case-insensitive
		{"science fantasy", 1}, // only the single-word phrase matches
		{"  fantasy   isekai ", 2},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			matches, err := c.Search(ctx, tt.query)
			require.NoError(t, err)
			require.Len(t, matches, 1)
			assert.Equal(t, tt.score, matches[0].Score)
		})
	}
}

func TestSearchMultiWordPhrase(t *testing.T) {
	e := exampleEntry()
	e.Tags = []string{"Slice of Life"}
	c := TestCatalogWith(t, e)

	// Extra words around the phrase still let the tag match.
	matches, err := c.Search(context.Background(), "cozy slice of daily life")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)
}

func TestSearchOrdering(t *testing.T) {
	first := TestEntry(t, "/x/first.mkv")
	first.Tags = []string{"action"}
	first.Author = "nobody"

	second := TestEntry(t, "/x/second.mkv")
	second.Tags = []string{"action", "comedy"}
	second.Author = "nobody"

	third := TestEntry(t, "/x/third.mkv")
	third.Tags = []string{"action"}
	third.Author = "nobody"

	c := TestCatalogWith(t, first, second, third)

	matches, err := c.Search(context.Background(), "action comedy")
	require.NoError(t, err)
	assert.Equal(t, []string{"/x/second.mkv", "/x/first.mkv", "/x/third.mkv"}, paths(matches))
	assert.Equal(t, []int{2, 1, 1}, []int{matches[0].Score, matches[1].Score, matches[2].Score})
}

func TestSearchTieOrderFollowsFields(t *testing.T) {
	bySeries := TestEntry(t, "/b.mkv")
	bySeries.Series = "Noir"

	byAuthor := TestEntry(t, "/a.mkv")
	byAuthor.Author = "Noir"

	c := TestCatalogWith(t, bySeries, byAuthor)

	matches, err := c.Search(context.Background(), "noir")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, []string{"/a.mkv", "/b.mkv"}, paths(matches))
	assert.Equal(t, 1, matches[0].Score)
	assert.Equal(t, 1, matches[1].Score)
}

func TestSearchAuthorWordRuns(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())

	matches, err := c.Search(context.Background(), "J. Doe")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Score)
}

func TestSearchIdempotent(t *testing.T) {
	c := TestCatalogWith(t,
		TestEntry(t, "/a/one.epub"),
		TestEntry(t, "/a/two.epub"),
		TestEntry(t, "/b/three.mkv"),
	)
	ctx := context.Background()

	first, err := c.Search(ctx, "fantasy english mkv")
	require.NoError(t, err)
	require.NotEmpty(t, first)
	for range 5 {
		again, err := c.Search(ctx, "fantasy english mkv")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearchDoesNotMutate(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())
	before := c.Entries()

	matches, err := c.Search(context.Background(), "fantasy")
	require.NoError(t, err)
	matches[0].Entry.Tags[0] = "changed"

	assert.Equal(t, before, c.Entries())
	assertConsistent(t, c)
}

func TestSearchEmptyQuery(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())
	for _, q := range []string{"", "   "} {
		matches, err := c.Search(context.Background(), q)
		require.NoError(t, err)
		assert.Nil(t, matches)
	}
}

func TestSearchTokenLimit(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())

	_, err := c.Search(context.Background(), strings.Repeat("w ", 10))
	require.NoError(t, err)

	_, err = c.Search(context.Background(), strings.Repeat("w ", 11))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestSearchCanceled(t *testing.T) {
	c := TestCatalogWith(t, exampleEntry())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, "fantasy")
	assert.True(t, errors.IsCanceled(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPhrases(t *testing.T) {
	assert.Equal(t, []string{"a"}, phrases([]string{"a"}))
	assert.Equal(t,
		[]string{"a", "b", "c", "a b", "a c", "b c", "a b c"},
		phrases([]string{"a", "b", "c"}))
	assert.Len(t, phrases(strings.Fields("1 2 3 4 5 6 7 8 9 10")), 1023)
}
