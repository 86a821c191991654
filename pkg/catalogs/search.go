package catalogs

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
)

// Match is one ranked search result.
type Match struct {
	ID    EntryID `json:"id" yaml:"id"`
	Entry Entry   `json:"entry" yaml:"entry"`
	Score int     `json:"score" yaml:"score"`
}

// Search ranks entries against a free-text query.
//
// Every ordered subset of the query words is tried as a phrase. A phrase
// scores one point per index bucket it names exactly (tag, language,
// series, rating, extension), one point when it is a run of whole words of
// the author, and one point each for a case-insensitive substring match in
// an entry's name and in its path. Hits are counted field by field in the
// order of Fields, then name and path.
//
// Each sub-phrase that is a word run of the author scores on its own, so
// the query "J. Doe" gives the author "J. Doe" three points ("j.", "doe"
// and "j. doe"), where an exact key alone would give one.
// Entries without points are left out. Results are ordered by score,
// highest first; ties keep the order in which entries first scored.
//
// The number of phrases is 2^n-1 for n words, so queries longer than
// constants.MaxQueryTokens words are rejected. An empty query returns nil.
func (c *Catalog) Search(ctx context.Context, query string) ([]Match, error) {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > constants.MaxQueryTokens {
		return nil, errors.NewValidationError("query", query,
			fmt.Sprintf("has %d words, at most %d are allowed", len(tokens), constants.MaxQueryTokens))
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	s := newScorer()
	for _, phrase := range phrases(tokens) {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapCanceled("search", err)
		}
		phrase = lower(phrase)
		for _, f := range Fields {
			if f == FieldAuthor {
				c.each(func(id EntryID, e *Entry) {
					if containsWords(lower(e.Author), phrase) {
						s.hit(id)
					}
				})
				continue
			}
			for _, id := range c.indexes[f][phrase] {
				s.hit(id)
			}
		}
		c.each(func(id EntryID, e *Entry) {
			if strings.Contains(strings.ToLower(e.Name), phrase) {
				s.hit(id)
			}
			if strings.Contains(strings.ToLower(e.Path), phrase) {
				s.hit(id)
			}
		})
	}

	ranked := s.ranked()
	out := make([]Match, 0, len(ranked))
	for _, id := range ranked {
		out = append(out, Match{ID: id, Entry: c.slots[id].clone(), Score: s.scores[id]})
	}
	return out, nil
}

// tokenize splits a query on spaces and drops empty words.
func tokenize(query string) []string {
	var tokens []string
	for _, t := range strings.Split(strings.TrimSpace(query), " ") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// containsWords reports whether the words of phrase appear consecutively
// among the words of s, so "doe" matches the author "j. doe".
func containsWords(s, phrase string) bool {
	words, want := strings.Fields(s), strings.Fields(phrase)
	if len(want) == 0 {
		return false
	}
	for i := 0; i+len(want) <= len(words); i++ {
		if slices.Equal(words[i:i+len(want)], want) {
			return true
		}
	}
	return false
}

// phrases returns every non-empty subset of words joined by single spaces,
// by increasing size and then by word position. Words keep their order.
func phrases(words []string) []string {
	n := len(words)
	out := make([]string, 0, 1<<n-1)
	picked := make([]string, 0, n)
	for size := 1; size <= n; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			picked = picked[:0]
			for _, i := range idx {
				picked = append(picked, words[i])
			}
			out = append(out, strings.Join(picked, " "))

			// advance to the next combination
			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
	return out
}

// scorer accumulates points and remembers the order entries first scored.
type scorer struct {
	scores map[EntryID]int
	seen   *roaring.Bitmap
	order  []EntryID
}

func newScorer() *scorer {
	return &scorer{scores: make(map[EntryID]int), seen: roaring.New()}
}

func (s *scorer) hit(id EntryID) {
	if s.seen.CheckedAdd(uint32(id)) {
		s.order = append(s.order, id)
	}
	s.scores[id]++
}

func (s *scorer) ranked() []EntryID {
	out := slices.Clone(s.order)
	slices.SortStableFunc(out, func(a, b EntryID) int {
		return s.scores[b] - s.scores[a]
	})
	return out
}
