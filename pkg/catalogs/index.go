package catalogs

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Field names an indexed entry field.
type Field string

// Indexed fields.
const (
	FieldAuthor    Field = "author"
	FieldSeries    Field = "series"
	FieldLanguage  Field = "language"
	FieldRating    Field = "rating"
	FieldTag       Field = "tag"
	FieldExtension Field = "extension"
)

// Fields lists the indexed fields in search order.
var Fields = []Field{FieldTag, FieldLanguage, FieldAuthor, FieldSeries, FieldRating, FieldExtension}

// ParseField converts a user-supplied name to a Field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "author", "authors":
		return FieldAuthor, nil
	case "series":
		return FieldSeries, nil
	case "language", "languages", "lang":
		return FieldLanguage, nil
	case "rating", "ratings", "age_rating", "age-rating":
		return FieldRating, nil
	case "tag", "tags":
		return FieldTag, nil
	case "extension", "extensions", "ext":
		return FieldExtension, nil
	default:
		return "", fmt.Errorf("unknown field %q: must be one of author, series, language, rating, tag, extension", s)
	}
}

// keys returns the lower-cased index keys an entry is filed under for f.
func (e *Entry) keys(f Field) []string {
	switch f {
	case FieldAuthor:
		return []string{strings.ToLower(e.Author)}
	case FieldSeries:
		return []string{strings.ToLower(e.Series)}
	case FieldLanguage:
		return []string{strings.ToLower(e.Language)}
	case FieldRating:
		return []string{strings.ToLower(e.AgeRating)}
	case FieldTag:
		keys := make([]string, len(e.Tags))
		for i, tag := range e.Tags {
			keys[i] = strings.ToLower(tag)
		}
		return keys
	case FieldExtension:
		if ext := e.Extension(); ext != "" {
			return []string{ext}
		}
	}
	return nil
}

// index maps a lower-cased key to the IDs filed under it, in filing order.
// Empty buckets are deleted.
type index map[string][]EntryID

func (ix index) add(key string, id EntryID) {
	if slices.Contains(ix[key], id) {
		return
	}
	ix[key] = append(ix[key], id)
}

func (ix index) remove(key string, id EntryID) {
	bucket, ok := ix[key]
	if !ok {
		return
	}
	i := slices.Index(bucket, id)
	if i < 0 {
		return
	}
	bucket = slices.Delete(bucket, i, i+1)
	if len(bucket) == 0 {
		delete(ix, key)
		return
	}
	ix[key] = bucket
}

// sortedKeys returns the bucket keys in ascending order.
func (ix index) sortedKeys() []string {
	keys := make([]string, 0, len(ix))
	for k := range ix {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
