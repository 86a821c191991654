package catalogs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
)

// EntryID identifies an entry's slot in a catalog.
// IDs are assigned in insertion order and never reused by the same catalog.
type EntryID uint32

// Resolution is a width and height in pixels. The zero value means unknown.
type Resolution struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// String renders the resolution as WxH.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Entry is one cataloged media item.
//
// Catalogs hand out copies. Changing a copy's Author, Series, Language,
// AgeRating or Tags has no effect on the catalog; use the Catalog setters,
// which also re-file the entry in its indexes.
type Entry struct {
	Path       string     `json:"path" yaml:"path"`
	CoverPath  string     `json:"cover_path" yaml:"cover_path"`
	Name       string     `json:"name" yaml:"name"`
	Author     string     `json:"author" yaml:"author"`
	Series     string     `json:"series" yaml:"series"`
	Vol        int        `json:"vol" yaml:"vol"`
	Language   string     `json:"language" yaml:"language"`
	AgeRating  string     `json:"age_rating" yaml:"age_rating"`
	Release    int        `json:"release" yaml:"release"`
	Resolution Resolution `json:"resolution" yaml:"resolution"`
	Tags       []string   `json:"tags" yaml:"tags"`
}

// clone returns a deep copy of e.
func (e *Entry) clone() Entry {
	c := *e
	c.Tags = slices.Clone(e.Tags)
	return c
}

// Extension returns the lower-cased text after the last "." of the final
// path segment, or "" when there is none.
func (e *Entry) Extension() string {
	return extensionOf(e.Path)
}

func extensionOf(path string) string {
	base := path[strings.LastIndex(path, "/")+1:]
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

// normalize trims every text field and cleans the tag list, matching what
// a decode of the written record would produce.
func (e *Entry) normalize() {
	e.Path = strings.TrimSpace(e.Path)
	e.CoverPath = strings.TrimSpace(e.CoverPath)
	e.Name = strings.TrimSpace(e.Name)
	e.Author = strings.TrimSpace(e.Author)
	e.Series = strings.TrimSpace(e.Series)
	e.Language = strings.TrimSpace(e.Language)
	e.AgeRating = strings.TrimSpace(e.AgeRating)
	e.Tags = normalizeTags(e.Tags)
}

// Validate checks that every field can be written to a catalog file.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Path) == "" {
		return errors.NewValidationError("path", e.Path, "cannot be empty")
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"path", e.Path},
		{"cover_path", e.CoverPath},
		{"name", e.Name},
		{"author", e.Author},
		{"series", e.Series},
		{"language", e.Language},
		{"age_rating", e.AgeRating},
	} {
		if err := validateText(f.name, f.value); err != nil {
			return err
		}
	}
	if strings.Contains(e.Language, ",") {
		return errors.NewValidationError("language", e.Language, "cannot contain a comma")
	}
	if e.Vol < 0 {
		return errors.NewValidationError("vol", e.Vol, "cannot be negative")
	}
	if e.Release < 0 {
		return errors.NewValidationError("release", e.Release, "cannot be negative")
	}
	if e.Resolution.Width < 0 || e.Resolution.Height < 0 {
		return errors.NewValidationError("resolution", e.Resolution.String(), "cannot be negative")
	}
	for _, tag := range e.Tags {
		if err := validateTag(tag); err != nil {
			return err
		}
	}
	return nil
}

// validateText rejects values that would break the line-oriented format.
func validateText(field, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return errors.NewValidationError(field, value, "cannot contain a line break")
	}
	if strings.TrimSpace(value) == constants.RecordDelimiter {
		return errors.NewValidationError(field, value, "cannot be the record delimiter "+constants.RecordDelimiter)
	}
	return nil
}

func validateTag(tag string) error {
	if err := validateText("tags", tag); err != nil {
		return err
	}
	if strings.Contains(tag, ",") {
		return errors.NewValidationError("tags", tag, "cannot contain a comma")
	}
	return nil
}

// normalizeTags trims tags, drops empty ones and collapses duplicates
// case-insensitively, keeping the first spelling and the original order.
func normalizeTags(tags []string) []string {
	var out []string
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}

// SplitTags parses the comma-separated tag form used by the catalog file.
func SplitTags(s string) []string {
	return normalizeTags(strings.Split(s, ","))
}

// JoinTags renders tags in the comma-separated form used by the catalog file.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
