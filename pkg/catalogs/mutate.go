package catalogs

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/appl/pkg/errors"
)

// Add stores a new entry and files it in every index.
// A path that is already present is rejected with a DuplicateKeyError.
func (c *Catalog) Add(e Entry) (EntryID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.add(e)
}

func (c *Catalog) add(e Entry) (EntryID, error) {
	e.normalize()
	if err := e.Validate(); err != nil {
		return 0, err
	}
	if _, exists := c.byPath[e.Path]; exists {
		return 0, errors.NewDuplicateKeyError("entry", e.Path)
	}
	if uint64(len(c.slots)) >= math.MaxUint32 {
		return 0, errors.NewValidationError("entry", e.Path, "catalog is full")
	}

	id := EntryID(len(c.slots))
	stored := e.clone()
	c.slots = append(c.slots, &stored)
	c.live.Add(uint32(id))
	c.byPath[stored.Path] = id
	c.paths.Insert(stored.Path, id)
	for _, f := range Fields {
		c.file(f, id, &stored)
	}

	c.logger.Debug().
		Str("path", stored.Path).
		Uint32("id", uint32(id)).
		Msg("Entry added")
	return id, nil
}

// Remove deletes an entry from the catalog and from every index.
func (c *Catalog) Remove(id EntryID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(id)
}

func (c *Catalog) remove(id EntryID) error {
	e := c.entry(id)
	if e == nil {
		return errors.NewNotFoundError("entry", strconv.FormatUint(uint64(id), 10))
	}
	for _, f := range Fields {
		c.unfile(f, id, e)
	}
	delete(c.byPath, e.Path)
	c.paths.Remove(e.Path)
	c.live.Remove(uint32(id))
	c.slots[id] = nil

	c.logger.Debug().
		Str("path", e.Path).
		Uint32("id", uint32(id)).
		Msg("Entry removed")
	return nil
}

// SetAuthor changes an entry's author and re-files it.
func (c *Catalog) SetAuthor(id EntryID, author string) error {
	return c.setIndexed(id, FieldAuthor, "author", author, func(e *Entry, v string) { e.Author = v })
}

// SetSeries changes an entry's series and re-files it.
func (c *Catalog) SetSeries(id EntryID, series string) error {
	return c.setIndexed(id, FieldSeries, "series", series, func(e *Entry, v string) { e.Series = v })
}

// SetLanguage changes an entry's language and re-files it.
func (c *Catalog) SetLanguage(id EntryID, language string) error {
	if strings.Contains(language, ",") {
		return errors.NewValidationError("language", language, "cannot contain a comma")
	}
	return c.setIndexed(id, FieldLanguage, "language", language, func(e *Entry, v string) { e.Language = v })
}

// SetRating changes an entry's age rating and re-files it.
func (c *Catalog) SetRating(id EntryID, rating string) error {
	return c.setIndexed(id, FieldRating, "age_rating", rating, func(e *Entry, v string) { e.AgeRating = v })
}

// setIndexed unfiles the entry under its old key, applies set and files it
// under the new key, all under one lock.
func (c *Catalog) setIndexed(id EntryID, f Field, name, value string, set func(*Entry, string)) error {
	value = strings.TrimSpace(value)
	if err := validateText(name, value); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.mustEntry(id)
	if err != nil {
		return err
	}
	c.unfile(f, id, e)
	set(e, value)
	c.file(f, id, e)
	return nil
}

// SetTags replaces an entry's tags. Duplicates are collapsed
// case-insensitively and the first spelling is kept.
func (c *Catalog) SetTags(id EntryID, tags []string) error {
	tags = normalizeTags(tags)
	for _, tag := range tags {
		if err := validateTag(tag); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.mustEntry(id)
	if err != nil {
		return err
	}
	c.unfile(FieldTag, id, e)
	e.Tags = tags
	c.file(FieldTag, id, e)
	return nil
}

// SetTagString replaces an entry's tags from the comma-separated form.
func (c *Catalog) SetTagString(id EntryID, tags string) error {
	return c.SetTags(id, strings.Split(tags, ","))
}

// AddTag appends a tag unless the entry already has it.
func (c *Catalog) AddTag(id EntryID, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return errors.NewValidationError("tags", tag, "cannot be empty")
	}
	if err := validateTag(tag); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.mustEntry(id)
	if err != nil {
		return err
	}
	if tagIndex(e.Tags, tag) >= 0 {
		return nil
	}
	e.Tags = append(e.Tags, tag)
	c.indexes[FieldTag].add(lower(tag), id)
	return nil
}

// RemoveTag drops a tag, matched case-insensitively. Removing a tag the
// entry does not have is a no-op.
func (c *Catalog) RemoveTag(id EntryID, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.mustEntry(id)
	if err != nil {
		return err
	}
	i := tagIndex(e.Tags, tag)
	if i < 0 {
		return nil
	}
	e.Tags = slices.Delete(e.Tags, i, i+1)
	c.indexes[FieldTag].remove(lower(tag), id)
	return nil
}

// SetName changes an entry's display name.
func (c *Catalog) SetName(id EntryID, name string) error {
	return c.setPlain(id, "name", name, func(e *Entry, v string) { e.Name = v })
}

// SetCover changes an entry's cover image path.
func (c *Catalog) SetCover(id EntryID, cover string) error {
	return c.setPlain(id, "cover_path", cover, func(e *Entry, v string) { e.CoverPath = v })
}

func (c *Catalog) setPlain(id EntryID, name, value string, set func(*Entry, string)) error {
	value = strings.TrimSpace(value)
	if err := validateText(name, value); err != nil {
		return err
	}
	return c.update(id, func(e *Entry) { set(e, value) })
}

// SetVol changes an entry's volume number.
func (c *Catalog) SetVol(id EntryID, vol int) error {
	if vol < 0 {
		return errors.NewValidationError("vol", vol, "cannot be negative")
	}
	return c.update(id, func(e *Entry) { e.Vol = vol })
}

// SetRelease changes an entry's release year.
func (c *Catalog) SetRelease(id EntryID, year int) error {
	if year < 0 {
		return errors.NewValidationError("release", year, "cannot be negative")
	}
	return c.update(id, func(e *Entry) { e.Release = year })
}

// SetResolution changes an entry's resolution.
func (c *Catalog) SetResolution(id EntryID, width, height int) error {
	if width < 0 || height < 0 {
		return errors.NewValidationError("resolution", Resolution{width, height}.String(), "cannot be negative")
	}
	return c.update(id, func(e *Entry) { e.Resolution = Resolution{Width: width, Height: height} })
}

// update applies fn to an unindexed field of a live entry.
func (c *Catalog) update(id EntryID, fn func(*Entry)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, err := c.mustEntry(id)
	if err != nil {
		return err
	}
	fn(e)
	return nil
}

func (c *Catalog) mustEntry(id EntryID) (*Entry, error) {
	e := c.entry(id)
	if e == nil {
		return nil, errors.NewNotFoundError("entry", strconv.FormatUint(uint64(id), 10))
	}
	return e, nil
}

func (c *Catalog) file(f Field, id EntryID, e *Entry) {
	for _, key := range e.keys(f) {
		c.indexes[f].add(key, id)
	}
}

func (c *Catalog) unfile(f Field, id EntryID, e *Entry) {
	for _, key := range e.keys(f) {
		c.indexes[f].remove(key, id)
	}
}

func tagIndex(tags []string, tag string) int {
	key := lower(tag)
	return slices.IndexFunc(tags, func(t string) bool {
		return lower(t) == key
	})
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// EditableFields lists the field names SetField accepts.
var EditableFields = []string{"name", "cover", "author", "series", "vol", "language", "rating", "release", "resolution", "tags"}

// SetField sets one field from its text form, as typed on a command line.
// Numbers are base-10, the resolution is WIDTHxHEIGHT and tags are
// comma-separated.
func (c *Catalog) SetField(id EntryID, field, value string) error {
	f := strings.ToLower(strings.TrimSpace(field))
	switch f {
	case "name":
		return c.SetName(id, value)
	case "cover", "cover_path":
		return c.SetCover(id, value)
	case "author":
		return c.SetAuthor(id, value)
	case "series":
		return c.SetSeries(id, value)
	case "language", "lang":
		return c.SetLanguage(id, value)
	case "rating", "age_rating":
		return c.SetRating(id, value)
	case "tags", "tag":
		return c.SetTagString(id, value)
	case "vol", "release":
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return errors.NewValidationError(field, value, "must be a base-10 integer")
		}
		if f == "vol" {
			return c.SetVol(id, n)
		}
		return c.SetRelease(id, n)
	case "resolution":
		w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(value)), "x")
		width, werr := strconv.Atoi(strings.TrimSpace(w))
		height, herr := strconv.Atoi(strings.TrimSpace(h))
		if !ok || werr != nil || herr != nil {
			return errors.NewValidationError(field, value, "must be WIDTHxHEIGHT")
		}
		return c.SetResolution(id, width, height)
	default:
		return errors.NewValidationError("field", field,
			"must be one of "+strings.Join(EditableFields, ", "))
	}
}
