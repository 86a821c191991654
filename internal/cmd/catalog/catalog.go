// Package catalog provides common catalog operations for CLI commands.
package catalog

import (
	"fmt"
	"strings"

	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/errors"
)

// Resolve finds the entry stored at path. A path without a leading "/"
// is tried with one, so "anime/x.mkv" and "/anime/x.mkv" both resolve.
func Resolve(store catalogs.Reader, path string) (catalogs.EntryID, catalogs.Entry, error) {
	if id, e, ok := store.Lookup(path); ok {
		return id, e, nil
	}
	if !strings.HasPrefix(path, "/") {
		if id, e, ok := store.Lookup("/" + path); ok {
			return id, e, nil
		}
	}
	return 0, catalogs.Entry{}, errors.NewNotFoundError("entry", path)
}

// Entries returns copies of the entries with the given IDs, skipping any
// removed since the IDs were read.
func Entries(store catalogs.Reader, ids []catalogs.EntryID) []catalogs.Entry {
	entries := make([]catalogs.Entry, 0, len(ids))
	for _, id := range ids {
		if e, ok := store.Get(id); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Under returns the entries at or below prefix, or every entry when
// prefix is empty or "/".
func Under(store catalogs.Reader, prefix string) ([]catalogs.Entry, error) {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return store.Entries(), nil
	}
	ids, ok := store.ListUnder(prefix)
	if !ok && !strings.HasPrefix(prefix, "/") {
		ids, ok = store.ListUnder("/" + prefix)
	}
	if !ok {
		return nil, errors.NewNotFoundError("path", prefix)
	}
	return Entries(store, ids), nil
}

// Tag edit modes.
const (
	ModeSet    = "set"
	ModeAdd    = "add"
	ModeRemove = "remove"
)

// EditTags applies a tag edit in the given mode. tags is a
// comma-separated list.
func EditTags(store catalogs.Writer, id catalogs.EntryID, mode, tags string) error {
	switch strings.ToLower(mode) {
	case ModeSet:
		return store.SetTags(id, strings.Split(tags, ","))
	case ModeAdd:
		for _, tag := range catalogs.SplitTags(tags) {
			if err := store.AddTag(id, tag); err != nil {
				return err
			}
		}
	case ModeRemove:
		for _, tag := range catalogs.SplitTags(tags) {
			if err := store.RemoveTag(id, tag); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("invalid mode %q: must be %s, %s or %s", mode, ModeSet, ModeAdd, ModeRemove)
	}
	return nil
}
