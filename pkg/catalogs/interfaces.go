package catalogs

import "context"

// Reader provides read-only access to catalog data.
type Reader interface {
	// Collection settings
	Name() string
	Root() string
	Associations() map[string]string
	Opener(path string) (string, bool)

	// Entries by id, by exact path and by path prefix
	Get(id EntryID) (Entry, bool)
	Lookup(path string) (EntryID, Entry, bool)
	ListUnder(prefix string) ([]EntryID, bool)
	Entries() []Entry
	IDs() []EntryID
	Len() int

	// Index access
	Keys(f Field) []string
	Bucket(f Field, key string) []EntryID
}

// Searcher ranks entries against a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Match, error)
}

// Writer provides mutations that keep every index consistent.
type Writer interface {
	Add(e Entry) (EntryID, error)
	Remove(id EntryID) error

	// Indexed fields are re-filed on change
	SetAuthor(id EntryID, author string) error
	SetSeries(id EntryID, series string) error
	SetLanguage(id EntryID, language string) error
	SetRating(id EntryID, rating string) error
	SetTags(id EntryID, tags []string) error
	AddTag(id EntryID, tag string) error
	RemoveTag(id EntryID, tag string) error

	SetName(id EntryID, name string) error
	SetCover(id EntryID, cover string) error
	SetVol(id EntryID, vol int) error
	SetRelease(id EntryID, year int) error
	SetResolution(id EntryID, width, height int) error
	SetField(id EntryID, field, value string) error

	Rename(name string) error
	SetAssociation(ext, opener string) error
	RemoveAssociation(ext string) bool
}

// Reconciler syncs a catalog against its root directory.
type Reconciler interface {
	ReconcileMissing(ctx context.Context) ([]Entry, error)
	DiscoverNew(ctx context.Context) ([]EntryID, error)
}

// Persistable can be written back to a catalog file.
type Persistable interface {
	Save(path string) error
}

// Store is the complete interface combining all catalog capabilities.
type Store interface {
	Reader
	Searcher
	Writer
	Reconciler
	Persistable
}

// Ensure Catalog implements Store.
var _ Store = (*Catalog)(nil)
