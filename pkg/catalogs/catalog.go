// Package catalogs provides the media catalog engine: an in-memory store of
// entries with secondary indexes, the .appl text serializer, filesystem
// reconciliation and ranked search.
//
// A Catalog owns its entries in an arena addressed by EntryID. Every
// secondary index, the by-path map and the path trie hold IDs only, so an
// entry has exactly one owner no matter how many buckets reference it.
package catalogs

import (
	"maps"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/logging"
	"github.com/agentstation/appl/pkg/trie"
)

// Catalog is a collection of entries rooted at one directory.
// All methods are safe for concurrent use; each mutation holds the write
// lock for its whole duration.
type Catalog struct {
	mu sync.RWMutex

	name         string
	root         string
	associations map[string]string

	// arena
	slots []*Entry
	live  *roaring.Bitmap

	byPath  map[string]EntryID
	paths   *trie.Trie[EntryID]
	indexes map[Field]index

	declaredCount int

	fs     billy.Filesystem
	logger *zerolog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithAssociations sets the extension to opener mapping. Pairs that
// SetAssociation would reject, such as an opener containing a comma or a
// brace, are left out so the header literal always decodes back to the
// same map. Use SetAssociations to get the validation error instead.
func WithAssociations(assoc map[string]string) Option {
	return func(c *Catalog) {
		normalized := normalizeAssociations(assoc)
		for ext, opener := range normalized {
			if validateAssociation(ext, opener) != nil {
				delete(normalized, ext)
			}
		}
		c.associations = normalized
	}
}

// WithFilesystem sets the filesystem used by reconciliation and discovery.
// It must be rooted at the catalog root.
func WithFilesystem(fs billy.Filesystem) Option {
	return func(c *Catalog) {
		c.fs = fs
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity pre-sizes the arena and the by-path map.
func WithCapacity(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.slots = make([]*Entry, 0, n)
			c.byPath = make(map[string]EntryID, n)
		}
	}
}

// New creates an empty catalog named name for the directory root.
func New(name, root string, opts ...Option) *Catalog {
	c := &Catalog{
		name:         name,
		root:         root,
		associations: make(map[string]string),
		slots:        make([]*Entry, 0, constants.DefaultCapacity),
		live:         roaring.New(),
		byPath:       make(map[string]EntryID, constants.DefaultCapacity),
		paths:        trie.New[EntryID](),
		indexes:      make(map[Field]index, len(Fields)),
		logger:       logging.Default(),
	}
	for _, f := range Fields {
		c.indexes[f] = make(index)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the collection name.
func (c *Catalog) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// Root returns the directory entry paths are relative to.
func (c *Catalog) Root() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.root
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int(c.live.GetCardinality())
}

// DeclaredCount returns the entry count written in the loaded file's header.
// It is informational; Len is authoritative.
func (c *Catalog) DeclaredCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.declaredCount
}

// Associations returns a copy of the extension to opener mapping.
func (c *Catalog) Associations() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.associations)
}

// Filesystem returns the filesystem collaborator, opening the root
// directory on first use when none was configured.
func (c *Catalog) Filesystem() billy.Filesystem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filesystem()
}

func (c *Catalog) filesystem() billy.Filesystem {
	if c.fs == nil {
		c.fs = osfs.New(c.root)
	}
	return c.fs
}

// Get returns a copy of the entry with the given ID.
func (c *Catalog) Get(id EntryID) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e := c.entry(id)
	if e == nil {
		return Entry{}, false
	}
	return e.clone(), true
}

// Lookup returns the entry stored under exactly path.
func (c *Catalog) Lookup(path string) (EntryID, Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byPath[path]
	if !ok {
		return 0, Entry{}, false
	}
	return id, c.slots[id].clone(), true
}

// Entries returns copies of all entries in insertion order.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Entry, 0, c.live.GetCardinality())
	c.each(func(_ EntryID, e *Entry) {
		out = append(out, e.clone())
	})
	return out
}

// IDs returns the IDs of all entries in insertion order.
func (c *Catalog) IDs() []EntryID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ids()
}

// ListUnder returns the entries whose path equals prefix or lies below it.
// The boolean is false when no entry path passes through prefix.
func (c *Catalog) ListUnder(prefix string) ([]EntryID, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paths.ListUnder(prefix)
}

// Keys returns the distinct keys of one index in ascending order.
func (c *Catalog) Keys(f Field) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ix, ok := c.indexes[f]
	if !ok {
		return nil
	}
	return ix.sortedKeys()
}

// Bucket returns the IDs filed under key in one index, in filing order.
// The key is matched case-insensitively.
func (c *Catalog) Bucket(f Field, key string) []EntryID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]EntryID(nil), c.indexes[f][lower(key)]...)
}

// entry returns the live slot for id, or nil.
func (c *Catalog) entry(id EntryID) *Entry {
	if !c.live.Contains(uint32(id)) {
		return nil
	}
	return c.slots[id]
}

// each visits live entries in ascending ID order, which is insertion order.
func (c *Catalog) each(fn func(EntryID, *Entry)) {
	it := c.live.Iterator()
	for it.HasNext() {
		id := EntryID(it.Next())
		fn(id, c.slots[id])
	}
}

func (c *Catalog) ids() []EntryID {
	out := make([]EntryID, 0, c.live.GetCardinality())
	c.each(func(id EntryID, _ *Entry) {
		out = append(out, id)
	})
	return out
}
