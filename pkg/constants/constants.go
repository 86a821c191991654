// Package constants provides shared constants used throughout the appl codebase.
// This includes file permissions, limits, catalog format tokens and the
// placeholder values given to newly discovered entries.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxQueryTokens caps the number of words in a search query.
	// Search expands a query into every word subset, so the work grows as 2^n.
	MaxQueryTokens = 10

	// DefaultMaxResults is the default number of search results shown by the CLI.
	// Zero means unlimited.
	DefaultMaxResults = 0

	// DefaultCapacity is the initial arena capacity of an empty catalog
	DefaultCapacity = 64
)

// Catalog format constants
const (
	// FormatName identifies the catalog text format in errors and logs
	FormatName = "appl"

	// FileExtension is the conventional extension of catalog files
	FileExtension = ".appl"

	// RecordDelimiter separates the header and every record
	RecordDelimiter = "---"

	// HeaderLines is the minimum number of lines in the header block
	HeaderLines = 5

	// RecordLines is the number of field lines in one record
	RecordLines = 9
)

// Placeholder values assigned to entries created by discovery
const (
	// Unknown is the placeholder for unclassified text fields and covers
	Unknown = "unknown"

	// UnratedAge is the placeholder age rating
	UnratedAge = "NA"

	// DefaultVol is the volume given to discovered entries
	DefaultVol = 1
)

// Path constants
const (
	// DefaultConfigName is the base name of the config file searched in $HOME and .
	DefaultConfigName = ".appl"

	// EnvPrefix is the prefix of environment variables read by viper
	EnvPrefix = "APPL"
)
