package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/appl/pkg/catalogs"
)

// Format is an export format.
type Format string

// Export formats.
const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported formats.
var Formats = []Format{FormatYAML, FormatMarkdown}

// ParseFormat converts a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format %q: must be yaml or markdown", s)
	}
}

// Extension returns the conventional file extension for f.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	default:
		return ".yaml"
	}
}

// Document is a point-in-time copy of a catalog.
type Document struct {
	Name         string            `yaml:"name"`
	Root         string            `yaml:"root"`
	Associations map[string]string `yaml:"associations"`
	Entries      []catalogs.Entry  `yaml:"entries"`
}

// Snapshot copies the exportable state of a catalog.
func Snapshot(r catalogs.Reader) *Document {
	return &Document{
		Name:         r.Name(),
		Root:         r.Root(),
		Associations: r.Associations(),
		Entries:      r.Entries(),
	}
}

// Write renders the catalog to w in format f.
func Write(w io.Writer, f Format, r catalogs.Reader) error {
	doc := Snapshot(r)
	switch f {
	case FormatYAML:
		return YAML(w, doc)
	case FormatMarkdown:
		return Markdown(w, doc)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}
