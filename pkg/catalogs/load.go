package catalogs

import (
	"bytes"
	"os"

	"github.com/agentstation/appl/pkg/errors"
)

// Load reads and decodes the catalog file at path.
// An unreadable file returns an IOError; a malformed one a ParseError.
func Load(path string, opts ...Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	c, err := Decode(bytes.NewReader(data), path, opts...)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Str("file", path).
		Str("catalog", c.name).
		Int("entries", c.Len()).
		Msg("Catalog loaded")
	return c, nil
}
