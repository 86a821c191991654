package catalogs

import (
	"bufio"
	"io"
	"strconv"

	"github.com/agentstation/appl/pkg/constants"
)

// Encode writes the catalog in the .appl text format.
func (c *Catalog) Encode(w io.Writer) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	bw := bufio.NewWriter(w)
	ew := &errWriter{w: bw}

	ew.line(c.name)
	ew.line(c.root)
	ew.line("")
	ew.line(formatAssociationLiteral(c.associations))
	ew.line(strconv.FormatUint(c.live.GetCardinality(), 10))

	c.each(func(_ EntryID, e *Entry) {
		ew.line("")
		ew.line(constants.RecordDelimiter)
		ew.line("")
		ew.line(e.Path)
		ew.line(e.CoverPath)
		ew.line(e.Name)
		ew.line(e.Author)
		ew.line(e.Series + ", " + strconv.Itoa(e.Vol))
		ew.line(e.Language + ", " + e.AgeRating)
		ew.line(strconv.Itoa(e.Release))
		ew.line(e.Resolution.String())
		ew.line(JoinTags(e.Tags))
	})

	if ew.err != nil {
		return ew.err
	}
	return bw.Flush()
}

// errWriter keeps the first write error and skips later writes.
type errWriter struct {
	w   *bufio.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	if _, ew.err = ew.w.WriteString(s); ew.err != nil {
		return
	}
	ew.err = ew.w.WriteByte('\n')
}
