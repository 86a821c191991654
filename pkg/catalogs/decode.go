package catalogs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agentstation/appl/pkg/constants"
	"github.com/agentstation/appl/pkg/errors"
)

// Header line offsets.
const (
	headerName         = 0
	headerRoot         = 1
	headerAssociations = 3
	headerCount        = 4
)

// Record line offsets. Line 0 of a record block is the blank line that
// follows the delimiter.
const (
	recordPath = iota + 1
	recordCover
	recordName
	recordAuthor
	recordSeries
	recordLanguage
	recordRelease
	recordResolution
	recordTags
)

// block is a run of lines between delimiters.
type block struct {
	lines []string
	start int // 1-based document line of lines[0]
}

// Decode parses a catalog document. file names the source in errors.
// Any malformed header or record fails the whole decode; no partial
// catalog is returned.
func Decode(r io.Reader, file string, opts ...Option) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", file, err)
	}
	return decode(string(data), file, opts...)
}

func decode(doc string, file string, opts ...Option) (*Catalog, error) {
	blocks := splitBlocks(doc)
	header := blocks[0]

	d := decoder{file: file}
	if len(header.lines) < constants.HeaderLines {
		return nil, d.errorf(header.start, "header has %d lines, expected at least %d", len(header.lines), constants.HeaderLines)
	}
	if err := d.trailing(header, constants.HeaderLines); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(header.lines[headerName])
	root := strings.TrimSpace(header.lines[headerRoot])

	assoc, err := parseAssociationLiteral(header.lines[headerAssociations])
	if err != nil {
		return nil, d.wrap(header.start+headerAssociations, err)
	}
	count, err := d.atoi(header, headerCount, "entry count")
	if err != nil {
		return nil, err
	}

	records := blocks[1:]
	c := New(name, root, append([]Option{WithCapacity(len(records)), WithAssociations(assoc)}, opts...)...)
	c.declaredCount = count

	for _, b := range records {
		e, err := d.record(b)
		if err != nil {
			return nil, err
		}
		if _, err := c.add(e); err != nil {
			return nil, d.wrap(b.start+recordPath, err)
		}
	}

	if count != c.Len() {
		c.logger.Warn().
			Str("file", file).
			Int("declared", count).
			Int("actual", c.Len()).
			Msg("Entry count in header does not match records")
	}
	return c, nil
}

// splitBlocks splits a document on delimiter lines. The first block is the
// header. Carriage returns are dropped so CRLF files decode the same.
func splitBlocks(doc string) []block {
	lines := strings.Split(strings.ReplaceAll(doc, "\r\n", "\n"), "\n")
	blocks := []block{{start: 1}}
	for i, line := range lines {
		if strings.TrimSpace(line) == constants.RecordDelimiter {
			blocks = append(blocks, block{start: i + 2})
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}
	return blocks
}

type decoder struct {
	file string
}

func (d decoder) record(b block) (Entry, error) {
	if len(b.lines) <= recordTags {
		return Entry{}, d.errorf(b.start, "record has %d lines, expected %d", len(b.lines), constants.RecordLines+1)
	}
	if strings.TrimSpace(b.lines[0]) != "" {
		return Entry{}, d.errorf(b.start, "expected a blank line after %s", constants.RecordDelimiter)
	}
	if err := d.trailing(b, recordTags+1); err != nil {
		return Entry{}, err
	}

	e := Entry{
		Path:      strings.TrimSpace(b.lines[recordPath]),
		CoverPath: strings.TrimSpace(b.lines[recordCover]),
		Name:      strings.TrimSpace(b.lines[recordName]),
		Author:    strings.TrimSpace(b.lines[recordAuthor]),
		Tags:      SplitTags(b.lines[recordTags]),
	}
	if e.Path == "" {
		return Entry{}, d.errorf(b.start+recordPath, "path is empty")
	}

	// The volume is the text after the last comma, so series names may contain commas.
	series, vol, ok := cutLast(b.lines[recordSeries], ",")
	if !ok {
		return Entry{}, d.errorf(b.start+recordSeries, "expected \"series, vol\"")
	}
	e.Series = strings.TrimSpace(series)
	var err error
	if e.Vol, err = d.number(b.start+recordSeries, "vol", vol); err != nil {
		return Entry{}, err
	}

	language, rating, ok := strings.Cut(b.lines[recordLanguage], ",")
	if !ok {
		return Entry{}, d.errorf(b.start+recordLanguage, "expected \"language, age rating\"")
	}
	e.Language, e.AgeRating = strings.TrimSpace(language), strings.TrimSpace(rating)

	if e.Release, err = d.atoi(b, recordRelease, "release"); err != nil {
		return Entry{}, err
	}

	width, height, ok := strings.Cut(b.lines[recordResolution], "x")
	if !ok {
		return Entry{}, d.errorf(b.start+recordResolution, "expected WIDTHxHEIGHT")
	}
	if e.Resolution.Width, err = d.number(b.start+recordResolution, "width", width); err != nil {
		return Entry{}, err
	}
	if e.Resolution.Height, err = d.number(b.start+recordResolution, "height", height); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// trailing rejects non-blank lines after the first n lines of a block.
func (d decoder) trailing(b block, n int) error {
	for i := n; i < len(b.lines); i++ {
		if strings.TrimSpace(b.lines[i]) != "" {
			return d.errorf(b.start+i, "unexpected content %q", b.lines[i])
		}
	}
	return nil
}

func (d decoder) atoi(b block, offset int, field string) (int, error) {
	return d.number(b.start+offset, field, b.lines[offset])
}

func (d decoder) number(line int, field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &errors.ParseError{
			Format:  constants.FormatName,
			File:    d.file,
			Line:    line,
			Message: fmt.Sprintf("%s %q is not a base-10 integer", field, strings.TrimSpace(s)),
			Err:     err,
		}
	}
	if n < 0 {
		return 0, d.errorf(line, "%s %d is negative", field, n)
	}
	return n, nil
}

func (d decoder) errorf(line int, format string, args ...any) error {
	return &errors.ParseError{
		Format:  constants.FormatName,
		File:    d.file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d decoder) wrap(line int, err error) error {
	return &errors.ParseError{
		Format:  constants.FormatName,
		File:    d.file,
		Line:    line,
		Message: err.Error(),
		Err:     err,
	}
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
