package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentstation/appl/pkg/catalogs"
	"github.com/agentstation/appl/pkg/errors"
)

// Markdown writes doc as a Markdown page: a title, a summary list,
// the opener associations and one table row per entry.
func Markdown(w io.Writer, doc *Document) error {
	builder := md.NewMarkdown(w)

	builder.H1(doc.Name).LF()
	builder.BulletList(
		fmt.Sprintf("%s %s", md.Bold("Root:"), md.Code(doc.Root)),
		fmt.Sprintf("%s %d", md.Bold("Entries:"), len(doc.Entries)),
		fmt.Sprintf("%s %d", md.Bold("Authors:"), distinct(doc.Entries, func(e catalogs.Entry) []string { return []string{e.Author} })),
		fmt.Sprintf("%s %d", md.Bold("Tags:"), distinct(doc.Entries, func(e catalogs.Entry) []string { return e.Tags })),
	).LF()

	if len(doc.Associations) > 0 {
		builder.H2("Openers").LF()
		rows := make([][]string, 0, len(doc.Associations))
		for _, line := range strings.Split(strings.TrimSpace(catalogs.FormatAssociations(doc.Associations)), "\n") {
			ext, opener, _ := strings.Cut(line, ": ")
			rows = append(rows, []string{md.Code("." + ext), cell(opener)})
		}
		builder.Table(md.TableSet{
			Header: []string{"Extension", "Opener"},
			Rows:   rows,
		}).LF()
	}

	builder.H2("Entries").LF()
	if len(doc.Entries) == 0 {
		builder.PlainText(md.Italic("No entries.")).LF()
	} else {
		rows := make([][]string, 0, len(doc.Entries))
		for _, e := range doc.Entries {
			rows = append(rows, entryRow(e))
		}
		builder.Table(md.TableSet{
			Header: []string{"Name", "Path", "Author", "Series", "Vol", "Language", "Rating", "Release", "Tags"},
			Rows:   rows,
		}).LF()
	}

	if err := builder.Build(); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}

func entryRow(e catalogs.Entry) []string {
	release := ""
	if e.Release > 0 {
		release = strconv.Itoa(e.Release)
	}
	return []string{
		cell(e.Name),
		md.Code(cell(e.Path)),
		cell(e.Author),
		cell(e.Series),
		strconv.Itoa(e.Vol),
		cell(e.Language),
		cell(e.AgeRating),
		release,
		cell(catalogs.JoinTags(e.Tags)),
	}
}

// cell escapes pipes so a value cannot split a table column.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func distinct(entries []catalogs.Entry, values func(catalogs.Entry) []string) int {
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, v := range values(e) {
			seen[strings.ToLower(v)] = struct{}{}
		}
	}
	return len(seen)
}
