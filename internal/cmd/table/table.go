// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"sort"
	"strconv"

	"github.com/agentstation/appl/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// EntriesToTableData converts entries to table format. Wide adds the
// remaining descriptive columns.
func EntriesToTableData(entries []catalogs.Entry, wide bool) Data {
	headers := entryHeaders(wide)
	rows := make([][]string, 0, len(entries))
	for i := range entries {
		rows = append(rows, entryRow(&entries[i], wide))
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: entryAlignment(wide),
	}
}

// MatchesToTableData converts search results to table format with the
// score as the first column.
func MatchesToTableData(matches []catalogs.Match, wide bool) Data {
	headers := append([]string{"SCORE"}, entryHeaders(wide)...)
	rows := make([][]string, 0, len(matches))
	for i := range matches {
		row := append([]string{strconv.Itoa(matches[i].Score)}, entryRow(&matches[i].Entry, wide)...)
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: append([]Align{AlignRight}, entryAlignment(wide)...),
	}
}

// EntryToTableData renders one entry as property and value rows.
func EntryToTableData(e catalogs.Entry, opener string) Data {
	if opener == "" {
		opener = "-"
	}
	return Data{
		Headers: []string{"PROPERTY", "VALUE"},
		Rows: [][]string{
			{"Path", e.Path},
			{"Name", e.Name},
			{"Cover", e.CoverPath},
			{"Author", e.Author},
			{"Series", e.Series},
			{"Vol", strconv.Itoa(e.Vol)},
			{"Language", e.Language},
			{"Age Rating", e.AgeRating},
			{"Release", strconv.Itoa(e.Release)},
			{"Resolution", e.Resolution.String()},
			{"Tags", catalogs.JoinTags(e.Tags)},
			{"Opener", opener},
		},
	}
}

// KeysToTableData lists index keys with the number of entries filed
// under each.
func KeysToTableData(keys []string, count func(string) int) Data {
	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, strconv.Itoa(count(key))})
	}
	return Data{
		Headers:         []string{"KEY", "ENTRIES"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignDefault, AlignCenter},
	}
}

// AssociationsToTableData lists extension to opener associations sorted
// by extension.
func AssociationsToTableData(assoc map[string]string) Data {
	exts := make([]string, 0, len(assoc))
	for ext := range assoc {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	rows := make([][]string, 0, len(exts))
	for _, ext := range exts {
		rows = append(rows, []string{ext, assoc[ext]})
	}
	return Data{
		Headers: []string{"EXTENSION", "OPENER"},
		Rows:    rows,
	}
}

func entryHeaders(wide bool) []string {
	headers := []string{"PATH", "NAME", "AUTHOR", "SERIES", "VOL", "TAGS"}
	if wide {
		headers = append(headers, "LANGUAGE", "RATING", "RELEASE", "RESOLUTION", "COVER")
	}
	return headers
}

func entryRow(e *catalogs.Entry, wide bool) []string {
	row := []string{
		e.Path,
		Truncate(e.Name, 60),
		e.Author,
		e.Series,
		strconv.Itoa(e.Vol),
		catalogs.JoinTags(e.Tags),
	}
	if wide {
		row = append(row,
			e.Language,
			e.AgeRating,
			strconv.Itoa(e.Release),
			e.Resolution.String(),
			e.CoverPath,
		)
	}
	return row
}

func entryAlignment(wide bool) []Align {
	align := []Align{AlignDefault, AlignDefault, AlignDefault, AlignDefault, AlignCenter, AlignDefault}
	if wide {
		align = append(align, AlignDefault, AlignCenter, AlignCenter, AlignDefault, AlignDefault)
	}
	return align
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n <= 3 {
		return s
	}
	return string(r[:n-3]) + "..."
}
