// Package export renders a catalog snapshot in formats meant for other
// tools and for people: YAML for scripts and Markdown for reading.
// The .appl text format itself is written by the catalogs package.
package export
