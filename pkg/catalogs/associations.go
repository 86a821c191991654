package catalogs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentstation/appl/pkg/errors"
)

// Rename changes the collection name.
func (c *Catalog) Rename(name string) error {
	name = strings.TrimSpace(name)
	if err := validateText("name", name); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
	return nil
}

// SetAssociation maps a file extension to an opener command.
func (c *Catalog) SetAssociation(ext, opener string) error {
	ext, opener = normalizeExt(ext), strings.TrimSpace(opener)
	if err := validateAssociation(ext, opener); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.associations[ext] = opener
	return nil
}

// RemoveAssociation drops the opener for ext and reports whether one existed.
func (c *Catalog) RemoveAssociation(ext string) bool {
	ext = normalizeExt(ext)
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.associations[ext]
	delete(c.associations, ext)
	return ok
}

// SetAssociations replaces the whole extension to opener mapping.
func (c *Catalog) SetAssociations(assoc map[string]string) error {
	normalized := normalizeAssociations(assoc)
	for ext, opener := range normalized {
		if err := validateAssociation(ext, opener); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.associations = normalized
	return nil
}

// Opener returns the opener command for the extension of path.
func (c *Catalog) Opener(path string) (string, bool) {
	ext := extensionOf(path)
	if ext == "" {
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	opener, ok := c.associations[ext]
	return opener, ok
}

// ParseAssociations parses one "ext: opener" pair per line, the form used
// when editing associations by hand. Quotes are stripped and blank lines
// are skipped.
func ParseAssociations(text string) (map[string]string, error) {
	out := make(map[string]string)
	for i, line := range strings.Split(text, "\n") {
		line = stripQuotes(line)
		if strings.TrimSpace(line) == "" {
			continue
		}
		ext, opener, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.NewValidationError("associations", line,
				fmt.Sprintf("line %d: expected ext: opener", i+1))
		}
		out[normalizeExt(ext)] = strings.TrimSpace(opener)
	}
	return out, nil
}

// FormatAssociations renders the mapping as one "ext: opener" pair per line,
// sorted by extension.
func FormatAssociations(assoc map[string]string) string {
	var sb strings.Builder
	for _, ext := range sortedExtensions(assoc) {
		fmt.Fprintf(&sb, "%s: %s\n", ext, assoc[ext])
	}
	return sb.String()
}

// parseAssociationLiteral parses the header form {"ext":"opener", ...}.
func parseAssociationLiteral(s string) (map[string]string, error) {
	s = strings.NewReplacer("{", "", "}", "").Replace(stripQuotes(s))
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		ext, opener, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("association %q has no ':'", strings.TrimSpace(pair))
		}
		out[normalizeExt(ext)] = strings.TrimSpace(opener)
	}
	return out, nil
}

// formatAssociationLiteral renders the header form with sorted keys.
func formatAssociationLiteral(assoc map[string]string) string {
	pairs := make([]string, 0, len(assoc))
	for _, ext := range sortedExtensions(assoc) {
		pairs = append(pairs, `"`+ext+`":"`+assoc[ext]+`"`)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func validateAssociation(ext, opener string) error {
	if ext == "" {
		return errors.NewValidationError("extension", ext, "cannot be empty")
	}
	if strings.Contains(ext, ":") {
		return errors.NewValidationError("extension", ext, "cannot contain a colon")
	}
	for _, v := range []struct{ field, value string }{{"extension", ext}, {"opener", opener}} {
		if strings.ContainsAny(v.value, "{}\"',\r\n") {
			return errors.NewValidationError(v.field, v.value, "cannot contain braces, quotes, commas or line breaks")
		}
	}
	return nil
}

func normalizeAssociations(assoc map[string]string) map[string]string {
	out := make(map[string]string, len(assoc))
	for ext, opener := range assoc {
		out[normalizeExt(ext)] = strings.TrimSpace(opener)
	}
	return out
}

// normalizeExt lower-cases an extension and drops a leading dot.
func normalizeExt(ext string) string {
	return strings.TrimPrefix(lower(ext), ".")
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "'", "").Replace(s)
}

func sortedExtensions(assoc map[string]string) []string {
	keys := make([]string, 0, len(assoc))
	for k := range assoc {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
