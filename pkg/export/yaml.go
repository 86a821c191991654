package export

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/appl/pkg/errors"
)

// YAML writes doc as a YAML document.
func YAML(w io.Writer, doc *Document) error {
	data, err := yaml.MarshalWithOptions(doc,
		yaml.Indent(2),
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return errors.WrapParse("yaml", "", err)
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "", err)
	}
	return nil
}
