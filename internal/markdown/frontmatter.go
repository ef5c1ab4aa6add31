// Package markdown extracts the YAML frontmatter header and body from a
// markdown document.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/mesh-intelligence/supamark/pkg/types"
)

// delimiter marks the start and end of a frontmatter header block.
var delimiter = []byte("---")

// Parse splits source into its frontmatter header and markdown body.
//
// A document that does not begin with the `---` delimiter (after leading
// whitespace) has no frontmatter: Parse returns a nil FrontMatter and the
// original text as the body. A document that opens a header block but whose
// header cannot be decoded as YAML is an error. Required-field checks are
// left to FrontMatter.Validate so that an empty-but-delimited header is
// rejected by an explicit rule rather than a decoder quirk.
func Parse(source []byte) (*types.FrontMatter, []byte, error) {
	trimmed := bytes.TrimLeft(source, " \t\r\n")
	if !bytes.HasPrefix(trimmed, delimiter) {
		return nil, source, nil
	}

	var fm types.FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(trimmed), &fm)
	if err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return &fm, body, nil
}
