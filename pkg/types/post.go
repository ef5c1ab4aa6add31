package types

import "fmt"

// FrontMatter is the YAML metadata header at the top of a markdown document.
// Title, Tag, and TimeToRead are required; Slug optionally overrides the
// filename-derived slug.
type FrontMatter struct {
	Title      string `yaml:"title"`
	Tag        string `yaml:"tag"`
	TimeToRead string `yaml:"ttr"`
	Slug       string `yaml:"slug"`
}

// Validate checks that the required frontmatter fields are present. An empty
// header block decodes to the zero value and fails here, so a document with
// `---\n---` delimiters and nothing between them is rejected the same way as
// one missing a field.
func (f FrontMatter) Validate() error {
	if f.Title == "" {
		return fmt.Errorf("%w: title is required", ErrMissingFrontmatter)
	}
	if f.Tag == "" {
		return fmt.Errorf("%w: tag is required", ErrMissingFrontmatter)
	}
	if f.TimeToRead == "" {
		return fmt.Errorf("%w: ttr is required", ErrMissingFrontmatter)
	}
	return nil
}

// Post is one metadata row in the posts table, keyed by Slug. Upserts resolve
// conflicts on the slug column.
type Post struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Tag        string `json:"tag"`
	TimeToRead string `json:"time_to_read"`
}
