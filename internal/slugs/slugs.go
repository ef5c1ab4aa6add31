// Package slugs derives canonical post identifiers and normalizes remote
// object names for comparison.
//
// Derive and NormalizeName are deliberately separate: Derive lowercases and
// substitutes characters to mint a new slug, while NormalizeName only strips
// path components and the extension so already-existing remote names and
// table slugs can be compared on equal footing.
package slugs

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"github.com/mesh-intelligence/supamark/pkg/types"
)

// Derive returns the canonical slug for a document. An explicit frontmatter
// slug is used verbatim. Otherwise the file's base name with its extension
// stripped is slugified to lowercase [a-z0-9-]; if that yields nothing the
// title is slugified instead.
func Derive(fm types.FrontMatter, filePath string) string {
	if fm.Slug != "" {
		return fm.Slug
	}

	base := filepath.Base(filePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if s := slugify(stem); s != "" {
		return s
	}
	return slugify(fm.Title)
}

// NormalizeName strips any path components and the extension from a raw
// object or slug name. It applies no case folding or character substitution.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// slugify maps underscores to hyphens before delegating so the output stays
// within [a-z0-9-].
func slugify(s string) string {
	return slug.Make(strings.ReplaceAll(s, "_", "-"))
}
