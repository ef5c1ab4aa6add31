package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/supamark/internal/markdown"
	"github.com/mesh-intelligence/supamark/internal/slugs"
	"github.com/mesh-intelligence/supamark/internal/supabase"
	"github.com/mesh-intelligence/supamark/pkg/types"
)

const markdownContentType = "text/markdown"

var publishCmd = &cobra.Command{
	Use:   "publish <path>",
	Short: "Publish a local markdown file",
	Long: `Publish reads a markdown file, uploads it to the storage bucket as
<slug>.md, and upserts its frontmatter metadata into the posts table.

The slug comes from the frontmatter when set, otherwise from the slugified
file name. The upload and the row upsert are sequential, not transactional:
if the upsert fails the uploaded object is left in place and shows up as
bucket-only in 'supamark list'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}
		return runPublish(store, cmd.OutOrStdout(), args[0])
	},
}

func runPublish(store supabase.Store, out io.Writer, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fm, _, err := markdown.Parse(raw)
	if err != nil {
		return err
	}
	if fm == nil {
		return fmt.Errorf("%w: provide a YAML frontmatter header in %s", types.ErrMissingFrontmatter, path)
	}
	if err := fm.Validate(); err != nil {
		return err
	}

	slug := slugs.Derive(*fm, path)
	key := slug + ".md"

	// The whole file is uploaded, frontmatter included.
	if err := store.UploadObject(key, markdownContentType, raw); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ uploaded markdown to storage as %s\n", key)

	post := types.Post{
		Slug:       slug,
		Title:      fm.Title,
		Tag:        fm.Tag,
		TimeToRead: fm.TimeToRead,
	}
	if err := store.UpsertPost(post); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ upserted metadata for slug %q\n", slug)

	fmt.Fprintf(out, "Published ✓: %s\n", fm.Title)
	return nil
}
