package markdown

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/supamark/pkg/types"
)

const validDoc = `---
title: "Hi"
tag: "general"
ttr: "2 min"
---

Body text.
`

func TestParse(t *testing.T) {
	t.Run("document with full header", func(t *testing.T) {
		fm, body, err := Parse([]byte(validDoc))
		require.NoError(t, err)
		require.NotNil(t, fm)

		assert.Equal(t, "Hi", fm.Title)
		assert.Equal(t, "general", fm.Tag)
		assert.Equal(t, "2 min", fm.TimeToRead)
		assert.Empty(t, fm.Slug)
		assert.Contains(t, string(body), "Body text.")
		assert.NoError(t, fm.Validate())
	})

	t.Run("explicit slug is carried through", func(t *testing.T) {
		doc := "---\ntitle: t\ntag: g\nttr: 1 min\nslug: custom-slug\n---\nbody\n"
		fm, _, err := Parse([]byte(doc))
		require.NoError(t, err)
		require.NotNil(t, fm)
		assert.Equal(t, "custom-slug", fm.Slug)
	})

	t.Run("no marker means no frontmatter", func(t *testing.T) {
		source := []byte("# Just a heading\n\nNo header here.\n")
		fm, body, err := Parse(source)
		require.NoError(t, err)
		assert.Nil(t, fm)
		assert.Equal(t, source, body)
	})

	t.Run("leading whitespace before marker is tolerated", func(t *testing.T) {
		fm, _, err := Parse([]byte("\n\n  " + validDoc))
		require.NoError(t, err)
		require.NotNil(t, fm)
		assert.Equal(t, "Hi", fm.Title)
	})

	t.Run("empty header fails validation", func(t *testing.T) {
		fm, _, err := Parse([]byte("---\n---\nBody.\n"))
		if err != nil {
			// Some decoders reject the empty block outright; either way
			// the document must not publish.
			return
		}
		require.NotNil(t, fm)
		assert.ErrorIs(t, fm.Validate(), types.ErrMissingFrontmatter)
	})

	t.Run("malformed header errors", func(t *testing.T) {
		_, _, err := Parse([]byte("---\n: : :\n---\nBody.\n"))
		assert.Error(t, err)
	})

	t.Run("unclosed header errors", func(t *testing.T) {
		_, _, err := Parse([]byte("---\ntitle: dangling\n"))
		assert.Error(t, err)
	})

	t.Run("required fields survive a serialization round trip", func(t *testing.T) {
		fm, _, err := Parse([]byte(validDoc))
		require.NoError(t, err)
		require.NotNil(t, fm)

		redoc := fmt.Sprintf("---\ntitle: %q\ntag: %q\nttr: %q\n---\nbody\n",
			fm.Title, fm.Tag, fm.TimeToRead)
		again, _, err := Parse([]byte(redoc))
		require.NoError(t, err)
		require.NotNil(t, again)

		assert.Equal(t, fm.Title, again.Title)
		assert.Equal(t, fm.Tag, again.Tag)
		assert.Equal(t, fm.TimeToRead, again.TimeToRead)
	})
}

func TestFrontMatterValidate(t *testing.T) {
	tests := []struct {
		name    string
		fm      types.FrontMatter
		wantErr bool
	}{
		{name: "complete", fm: types.FrontMatter{Title: "t", Tag: "g", TimeToRead: "1 min"}},
		{name: "missing title", fm: types.FrontMatter{Tag: "g", TimeToRead: "1 min"}, wantErr: true},
		{name: "missing tag", fm: types.FrontMatter{Title: "t", TimeToRead: "1 min"}, wantErr: true},
		{name: "missing ttr", fm: types.FrontMatter{Title: "t", Tag: "g"}, wantErr: true},
		{name: "zero value", fm: types.FrontMatter{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fm.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrMissingFrontmatter)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
