// Package supabase talks to the remote Supabase project: the storage bucket
// holding markdown objects and the PostgREST table holding post metadata
// rows.
//
// Commands depend on the Store interface, not the concrete client, so they
// can be exercised against an in-memory fake. The production Client is the
// only implementation that performs network calls.
package supabase

import "github.com/mesh-intelligence/supamark/pkg/types"

// Store is the narrow surface of the remote backend used by supamark
// commands. Any method returning an error aborts the enclosing command; a
// single remote failure is fatal and nothing is retried or rolled back.
type Store interface {
	// UploadObject writes body to the bucket under key, overwriting any
	// existing object with that key.
	UploadObject(key, contentType string, body []byte) error

	// ListObjects returns the names of objects in the bucket. A non-empty
	// search keeps only names containing it.
	ListObjects(search string) ([]string, error)

	// RemoveObjects deletes the named objects from the bucket.
	RemoveObjects(keys []string) error

	// UpsertPost writes a metadata row, resolving conflicts on slug by
	// overwriting the existing row.
	UpsertPost(post types.Post) error

	// SelectSlugs returns the slug column of matching rows. An empty slug
	// selects every row.
	SelectSlugs(slug string) ([]string, error)

	// DeletePost removes the row whose slug column equals slug.
	DeletePost(slug string) error
}
