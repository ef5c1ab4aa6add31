package main

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/supamark/internal/supabase"
	"github.com/mesh-intelligence/supamark/pkg/types"
)

// fakeStore is an in-memory Store so command handlers run without a live
// Supabase project. Mutation counters let tests assert that failed commands
// performed no remote writes.
type fakeStore struct {
	objects      map[string][]byte
	contentTypes map[string]string
	rows         map[string]types.Post

	uploads  int
	upserts  int
	removals int
	deletes  int

	upsertErr error
}

var _ supabase.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
		rows:         make(map[string]types.Post),
	}
}

func (f *fakeStore) UploadObject(key, contentType string, body []byte) error {
	f.uploads++
	f.objects[key] = append([]byte(nil), body...)
	f.contentTypes[key] = contentType
	return nil
}

func (f *fakeStore) ListObjects(search string) ([]string, error) {
	var names []string
	for key := range f.objects {
		if search == "" || strings.Contains(key, search) {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeStore) RemoveObjects(keys []string) error {
	f.removals++
	for _, key := range keys {
		delete(f.objects, key)
		delete(f.contentTypes, key)
	}
	return nil
}

func (f *fakeStore) UpsertPost(post types.Post) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	f.rows[post.Slug] = post
	return nil
}

func (f *fakeStore) SelectSlugs(slug string) ([]string, error) {
	var out []string
	for s := range f.rows {
		if slug == "" || s == slug {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeStore) DeletePost(slug string) error {
	f.deletes++
	delete(f.rows, slug)
	return nil
}
