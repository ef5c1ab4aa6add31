package supabase

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/mesh-intelligence/supamark/pkg/types"
)

// listLimit caps one storage listing. Well above any realistic post count;
// the backend would otherwise apply its own 100-item default.
const listLimit = 1000

// Client implements Store against a live Supabase project. It is stateless
// across invocations: no session persistence, token refresh, or caching.
type Client struct {
	storage *storage_go.Client
	rest    *postgrest.Client
	bucket  string
	table   string
	log     *slog.Logger
}

var _ Store = (*Client)(nil)

// New builds a Client from the resolved configuration. The service key is
// sent as both the bearer token and the apikey header, which is what the
// storage and PostgREST endpoints each expect from a service role.
func New(cfg types.Config, log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	base := strings.TrimRight(cfg.URL, "/")

	storage := storage_go.NewClient(base+"/storage/v1", cfg.ServiceKey, map[string]string{
		"apikey": cfg.ServiceKey,
	})

	rest := postgrest.NewClient(base+"/rest/v1", "public", map[string]string{
		"apikey":        cfg.ServiceKey,
		"Authorization": "Bearer " + cfg.ServiceKey,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("%w: create postgrest client: %w", types.ErrRemote, rest.ClientError)
	}

	return &Client{
		storage: storage,
		rest:    rest,
		bucket:  cfg.Bucket,
		table:   cfg.Table,
		log:     log,
	}, nil
}

func (c *Client) UploadObject(key, contentType string, body []byte) error {
	c.log.Debug("uploading object", "bucket", c.bucket, "key", key)

	upsert := true
	_, err := c.storage.UploadFile(c.bucket, key, bytes.NewReader(body), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("%w: upload %s/%s: %w", types.ErrRemote, c.bucket, key, err)
	}
	return nil
}

func (c *Client) ListObjects(search string) ([]string, error) {
	c.log.Debug("listing objects", "bucket", c.bucket, "search", search)

	files, err := c.storage.ListFiles(c.bucket, "", storage_go.FileSearchOptions{
		Limit: listLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list bucket %s: %w", types.ErrRemote, c.bucket, err)
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		if search != "" && !strings.Contains(f.Name, search) {
			continue
		}
		names = append(names, f.Name)
	}
	return names, nil
}

func (c *Client) RemoveObjects(keys []string) error {
	c.log.Debug("removing objects", "bucket", c.bucket, "keys", keys)

	if _, err := c.storage.RemoveFile(c.bucket, keys); err != nil {
		return fmt.Errorf("%w: remove from bucket %s: %w", types.ErrRemote, c.bucket, err)
	}
	return nil
}

func (c *Client) UpsertPost(post types.Post) error {
	c.log.Debug("upserting row", "table", c.table, "slug", post.Slug)

	// Conflict resolution on the slug column makes a second publish of the
	// same slug overwrite rather than duplicate.
	if _, _, err := c.rest.From(c.table).Upsert(post, "slug", "", "").Execute(); err != nil {
		return fmt.Errorf("%w: upsert into %s: %w", types.ErrRemote, c.table, err)
	}
	return nil
}

func (c *Client) SelectSlugs(slug string) ([]string, error) {
	c.log.Debug("selecting rows", "table", c.table, "slug", slug)

	query := c.rest.From(c.table).Select("slug", "", false)
	if slug != "" {
		query = query.Eq("slug", slug)
	}

	var rows []struct {
		Slug string `json:"slug"`
	}
	if _, err := query.ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("%w: select from %s: %w", types.ErrRemote, c.table, err)
	}

	slugs := make([]string, 0, len(rows))
	for _, r := range rows {
		slugs = append(slugs, r.Slug)
	}
	return slugs, nil
}

func (c *Client) DeletePost(slug string) error {
	c.log.Debug("deleting row", "table", c.table, "slug", slug)

	if _, _, err := c.rest.From(c.table).Delete("", "").Eq("slug", slug).Execute(); err != nil {
		return fmt.Errorf("%w: delete from %s: %w", types.ErrRemote, c.table, err)
	}
	return nil
}
