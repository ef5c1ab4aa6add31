package types

import "errors"

// Standard errors reported by supamark commands. Callers match them with
// errors.Is; wrapping adds the offending path, slug, or remote detail.
var (
	// ErrMissingCredentials means the merged configuration lacks a
	// Supabase URL or service key.
	ErrMissingCredentials = errors.New("missing supabase_url or supabase_service_key; set them in a config file or the SUPABASE_URL / SUPABASE_SERVICE_KEY environment variables")

	// ErrMissingFrontmatter means a document has no YAML frontmatter
	// header, or the header is missing a required field.
	ErrMissingFrontmatter = errors.New("frontmatter missing or invalid")

	// ErrNotFound means a slug matches neither a storage object nor a
	// table row.
	ErrNotFound = errors.New("post not found")

	// ErrAlreadyExists means gen-config found a config file at the
	// target path.
	ErrAlreadyExists = errors.New("config file already exists")

	// ErrRemote wraps any failed storage or PostgREST call. Remote
	// failures are fatal to the enclosing command; there are no retries.
	ErrRemote = errors.New("remote operation failed")
)
