// Package types defines the configuration, frontmatter, and post types shared
// between the supamark CLI and its Supabase store, along with the standard
// errors commands report.
package types

// Config holds the resolved Supabase connection settings for one invocation.
// It is built once by the config resolver and never mutated.
type Config struct {
	// URL is the Supabase project URL, e.g. https://xxxxx.supabase.co.
	URL string `mapstructure:"supabase_url" toml:"supabase_url"`

	// ServiceKey is the service-role key used for both storage and
	// PostgREST calls.
	ServiceKey string `mapstructure:"supabase_service_key" toml:"supabase_service_key"`

	// Bucket is the storage bucket holding markdown objects.
	Bucket string `mapstructure:"bucket" toml:"bucket"`

	// Table is the PostgREST table holding post metadata rows.
	Table string `mapstructure:"table" toml:"table"`
}

// Validate checks that the merged configuration carries credentials. Commands
// call this before any remote call is attempted.
func (c Config) Validate() error {
	if c.URL == "" || c.ServiceKey == "" {
		return ErrMissingCredentials
	}
	return nil
}
