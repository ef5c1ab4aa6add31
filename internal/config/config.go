// Package config resolves supamark's connection settings by merging a TOML
// config file, environment variables, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/supamark/pkg/types"
)

// Defaults applied when neither the config file nor the environment names a
// bucket or table. The URL and service key have no defaults.
const (
	DefaultBucket = "blog"
	DefaultTable  = "posts"
)

// Environment variable fallbacks, consulted per field when the config file
// leaves it unset.
const (
	EnvURL        = "SUPABASE_URL"
	EnvServiceKey = "SUPABASE_SERVICE_KEY"
	EnvBucket     = "SUPABASE_BUCKET"
	EnvTable      = "SUPABASE_TABLE"
)

// Config file keys.
const (
	keyURL        = "supabase_url"
	keyServiceKey = "supabase_service_key"
	keyBucket     = "bucket"
	keyTable      = "table"
)

// LookupEnv reports the value of an environment variable. Injecting it keeps
// Load testable without mutating the process environment; main passes
// os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Load produces the resolved configuration for one invocation.
//
// When explicit is non-empty, that file is read and a read or parse failure
// is fatal. Otherwise the search path is tried (./config.toml, then the
// platform config directory) and a missing file is not an error. Per-field
// precedence is file value, then environment variable, then default. Load
// fails with types.ErrMissingCredentials when the merged result lacks a URL
// or service key, before any remote call is made.
func Load(explicit string, lookup LookupEnv) (types.Config, error) {
	v := viper.New()

	path, err := findConfigFile(explicit)
	if err != nil {
		return types.Config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return types.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	env := func(key string) string {
		if lookup == nil {
			return ""
		}
		s, _ := lookup(key)
		return s
	}
	pick := func(fileKey, envKey, fallback string) string {
		if s := v.GetString(fileKey); s != "" {
			return s
		}
		if s := env(envKey); s != "" {
			return s
		}
		return fallback
	}

	cfg := types.Config{
		URL:        pick(keyURL, EnvURL, ""),
		ServiceKey: pick(keyServiceKey, EnvServiceKey, ""),
		Bucket:     pick(keyBucket, EnvBucket, DefaultBucket),
		Table:      pick(keyTable, EnvTable, DefaultTable),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// findConfigFile returns the config file to read, or "" when searching found
// none. An explicit path is returned as-is so that a missing or unreadable
// named file surfaces as an error from the read.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, candidate := range searchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// searchPaths lists candidate config locations in precedence order: the
// working directory first, then the platform config directory.
func searchPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, FileName))
	}
	if p, err := DefaultPath(); err == nil {
		paths = append(paths, p)
	}
	return paths
}
