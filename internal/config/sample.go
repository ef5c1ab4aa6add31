package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/supamark/pkg/types"
)

// sampleConfig is the template written by gen-config. The URL and key are
// placeholders the user must replace before publishing.
const sampleConfig = `supabase_url = "https://xxxxx.supabase.co"
supabase_service_key = "service_role_key"
bucket = "` + DefaultBucket + `"
table = "` + DefaultTable + `"
`

// WriteSample writes the sample config template to path, creating parent
// directories as needed. It fails with types.ErrAlreadyExists when a file is
// already present at path, leaving it untouched.
func WriteSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w at %s; delete or move it to regenerate", types.ErrAlreadyExists, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
