package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/supamark/internal/config"
	"github.com/mesh-intelligence/supamark/internal/logging"
	"github.com/mesh-intelligence/supamark/internal/supabase"
)

// Global flag values.
var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "supamark",
	Short: "Publish markdown posts to Supabase (storage + posts table)",
	Long: `Supamark synchronizes markdown documents between the local filesystem and a
Supabase project. Published files land in a storage bucket as <slug>.md while
their frontmatter metadata is upserted into a posts table keyed by slug.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./config.toml, then the platform config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging of remote calls")

	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

// newStore resolves configuration and builds the remote client for one
// command invocation. Credential validation happens here, before any remote
// call.
func newStore() (supabase.Store, error) {
	cfg, err := config.Load(flagConfig, os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return supabase.New(cfg, newLogger())
}

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, flagVerbose)
}
