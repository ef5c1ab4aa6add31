package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/supamark/internal/config"
)

var genConfigCmd = &cobra.Command{
	Use:   "gen-config",
	Short: "Generate a sample config at the default path",
	Long: `Gen-config writes a sample config.toml with placeholder credentials to the
platform config directory. It refuses to overwrite an existing file. No
remote calls are made.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve default config path: %w", err)
		}
		return runGenConfig(cmd.OutOrStdout(), path)
	},
}

func runGenConfig(out io.Writer, path string) error {
	if err := config.WriteSample(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Sample config written to %s. Update the values before running publish/list/delete.\n", path)
	return nil
}
