package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/supamark/internal/slugs"
	"github.com/mesh-intelligence/supamark/internal/supabase"
	"github.com/mesh-intelligence/supamark/pkg/types"
)

var (
	flagSoft bool
	flagYes  bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a post by slug",
	Long: `Delete removes a post's object from the storage bucket and its row from the
posts table. With --soft only the row is removed and the bucket object is
kept. The slug argument may be given as a bare slug, a file name, or a path;
directory components and the extension are stripped before lookup.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}
		return runDelete(store, cmd.InOrStdin(), cmd.OutOrStdout(), args[0], flagSoft, flagYes)
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&flagSoft, "soft", false, "remove only the table row; keep the bucket object")
	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
}

func runDelete(store supabase.Store, in io.Reader, out io.Writer, rawSlug string, soft, yes bool) error {
	slug := slugs.NormalizeName(rawSlug)
	key := slug + ".md"

	// The two presence checks are independent; a post may exist in only one
	// of the stores.
	names, err := store.ListObjects(key)
	if err != nil {
		return err
	}
	inBucket := slices.Contains(names, key)

	rows, err := store.SelectSlugs(slug)
	if err != nil {
		return err
	}
	inTable := len(rows) > 0

	if !inBucket && !inTable {
		return fmt.Errorf("%w: slug %q in storage or table; nothing to delete", types.ErrNotFound, slug)
	}

	if !yes {
		question := fmt.Sprintf("Delete %q", slug)
		if soft {
			question += " (soft delete: keep bucket object)"
		}
		ok, err := confirm(in, out, question+"?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if !soft && inBucket {
		if err := store.RemoveObjects([]string{key}); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ deleted markdown from storage: %s\n", key)
	}

	// The row goes away regardless of --soft.
	if inTable {
		if err := store.DeletePost(slug); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ deleted metadata for slug %q\n", slug)
	}

	fmt.Fprintf(out, "Post %q deleted ✓\n", slug)
	return nil
}

// confirm asks a y/N question on out and reads one answer line from in. EOF
// counts as a decline.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
