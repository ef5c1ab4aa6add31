package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/supamark/internal/slugs"
	"github.com/mesh-intelligence/supamark/internal/supabase"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List slugs and where they exist",
	Long: `List reconciles the storage bucket against the posts table. Each slug is
reported as 'both', 'bucket' (object without a row), or 'table' (row without
an object).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}
		return runList(store, cmd.OutOrStdout())
	},
}

func runList(store supabase.Store, out io.Writer) error {
	names, err := store.ListObjects("")
	if err != nil {
		return err
	}
	rowSlugs, err := store.SelectSlugs("")
	if err != nil {
		return err
	}

	inBucket := make(map[string]bool, len(names))
	for _, name := range names {
		inBucket[slugs.NormalizeName(name)] = true
	}
	inTable := make(map[string]bool, len(rowSlugs))
	for _, slug := range rowSlugs {
		inTable[slugs.NormalizeName(slug)] = true
	}

	all := make([]string, 0, len(inBucket)+len(inTable))
	for slug := range inBucket {
		all = append(all, slug)
	}
	for slug := range inTable {
		if !inBucket[slug] {
			all = append(all, slug)
		}
	}
	sort.Strings(all)

	if len(all) == 0 {
		fmt.Fprintln(out, "No posts found in storage bucket or table.")
		return nil
	}

	fmt.Fprintf(out, "%-32s%s\n", "slug", "location")
	for _, slug := range all {
		location := "table"
		switch {
		case inBucket[slug] && inTable[slug]:
			location = "both"
		case inBucket[slug]:
			location = "bucket"
		}
		fmt.Fprintf(out, "%-32s%s\n", slug, location)
	}
	return nil
}
