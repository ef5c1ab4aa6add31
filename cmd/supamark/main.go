// Package main provides the supamark CLI, which publishes markdown posts to
// a Supabase storage bucket and posts table.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
