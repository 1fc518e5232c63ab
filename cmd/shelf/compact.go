// Compact command rewrites the library file in canonical form.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compactCmd = &cobra.Command{
	Use:   "compact",
	Short: "Rewrite the library file in canonical form",
	Long: `Compact loads the library and saves it back, normalizing the file
to the canonical pretty-printed encoding. A missing or corrupt file is
rewritten as an empty library.

Example:
  shelf compact`,
	Args: cobra.NoArgs,
	RunE: runCompact,
}

func runCompact(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	books, err := store.Load()
	if err != nil {
		return fmt.Errorf("load library: %w", err)
	}
	if err := store.Save(books); err != nil {
		return fmt.Errorf("save library: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{"books": len(books), "status": "success"})
	}
	fmt.Printf("Compacted library: %d book(s)\n", len(books))
	return nil
}
