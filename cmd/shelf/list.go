// List command prints every catalog entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/booklane/shelf/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books in the library",
	Long: `List prints every book in the library.

Example:
  shelf list
  shelf list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	books, err := store.List()
	if err != nil {
		return fmt.Errorf("list books: %w", err)
	}

	if flagJSON {
		if books == nil {
			books = []types.Book{}
		}
		return printJSON(books)
	}
	printBookTable(books)
	return nil
}
