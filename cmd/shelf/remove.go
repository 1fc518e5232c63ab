// Remove command deletes a catalog entry by id.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a book by id",
	Long: `Remove deletes the book with the given id and saves the library.

Example:
  shelf remove 3
  shelf remove 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseBookID(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	ok, err := store.Remove(id)
	if err != nil {
		return fmt.Errorf("remove book: %w", err)
	}
	if !ok {
		return fmt.Errorf("book %d not found", id)
	}

	if flagJSON {
		return printJSON(map[string]any{"removed": id, "status": "success"})
	}
	fmt.Printf("Removed book %d\n", id)
	return nil
}
