// Status command updates the availability of a catalog entry.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/booklane/shelf/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Update the status of a book",
	Long: `Status sets the availability of the book with the given id.

Valid statuses are "available" and "checked_out".

Example:
  shelf status 3 checked_out
  shelf status 3 available --json`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, err := parseBookID(args[0])
	if err != nil {
		return err
	}
	status := args[1]

	store, err := openStore()
	if err != nil {
		return err
	}

	ok, err := store.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, types.ErrInvalidStatus) {
			return fmt.Errorf("invalid status %q: use %q or %q",
				status, types.StatusAvailable, types.StatusCheckedOut)
		}
		return fmt.Errorf("update status: %w", err)
	}
	if !ok {
		return fmt.Errorf("book %d not found", id)
	}

	if flagJSON {
		return printJSON(map[string]any{"id": id, "status": status})
	}
	fmt.Printf("Book %d is now %s\n", id, status)
	return nil
}
