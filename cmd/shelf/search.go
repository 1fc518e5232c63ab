// Search command filters catalog entries.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/booklane/shelf/internal/jsonfile"
	"github.com/booklane/shelf/pkg/types"
)

var (
	searchTitle  string
	searchAuthor string
	searchYear   int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search books by title, author, or year",
	Long: `Search filters the library by title, author, and year.

Title and author match case-insensitively on substrings; year matches
exactly. Filters compose with AND.

Example:
  shelf search --title war
  shelf search --title War --author Tol
  shelf search --year 1965 --json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchTitle, "title", "", "title substring filter")
	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "author substring filter")
	searchCmd.Flags().IntVar(&searchYear, "year", 0, "exact year filter")
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	books, err := store.Search(jsonfile.Query{
		Title:  searchTitle,
		Author: searchAuthor,
		Year:   searchYear,
	})
	if err != nil {
		return fmt.Errorf("search books: %w", err)
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
