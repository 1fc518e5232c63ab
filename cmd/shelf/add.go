// Add command creates a new catalog entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle  string
	addAuthor string
	addYear   int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the library",
	Long: `Add creates a new book with the next free id and saves the library.

New books start as available.

Example:
  shelf add --title "War and Peace" --author "Leo Tolstoy" --year 1869
  shelf add --title "Dune" --author "Frank Herbert" --year 1965 --json`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "book title (required)")
	addCmd.Flags().StringVar(&addAuthor, "author", "", "book author (required)")
	addCmd.Flags().IntVar(&addYear, "year", 0, "publication year (required)")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("author")
	_ = addCmd.MarkFlagRequired("year")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	book, err := store.Add(addTitle, addAuthor, addYear)
	if err != nil {
		return fmt.Errorf("add book: %w", err)
	}

	if flagJSON {
		return printJSON(book)
	}
	fmt.Print("Added book ")
	printBook(book)
	return nil
}
