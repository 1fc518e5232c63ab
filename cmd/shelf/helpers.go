// Shared helpers for shelf CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/booklane/shelf/internal/jsonfile"
	"github.com/booklane/shelf/pkg/types"
)

// openStore resolves the library file path and returns a store for it.
func openStore() (*jsonfile.Store, error) {
	path, err := resolveLibraryFile()
	if err != nil {
		return nil, fmt.Errorf("resolve library file: %w", err)
	}
	return jsonfile.New(path), nil
}

// parseBookID parses a positional id argument.
func parseBookID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q: expected a positive integer", arg)
	}
	return id, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printBook prints a single book in one-line human-readable form.
func printBook(b types.Book) {
	fmt.Printf("%d: %s by %s (%d) [%s]\n", b.ID, b.Title, b.Author, b.Year, b.Status)
}

// printBookTable prints books in a human-readable table format.
func printBookTable(books []types.Book) {
	if len(books) == 0 {
		fmt.Println("No books found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tYEAR\tSTATUS")
	fmt.Fprintln(w, "--\t-----\t------\t----\t------")
	for _, b := range books {
		title := b.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", b.ID, title, b.Author, b.Year, b.Status)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d book(s)\n", len(books))
}
