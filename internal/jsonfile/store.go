// Package jsonfile implements the file-backed library store. The entire
// catalog is a single JSON array of book records; every operation reloads
// the file, works on the in-memory slice, and rewrites the file in full.
package jsonfile

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/booklane/shelf/pkg/types"
)

// json is the codec for the on-disk array. ConfigCompatibleWithStandardLibrary
// keeps the file byte-compatible with encoding/json output.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store performs catalog operations against a single library file.
// It holds no in-memory state between calls; concurrent writers to the same
// file race with last-writer-wins semantics.
type Store struct {
	path string
}

// New creates a store backed by the library file at path. The file does not
// have to exist; a missing file reads as an empty library.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the library file path the store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the library file and parses every record. A missing file or a
// file that is not valid JSON reads as an empty library. A record that fails
// validation surfaces its error.
func (s *Store) Load() ([]types.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Missing (or unreadable) file is an empty library, not an error.
		return nil, nil
	}

	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupt file recovers as an empty library.
		return nil, nil
	}

	books := make([]types.Book, 0, len(records))
	for i, r := range records {
		b, err := types.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		books = append(books, b)
	}
	return books, nil
}

// Save rewrites the library file with the given books, pretty-printed,
// replacing the previous contents atomically.
func (s *Store) Save(books []types.Book) error {
	records := make([]types.Record, 0, len(books))
	for _, b := range books {
		records = append(records, b.Record())
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling library: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("saving library: %w", err)
	}
	return nil
}

// Add appends a new available book with the next free id (max existing + 1,
// starting at 1) and persists the library. Returns the created book.
func (s *Store) Add(title, author string, year int) (types.Book, error) {
	books, err := s.Load()
	if err != nil {
		return types.Book{}, err
	}

	maxID := 0
	for _, b := range books {
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	book := types.NewBook(maxID+1, title, author, year)
	books = append(books, book)
	if err := s.Save(books); err != nil {
		return types.Book{}, err
	}
	return book, nil
}

// Remove deletes the book with the given id and persists the library.
// Returns false, without touching the file, if no book matches.
func (s *Store) Remove(id int) (bool, error) {
	books, err := s.Load()
	if err != nil {
		return false, err
	}

	kept := books[:0]
	for _, b := range books {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(books) {
		return false, nil
	}

	if err := s.Save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// List returns every book in the library.
func (s *Store) List() ([]types.Book, error) {
	return s.Load()
}

// Query holds search filters. Empty title/author and zero year mean
// "no filter on that field"; the active filters compose with AND.
type Query struct {
	Title  string // case-insensitive substring match
	Author string // case-insensitive substring match
	Year   int    // exact match
}

// Search returns the books matching every active filter in q.
func (s *Store) Search(q Query) ([]types.Book, error) {
	books, err := s.Load()
	if err != nil {
		return nil, err
	}

	results := make([]types.Book, 0, len(books))
	for _, b := range books {
		if q.Title != "" && !containsFold(b.Title, q.Title) {
			continue
		}
		if q.Author != "" && !containsFold(b.Author, q.Author) {
			continue
		}
		if q.Year != 0 && b.Year != q.Year {
			continue
		}
		results = append(results, b)
	}
	return results, nil
}

// UpdateStatus sets the status of the book with the given id and persists
// the library. The raw status is validated before any file access; an
// unrecognized value fails with types.ErrInvalidStatus and the file is left
// untouched. Returns false if no book matches.
func (s *Store) UpdateStatus(id int, rawStatus string) (bool, error) {
	status, err := types.ParseStatus(rawStatus)
	if err != nil {
		return false, fmt.Errorf("status %q: %w", rawStatus, err)
	}

	books, err := s.Load()
	if err != nil {
		return false, err
	}

	for i := range books {
		if books[i].ID == id {
			books[i].Status = status
			if err := s.Save(books); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
