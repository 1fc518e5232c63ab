package types

import "errors"

// Status is the availability flag of a book. It is a closed enum; construct
// values through ParseStatus or the constants below.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusCheckedOut Status = "checked_out"
)

// ErrInvalidStatus is returned when a status string is not one of the
// recognized Status values.
var ErrInvalidStatus = errors.New("invalid status")

// validStatuses is the set of recognized status values.
var validStatuses = map[Status]bool{
	StatusAvailable:  true,
	StatusCheckedOut: true,
}

// ParseStatus validates a raw status string at the boundary.
// Returns ErrInvalidStatus if the value is not a recognized status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !validStatuses[s] {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Book represents a single catalog entry.
type Book struct {
	ID     int    // Unique positive identifier, assigned on creation.
	Title  string
	Author string
	Year   int
	Status Status
}

// NewBook creates a book with the given id and fields. New books start as
// available.
func NewBook(id int, title, author string, year int) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusAvailable,
	}
}
