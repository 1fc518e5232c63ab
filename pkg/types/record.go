package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Record is the on-disk representation of a Book: a string-keyed mapping
// with every value serialized as a string, id and year included. The library
// file is a JSON array of these.
type Record map[string]string

// Record field names.
const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
	FieldStatus = "status"
)

// recordFields lists the required keys of a well-formed record.
var recordFields = []string{FieldID, FieldTitle, FieldAuthor, FieldYear, FieldStatus}

// Record validation errors. FromRecord wraps these with the offending
// field name.
var (
	ErrMissingField = errors.New("missing required field")
	ErrNotAnInteger = errors.New("value is not an integer")
)

// Record converts the book to its on-disk form. The result round-trips
// losslessly through FromRecord.
func (b Book) Record() Record {
	return Record{
		FieldID:     strconv.Itoa(b.ID),
		FieldTitle:  b.Title,
		FieldAuthor: b.Author,
		FieldYear:   strconv.Itoa(b.Year),
		FieldStatus: string(b.Status),
	}
}

// FromRecord constructs a Book from its on-disk record form.
// Every required key must be present, id and year must parse as integers,
// and status must be a recognized value.
func FromRecord(r Record) (Book, error) {
	for _, field := range recordFields {
		if _, ok := r[field]; !ok {
			return Book{}, fmt.Errorf("record field %q: %w", field, ErrMissingField)
		}
	}

	id, err := strconv.Atoi(r[FieldID])
	if err != nil {
		return Book{}, fmt.Errorf("record field %q: %w", FieldID, ErrNotAnInteger)
	}
	year, err := strconv.Atoi(r[FieldYear])
	if err != nil {
		return Book{}, fmt.Errorf("record field %q: %w", FieldYear, ErrNotAnInteger)
	}
	status, err := ParseStatus(r[FieldStatus])
	if err != nil {
		return Book{}, fmt.Errorf("record field %q: %w", FieldStatus, err)
	}

	return Book{
		ID:     id,
		Title:  r[FieldTitle],
		Author: r[FieldAuthor],
		Year:   year,
		Status: status,
	}, nil
}
