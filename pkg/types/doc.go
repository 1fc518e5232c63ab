// Package types defines the Book entity, its on-disk record form, and the
// standard errors shared by the shelf storage layer and CLI.
package types
