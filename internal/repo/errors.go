package repo

import (
	"errors"
	"fmt"
)

// ErrItemNotFound indicates the requested item is not in the database.
var ErrItemNotFound = errors.New("item not found in database")

// DuplicatePathError indicates an insert collided with an existing path.
type DuplicatePathError struct {
	Path string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("path already exists in database: %s", e.Path)
}

// InvalidQueryError wraps a search query that failed to compile.
type InvalidQueryError struct {
	Query string
	Err   error
}

func (e *InvalidQueryError) Error() string { return "invalid search query" }

func (e *InvalidQueryError) Unwrap() error { return e.Err }
